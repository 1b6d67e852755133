package apiclient

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

// ValidationError is returned when the platform rejects a submission
// with a structured list of field errors. It is consumed exactly once
// by the field-error mapper to annotate the open form draft.
type ValidationError struct {
	Errors []model.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Path+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StatusError is returned for any non-2xx response that does not carry
// structured field errors: transport-level rejections, 5xx, malformed
// bodies.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("blog api: %s: %s", http.StatusText(e.StatusCode), strings.TrimSpace(e.Body))
}

// IsAuthRejection reports whether the error is the platform declining
// the credential token. Callers treat this as "no identity", not as an
// application error.
func (e *StatusError) IsAuthRejection() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
