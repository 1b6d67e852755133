package httpx

import (
	"github.com/blogdeck/blogdeck/internal/domain/model"
)

// MapFieldErrors converts server-reported field errors into the
// field→message map the form templates consume. Only errors whose path
// names a known form field are kept; unknown paths are dropped rather
// than surfaced against the wrong input. When the platform reports a
// field more than once the last message wins.
func MapFieldErrors(errs []model.FieldError, knownFields ...string) map[string]string {
	if len(errs) == 0 {
		return nil
	}

	known := make(map[string]bool, len(knownFields))
	for _, f := range knownFields {
		known[f] = true
	}

	out := make(map[string]string)
	for _, fe := range errs {
		if !known[fe.Path] {
			continue
		}
		out[fe.Path] = fe.Msg
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
