package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/blogdeck/blogdeck/internal/apiclient"
)

const errMsgFixBelow = "Please fix the errors below."

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormSubmitter performs the create or update call against the platform.
// id is empty in create mode.
type FormSubmitter[T any] func(ctx context.Context, token, id string, data T) error

// FormRenderer is a function that renders the form template with the given data.
// This allows the form handler to work with different rendering strategies.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter // Response writer
	R        *http.Request       // Request
	Mode     FormMode            // "create" or "edit"
	Parser   FormParser[T]       // Function to parse form data
	Submit   FormSubmitter[T]    // Platform call for Create/Update
	Renderer FormRenderer        // Function to render form with data
	// Success redirect URL
	SuccessURL string
	// Optional: one-shot notification shown on the page the viewer
	// lands on after the success redirect
	SuccessMessage string
	// Fields the form actually renders; server errors naming anything
	// else are collapsed into a general message.
	KnownFields []string
	// Optional: additional data to pass to template on error
	ExtraData map[string]any
	// Optional: function to extract ID from request (defaults to r.PathValue("id"))
	GetID func(r *http.Request) string
}

// HandleForm is a generic form handler that processes Create and Update workflows.
// It handles form parsing, local validation, the platform call, server
// field-error mapping, and the success redirect. On any failure the form
// re-renders with the submitted draft intact.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if !validateFormOptions(opts) {
		return
	}

	id, ok := checkFormID(opts)
	if !ok {
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	token := GetTokenFromContext(opts.R.Context())
	err := opts.Submit(opts.R.Context(), token, id, data)
	if err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	// The flash rides a cookie because Hx-Redirect navigates the whole
	// page; a trigger on this response would be lost in transit.
	SetFlash(opts.W, opts.SuccessMessage)
	HTMX(opts.W).Redirect(opts.SuccessURL)
}

// validateFormOptions validates required options and mode.
func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.Parser == nil || opts.Submit == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}

	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

// checkFormID checks and returns the ID for edit mode. Returns empty string and true for create mode.
func checkFormID[T any](opts FormHandlerOpts[T]) (string, bool) {
	if opts.Mode != FormModeEdit {
		return "", true
	}

	id := getFormID(opts)
	if id == "" {
		http.NotFound(opts.W, opts.R)
		return "", false
	}
	return id, true
}

// getFormID extracts the ID from the request, using custom getter if provided.
func getFormID[T any](opts FormHandlerOpts[T]) string {
	if opts.GetID != nil {
		return opts.GetID(opts.R)
	}
	return opts.R.PathValue("id")
}

// handleFormServiceError handles errors from the platform call.
func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
		return
	}

	var verr *apiclient.ValidationError
	if errors.As(err, &verr) {
		fieldErrors := MapFieldErrors(verr.Errors, opts.KnownFields...)
		if len(fieldErrors) > 0 {
			opts.renderFormError(fieldErrors, "", data)
			return
		}
		opts.renderFormError(nil, "The submission was rejected. Please review and try again.", data)
		return
	}

	opts.renderFormError(nil, "Unable to save. Please try again.", data)
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	templateData := NewTemplateData(fh.R, PageMeta{})

	if len(fieldErrors) > 0 {
		templateData.WithFieldErrors(fieldErrors)
	}

	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}

	templateData.With("Mode", fh.Mode)

	if fh.ExtraData != nil {
		for k, v := range fh.ExtraData {
			templateData.With(k, v)
		}
	}

	// Form data lets templates repopulate inputs with the viewer's draft.
	templateData.With("FormData", data)

	fh.Renderer(fh.W, fh.R, templateData.Build())
}
