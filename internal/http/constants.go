package httpx

// CurrentPage constants define the page identifiers used in templates and navigation.
const (
	PageDashboard = "dashboard"
	PageLogin     = "login"
	PageSignUp    = "sign-up"
	PagePost      = "post"
	PagePostForm  = "post-form"
	PageAccount   = "account"
	PageNotFound  = "not-found"
)

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	// FormModeEdit indicates the form is in edit mode.
	FormModeEdit FormMode = "edit"
	// FormModeCreate indicates the form is in create mode.
	FormModeCreate FormMode = "create"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates; avoids per-call allocations
var contentTemplates = map[string]string{
	PageDashboard: "dashboard-content",
	PageLogin:     "login-content",
	PageSignUp:    "sign-up-content",
	PagePost:      "post-content",
	PagePostForm:  "post-form-content",
	PageAccount:   "account-content",
	PageNotFound:  "not-found-content",
}

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to dashboard-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := contentTemplates[currentPage]; ok {
		return name
	}
	return "dashboard-content"
}
