package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blogdeck/blogdeck/internal/apiclient"
	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/http/validation"
)

func accountPageMeta() PageMeta {
	return PageMeta{Title: "Blogdeck - Account", PageTitle: "Account Settings", CurrentPage: PageAccount}
}

// AccountPage renders the account settings form, prefilled from the
// resolved identity.
func (h *UIHandlers) AccountPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, accountPageMeta()).Build()
	h.renderPage(w, r, data)
}

// AccountUpdateSubmit handles the display name / avatar form. On success
// the cached identity is dropped so the next page shows the new details.
func (h *UIHandlers) AccountUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseMultipartForm(maxPostFormMemory)

	req := model.AccountUpdate{
		DisplayName: strings.TrimSpace(r.FormValue("displayName")),
	}

	errs := validation.New().
		Validate("displayName", req.DisplayName,
			validation.Required("Display name", maxDisplayNameLength)).
		Errors()

	avatar, uploadErr := readImageUpload(r, "pfp", MaxAvatarBytes)
	if uploadErr != "" {
		errs["pfp"] = uploadErr
	}
	req.Avatar = avatar

	if len(errs) > 0 {
		h.renderAccountError(w, r, errs, errMsgFixBelow, req.DisplayName)
		return
	}

	token := GetTokenFromContext(r.Context())
	if err := h.AccountSvc.UpdateDetails(r.Context(), token, req); err != nil {
		fieldErrs, general := mapAuthError(err, "displayName", "pfp")
		if general == "" {
			general = "Unable to update the account. Please try again."
		}
		h.renderAccountError(w, r, fieldErrs, general, req.DisplayName)
		return
	}

	if h.Sessions != nil {
		h.Sessions.Invalidate(r.Context(), token)
	}

	triggerToast(w, "Account updated.", "success")
	redirectTo(w, r, "/account")
}

// PasswordChangeSubmit handles the password rotation form.
func (h *UIHandlers) PasswordChangeSubmit(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	req := model.PasswordChange{
		OldPassword: r.FormValue("oldPassword"),
		NewPassword: r.FormValue("newPassword"),
	}

	errs := validation.New().
		Validate("oldPassword", req.OldPassword,
			validation.RequiredRange("Current password", minPasswordLength, maxPasswordLength)).
		Validate("newPassword", req.NewPassword,
			validation.RequiredRange("New password", minPasswordLength, maxPasswordLength)).
		Errors()

	if len(errs) > 0 {
		h.renderAccountError(w, r, errs, errMsgFixBelow, "")
		return
	}

	token := GetTokenFromContext(r.Context())
	if err := h.AccountSvc.ChangePassword(r.Context(), token, req); err != nil {
		fieldErrs, general := mapAuthError(err, "oldPassword", "newPassword")
		if general == "" {
			var statusErr *apiclient.StatusError
			if errors.As(err, &statusErr) && statusErr.IsAuthRejection() {
				general = "Current password is incorrect."
			} else {
				general = "Unable to change the password. Please try again."
			}
		}
		h.renderAccountError(w, r, fieldErrs, general, "")
		return
	}

	triggerToast(w, "Password changed.", "success")
	redirectTo(w, r, "/account")
}

func (h *UIHandlers) renderAccountError(
	w http.ResponseWriter,
	r *http.Request,
	fieldErrors map[string]string,
	general string,
	displayName string,
) {
	builder := NewTemplateData(r, accountPageMeta()).
		WithFieldErrors(fieldErrors).
		WithError(general)
	if displayName != "" {
		builder.With("FormDisplayName", displayName)
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderPage(w, r, builder.Build())
}
