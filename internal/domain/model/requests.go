package model

// Credentials carries a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries a sign-up attempt.
type Registration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

// Upload is a file selected for submission: raw bytes plus the metadata
// needed to build a multipart part. It exists only for the lifetime of
// one submission.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PostSubmission is the outbound shape of a post create/update. Text
// fields become multipart text parts; Image, when present, becomes a
// binary part.
type PostSubmission struct {
	Title        string
	Description  string
	BlogContents string
	Topics       []string
	IsPublished  bool
	Image        *Upload
}

// AccountUpdate is the outbound shape of an account details update.
type AccountUpdate struct {
	DisplayName string
	Avatar      *Upload
}

// PasswordChange is the outbound shape of a password change.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// FieldError is one server-reported validation failure, naming the
// offending field and a human-readable message.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path"`
}
