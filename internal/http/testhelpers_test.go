package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

var errUpstream = errors.New("upstream down")

// newTestRenderer parses the embedded template tree.
func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	templateFS, err := TemplateFS()
	require.NoError(t, err)
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	return renderer
}

func testIdentity() *model.Identity {
	return &model.Identity{
		ID:          "user-1",
		DisplayName: "Pat Writer",
		Email:       "pat@example.com",
		Role:        model.RoleUser,
	}
}

// withViewer attaches a resolved identity and token to the request.
func withViewer(r *http.Request, identity *model.Identity, token string) *http.Request {
	ctx := SetTokenInContext(r.Context(), token)
	ctx = SetIdentityInContext(ctx, identity)
	return r.WithContext(ctx)
}

// stubResolver satisfies SessionResolver for middleware tests.
type stubResolver struct {
	identity  *model.Identity
	lastToken string
}

func (s *stubResolver) Resolve(_ context.Context, token string) *model.Identity {
	s.lastToken = token
	return s.identity
}

// stubInvalidator records tokens dropped from the identity cache.
type stubInvalidator struct {
	invalidated []string
}

func (s *stubInvalidator) Invalidate(_ context.Context, token string) {
	s.invalidated = append(s.invalidated, token)
}

// fakeAuthService satisfies AuthUIService with canned responses.
type fakeAuthService struct {
	token       string
	loginErr    error
	registerErr error

	gotCredentials  model.Credentials
	gotRegistration model.Registration
}

func (f *fakeAuthService) Login(_ context.Context, creds model.Credentials) (string, error) {
	f.gotCredentials = creds
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthService) Register(_ context.Context, reg model.Registration) (string, error) {
	f.gotRegistration = reg
	if f.registerErr != nil {
		return "", f.registerErr
	}
	return f.token, nil
}

// fakePostsService satisfies PostsUIService with canned responses.
type fakePostsService struct {
	posts     []model.Post
	post      *model.Post
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	created   *model.PostSubmission
	updated   *model.PostSubmission
	updatedID string
	deletedID string
}

func (f *fakePostsService) List(_ context.Context, _ string) ([]model.Post, error) {
	return f.posts, f.listErr
}

func (f *fakePostsService) Get(_ context.Context, _, _ string) (*model.Post, error) {
	return f.post, f.getErr
}

func (f *fakePostsService) Create(_ context.Context, _ string, sub model.PostSubmission) (*model.Post, error) {
	f.created = &sub
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Post{ID: "new-post"}, nil
}

func (f *fakePostsService) Update(_ context.Context, _, id string, sub model.PostSubmission) (*model.Post, error) {
	f.updated = &sub
	f.updatedID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &model.Post{ID: id}, nil
}

func (f *fakePostsService) Delete(_ context.Context, _, id string) error {
	f.deletedID = id
	return f.deleteErr
}

// fakeAccountService satisfies AccountUIService with canned responses.
type fakeAccountService struct {
	updateErr   error
	passwordErr error

	gotUpdate   *model.AccountUpdate
	gotPassword *model.PasswordChange
}

func (f *fakeAccountService) UpdateDetails(_ context.Context, _ string, req model.AccountUpdate) error {
	f.gotUpdate = &req
	return f.updateErr
}

func (f *fakeAccountService) ChangePassword(_ context.Context, _ string, req model.PasswordChange) error {
	f.gotPassword = &req
	return f.passwordErr
}

// newTestHandlers wires UIHandlers with the embedded templates and the
// given fakes.
func newTestHandlers(t *testing.T, auth *fakeAuthService, posts *fakePostsService, accounts *fakeAccountService) (*UIHandlers, *stubInvalidator) {
	t.Helper()
	sessions := &stubInvalidator{}
	h := &UIHandlers{
		T:          newTestRenderer(t),
		AuthSvc:    auth,
		PostSvc:    posts,
		AccountSvc: accounts,
		Sessions:   sessions,
		Logger:     slog.New(slog.DiscardHandler),
	}
	return h, sessions
}

// multipartBody builds a multipart form with text fields and optional
// file parts for upload tests.
type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string][]string, files ...filePart) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, mw.WriteField(name, v))
		}
	}
	for _, f := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		hdr.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func doRequest(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, r)
	return w
}
