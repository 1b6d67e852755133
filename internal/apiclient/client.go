// Package apiclient implements the HTTP client for the remote blog
// platform API. It is the only code that speaks the platform's wire
// contract; everything above it works with domain types and typed
// errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// Config captures the subset of platform API behaviour we need.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client talks to the remote blog platform.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ ports.BlogAPI = (*Client)(nil)

// NewClient builds a platform API client. Callers should pass a
// validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, client: hc}, nil
}

// ResolveIdentity fetches the identity bound to the token via GET /api/users.
func (c *Client) ResolveIdentity(ctx context.Context, token string) (*model.Identity, error) {
	var identity model.Identity
	err := c.doJSON(ctx, request{
		Method: http.MethodGet,
		Path:   "/api/users",
		Token:  token,
	}, &identity)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// Login exchanges credentials for an opaque bearer token.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (string, error) {
	return c.tokenRequest(ctx, "/api/users/login", creds)
}

// Register creates an account and returns an opaque bearer token.
func (c *Client) Register(ctx context.Context, reg model.Registration) (string, error) {
	return c.tokenRequest(ctx, "/api/users/register", reg)
}

// UpdateAccount submits a multipart account update via PUT /api/users.
func (c *Client) UpdateAccount(ctx context.Context, token string, req model.AccountUpdate) error {
	body, contentType, err := encodeAccountUpdate(req)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, request{
		Method:      http.MethodPut,
		Path:        "/api/users",
		Token:       token,
		Body:        body,
		ContentType: contentType,
	}, nil)
}

// ChangePassword rotates the account password via PUT /api/users.
func (c *Client) ChangePassword(ctx context.Context, token string, req model.PasswordChange) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode password change: %w", err)
	}
	return c.doJSON(ctx, request{
		Method:      http.MethodPut,
		Path:        "/api/users",
		Token:       token,
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
	}, nil)
}

// ListPosts fetches the viewer's posts.
func (c *Client) ListPosts(ctx context.Context, token string) ([]model.Post, error) {
	var posts []model.Post
	err := c.doJSON(ctx, request{
		Method: http.MethodGet,
		Path:   "/api/posts",
		Token:  token,
	}, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, token, id string) (*model.Post, error) {
	var post model.Post
	err := c.doJSON(ctx, request{
		Method: http.MethodGet,
		Path:   "/api/posts/" + url.PathEscape(id),
		Token:  token,
	}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost submits a new post as a multipart body via POST /api/posts.
func (c *Client) CreatePost(ctx context.Context, token string, req model.PostSubmission) (*model.Post, error) {
	return c.submitPost(ctx, http.MethodPost, "/api/posts", token, req)
}

// UpdatePost updates a post in place via PUT /api/posts/:id.
func (c *Client) UpdatePost(ctx context.Context, token, id string, req model.PostSubmission) (*model.Post, error) {
	return c.submitPost(ctx, http.MethodPut, "/api/posts/"+url.PathEscape(id), token, req)
}

// DeletePost removes a post via DELETE /api/posts/:id.
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.doJSON(ctx, request{
		Method: http.MethodDelete,
		Path:   "/api/posts/" + url.PathEscape(id),
		Token:  token,
	}, nil)
}

func (c *Client) submitPost(ctx context.Context, method, path, token string, req model.PostSubmission) (*model.Post, error) {
	body, contentType, err := encodePostSubmission(req)
	if err != nil {
		return nil, err
	}

	var post model.Post
	err = c.doJSON(ctx, request{
		Method:      method,
		Path:        path,
		Token:       token,
		Body:        body,
		ContentType: contentType,
	}, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// tokenRequest posts a JSON body and decodes the opaque token response.
func (c *Client) tokenRequest(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode token request: %w", err)
	}

	raw, err := c.do(ctx, request{
		Method:      http.MethodPost,
		Path:        path,
		Body:        bytes.NewReader(body),
		ContentType: "application/json",
	})
	if err != nil {
		return "", err
	}

	return decodeToken(raw)
}

// decodeToken accepts the token either as a JSON string or as raw text.
func decodeToken(raw []byte) (string, error) {
	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return "", &StatusError{StatusCode: http.StatusOK, Body: "empty token response"}
	}
	return token, nil
}

// request groups the parameters of one API call.
type request struct {
	Method      string
	Path        string
	Token       string
	Body        io.Reader
	ContentType string
}

// doJSON performs the request and decodes a JSON response into out when
// out is non-nil.
func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	raw, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, req.Body)
	if err != nil {
		return nil, fmt.Errorf("create %s %s request: %w", req.Method, req.Path, err)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", req.Method, req.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp.StatusCode, raw)
	}

	return raw, nil
}

// errorFromResponse distinguishes structured validation rejections from
// everything else. The platform reports validation failures as
// {"errors": [{"msg": ..., "path": ...}, ...]}.
func errorFromResponse(status int, raw []byte) error {
	var payload struct {
		Errors []model.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && len(payload.Errors) > 0 {
		return &ValidationError{Errors: payload.Errors}
	}
	return &StatusError{StatusCode: status, Body: string(raw)}
}
