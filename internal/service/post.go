package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/ports"
)

// PostServiceOptions groups dependencies for PostService.
type PostServiceOptions struct {
	API ports.BlogAPI
}

// PostService proxies post operations to the platform on behalf of the
// viewer.
type PostService struct {
	api ports.BlogAPI
}

// NewPostService constructs a new PostService.
func NewPostService(opts PostServiceOptions) *PostService {
	return &PostService{api: opts.API}
}

// List fetches the viewer's posts.
func (s *PostService) List(ctx context.Context, token string) ([]model.Post, error) {
	posts, err := s.api.ListPosts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Get fetches a single post.
func (s *PostService) Get(ctx context.Context, token, id string) (*model.Post, error) {
	if id == "" {
		return nil, errors.New("post id is required")
	}
	post, err := s.api.GetPost(ctx, token, id)
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return post, nil
}

// Create submits a new post.
func (s *PostService) Create(ctx context.Context, token string, sub model.PostSubmission) (*model.Post, error) {
	post, err := s.api.CreatePost(ctx, token, sub)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Update replaces a post's content.
func (s *PostService) Update(ctx context.Context, token, id string, sub model.PostSubmission) (*model.Post, error) {
	if id == "" {
		return nil, errors.New("post id is required")
	}
	post, err := s.api.UpdatePost(ctx, token, id, sub)
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	return post, nil
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, token, id string) error {
	if id == "" {
		return errors.New("post id is required")
	}
	if err := s.api.DeletePost(ctx, token, id); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

var scriptTagPattern = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// SanitizeContents strips script tags from author-supplied HTML before
// it is rendered into a page.
func SanitizeContents(contents string) string {
	return scriptTagPattern.ReplaceAllString(contents, "")
}
