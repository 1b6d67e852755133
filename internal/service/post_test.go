package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/blogdeck/blogdeck/internal/domain/model"
	"github.com/blogdeck/blogdeck/internal/mocks"
)

func TestPostService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockBlogAPI(ctrl)
	api.EXPECT().ListPosts(gomock.Any(), "tok").
		Return([]model.Post{{ID: "p1"}, {ID: "p2"}}, nil)

	svc := NewPostService(PostServiceOptions{API: api})
	posts, err := svc.List(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestPostService_List_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockBlogAPI(ctrl)
	api.EXPECT().ListPosts(gomock.Any(), "tok").Return(nil, errors.New("boom"))

	svc := NewPostService(PostServiceOptions{API: api})
	_, err := svc.List(context.Background(), "tok")
	assert.Error(t, err)
}

func TestPostService_Get_RequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewPostService(PostServiceOptions{API: mocks.NewMockBlogAPI(ctrl)})

	_, err := svc.Get(context.Background(), "tok", "")
	assert.Error(t, err)
}

func TestPostService_CreateAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockBlogAPI(ctrl)
	sub := model.PostSubmission{Title: "Hello", Topics: []string{"go"}}
	api.EXPECT().CreatePost(gomock.Any(), "tok", sub).Return(&model.Post{ID: "p1"}, nil)
	api.EXPECT().UpdatePost(gomock.Any(), "tok", "p1", sub).Return(&model.Post{ID: "p1"}, nil)

	svc := NewPostService(PostServiceOptions{API: api})

	created, err := svc.Create(context.Background(), "tok", sub)
	require.NoError(t, err)
	assert.Equal(t, "p1", created.ID)

	updated, err := svc.Update(context.Background(), "tok", "p1", sub)
	require.NoError(t, err)
	assert.Equal(t, "p1", updated.ID)
}

func TestPostService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockBlogAPI(ctrl)
	api.EXPECT().DeletePost(gomock.Any(), "tok", "p1").Return(nil)

	svc := NewPostService(PostServiceOptions{API: api})
	require.NoError(t, svc.Delete(context.Background(), "tok", "p1"))
	assert.Error(t, svc.Delete(context.Background(), "tok", ""))
}

func TestSanitizeContents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain html untouched", "<p>hello <b>world</b></p>", "<p>hello <b>world</b></p>"},
		{"script stripped", `before<script>alert("x")</script>after`, "beforeafter"},
		{"case insensitive", `<SCRIPT src="evil.js">x</SCRIPT>ok`, "ok"},
		{"spaced tags", `< script >x< / script >ok`, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeContents(tt.in))
		})
	}
}
