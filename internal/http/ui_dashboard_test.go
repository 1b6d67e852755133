package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogdeck/blogdeck/internal/domain/model"
)

func dashboardRequest() *http.Request {
	return withViewer(httptest.NewRequest(http.MethodGet, "/dashboard", nil), testIdentity(), "tok")
}

func TestDashboard_SplitsPublishedAndDrafts(t *testing.T) {
	posts := &fakePostsService{posts: []model.Post{
		{ID: "p1", Title: "Shipping It", IsPublished: true},
		{ID: "p2", Title: "Half-Finished Thoughts", IsPublished: false},
	}}
	h, _ := newTestHandlers(t, &fakeAuthService{}, posts, &fakeAccountService{})

	w := doRequest(h.Dashboard, dashboardRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Shipping It")
	assert.Contains(t, body, "Half-Finished Thoughts")
	assert.Contains(t, body, "Published")
	assert.Contains(t, body, "Drafts")
}

func TestDashboard_EmptyState(t *testing.T) {
	h, _ := newTestHandlers(t, &fakeAuthService{}, &fakePostsService{}, &fakeAccountService{})

	w := doRequest(h.Dashboard, dashboardRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You haven&#39;t written anything yet.")
}

func TestDashboard_FetchFailureRendersErrorState(t *testing.T) {
	posts := &fakePostsService{listErr: errors.New("upstream down")}
	h, _ := newTestHandlers(t, &fakeAuthService{}, posts, &fakeAccountService{})

	w := doRequest(h.Dashboard, dashboardRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Unable to load your posts. Please try again.")
	// The error state must not look like an empty post list.
	assert.NotContains(t, body, "You haven&#39;t written anything yet.")
}

func TestDashboard_ShowsQueuedNotificationOnce(t *testing.T) {
	h, _ := newTestHandlers(t, &fakeAuthService{}, &fakePostsService{}, &fakeAccountService{})

	queued := httptest.NewRecorder()
	SetFlash(queued, "Post created.")

	r := dashboardRequest()
	r.AddCookie(&http.Cookie{Name: FlashCookieName, Value: flashCookie(t, queued).Value})
	w := doRequest(h.Dashboard, r)

	assert.Contains(t, w.Body.String(), "Post created.")
	cleared := flashCookie(t, w)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)

	// A follow-up request without the cookie shows nothing.
	again := doRequest(h.Dashboard, dashboardRequest())
	assert.NotContains(t, again.Body.String(), "Post created.")
}

func TestDashboard_HTMXGetsFragmentOnly(t *testing.T) {
	posts := &fakePostsService{posts: []model.Post{{ID: "p1", Title: "Shipping It", IsPublished: true}}}
	h, _ := newTestHandlers(t, &fakeAuthService{}, posts, &fakeAccountService{})

	r := dashboardRequest()
	r.Header.Set("Hx-Request", "true")
	w := doRequest(h.Dashboard, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Shipping It")
	assert.NotContains(t, body, "<html", "fragment render must not include the layout")
}

func TestHome_RedirectsRootToDashboard(t *testing.T) {
	h, _ := newTestHandlers(t, &fakeAuthService{}, &fakePostsService{}, &fakeAccountService{})

	w := doRequest(h.Home, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestNotFound(t *testing.T) {
	h, _ := newTestHandlers(t, &fakeAuthService{}, &fakePostsService{}, &fakeAccountService{})

	w := doRequest(h.NotFound, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}
