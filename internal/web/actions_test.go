package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"agora/internal/acl"
	"agora/internal/config"
	"agora/internal/db"
	"agora/internal/domain"
	"agora/internal/mocks"
	"agora/internal/service"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	cfg := &config.Configuration{
		Name:         "Agora",
		OnlineCutoff: 15 * time.Minute,
	}
	h := New(cfg, svc, scs.NewCookieManager("session-secret-for-tests-only"))
	return &h, svc
}

var testViewer = domain.User{ID: 1, Username: "Amy", Slug: "amy"}
var testTarget = domain.User{ID: 7, Username: "Bob", Slug: "bob"}

// profileRequest builds a request against /profile/7-bob with the route
// params chi would have extracted, optionally carrying amy's session.
func profileRequest(method, path string, form url.Values, loggedIn bool) *http.Request {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	r := httptest.NewRequest(method, path, body)
	if form != nil {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "7")
	rctx.URLParams.Add("slug", "bob")
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)

	if loggedIn {
		ctx = context.WithValue(ctx, key{}, Session{UserID: 1, Username: "Amy", Slug: "amy"})
	}
	return r.WithContext(ctx)
}

func expectViewer(svc *mocks.MockService) acl.ViewerContext {
	viewer := acl.ForUser(&testViewer)
	svc.EXPECT().ViewerByID(gomock.Any(), int64(1)).Return(viewer, nil).AnyTimes()
	return viewer
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected a JSON response, got content type %q", ct)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %s", err)
	}
	return body
}

func TestFollowUserProgrammatic(t *testing.T) {
	h, svc := newTestHandler(t)
	expectViewer(svc)
	svc.EXPECT().GetProfile(gomock.Any(), int64(7), "bob", gomock.Any()).
		Return(domain.ProfileView{User: testTarget}, nil)
	svc.EXPECT().FollowUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.ActionResult{Active: true, Message: "You are now following Bob."}, nil)

	r := profileRequest(http.MethodPost, "/profile/7-bob/follow", nil, true)
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()

	FollowUser(h)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["is_following"] != true {
		t.Errorf("expected is_following true, got %v", body["is_following"])
	}
	if body["is_error"] != false {
		t.Errorf("expected is_error false, got %v", body["is_error"])
	}
	if body["message"] != "You are now following Bob." {
		t.Errorf("unexpected message %v", body["message"])
	}
}

func TestBlockUserProgrammatic(t *testing.T) {
	h, svc := newTestHandler(t)
	expectViewer(svc)
	svc.EXPECT().GetProfile(gomock.Any(), int64(7), "bob", gomock.Any()).
		Return(domain.ProfileView{User: testTarget}, nil)
	svc.EXPECT().BlockUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.ActionResult{Active: false, Message: "You have stopped blocking Bob."}, nil)

	r := profileRequest(http.MethodPost, "/profile/7-bob/block", nil, true)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()

	BlockUser(h)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["is_blocking"] != false {
		t.Errorf("expected is_blocking false, got %v", body["is_blocking"])
	}
}

func TestFollowUserRedirectsToReturnPath(t *testing.T) {
	h, svc := newTestHandler(t)
	expectViewer(svc)
	svc.EXPECT().GetProfile(gomock.Any(), int64(7), "bob", gomock.Any()).
		Return(domain.ProfileView{User: testTarget}, nil)
	svc.EXPECT().FollowUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.ActionResult{Active: true, Message: "You are now following Bob."}, nil)

	form := url.Values{"return_path": {"/profile/7-bob/followers"}}
	r := profileRequest(http.MethodPost, "/profile/7-bob/follow", form, true)
	w := httptest.NewRecorder()

	FollowUser(h)(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/profile/7-bob/followers" {
		t.Errorf("expected a redirect back to the followers page, got %q", loc)
	}
}

func TestFollowUserDefaultRedirect(t *testing.T) {
	cases := []struct {
		name string
		form url.Values
	}{
		{"no return path", nil},
		{"offsite return path", url.Values{"return_path": {"https://evil.example/"}}},
		{"protocol relative return path", url.Values{"return_path": {"//evil.example/"}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			expectViewer(svc)
			svc.EXPECT().GetProfile(gomock.Any(), int64(7), "bob", gomock.Any()).
				Return(domain.ProfileView{User: testTarget}, nil)
			svc.EXPECT().FollowUser(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(service.ActionResult{Active: true, Message: "You are now following Bob."}, nil)

			r := profileRequest(http.MethodPost, "/profile/7-bob/follow", c.form, true)
			w := httptest.NewRecorder()

			FollowUser(h)(w, r)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected status 303, got %d", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/profile/7-bob/posts" {
				t.Errorf("expected the canonical profile redirect, got %q", loc)
			}
		})
	}
}

func TestActionGuestRedirectsToLogin(t *testing.T) {
	h, _ := newTestHandler(t)

	r := profileRequest(http.MethodPost, "/profile/7-bob/follow", nil, false)
	w := httptest.NewRecorder()

	FollowUser(h)(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != LoginRoute {
		t.Errorf("expected a redirect to the login page, got %q", loc)
	}
}

func TestActionGuestProgrammatic(t *testing.T) {
	h, _ := newTestHandler(t)

	r := profileRequest(http.MethodPost, "/profile/7-bob/follow", nil, false)
	r.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()

	FollowUser(h)(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["is_error"] != true {
		t.Errorf("expected is_error true, got %v", body["is_error"])
	}
}

func TestActionWrongMethod(t *testing.T) {
	h, svc := newTestHandler(t)
	expectViewer(svc)

	r := profileRequest(http.MethodGet, "/profile/7-bob/follow", nil, true)
	w := httptest.NewRecorder()

	FollowUser(h)(w, r)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestActionUnknownProfile(t *testing.T) {
	h, svc := newTestHandler(t)
	expectViewer(svc)
	svc.EXPECT().GetProfile(gomock.Any(), int64(7), "bob", gomock.Any()).
		Return(domain.ProfileView{}, db.ErrNotFound)

	r := profileRequest(http.MethodPost, "/profile/7-bob/follow", nil, true)
	w := httptest.NewRecorder()

	FollowUser(h)(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
