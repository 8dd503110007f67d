package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"agora/internal/acl"
)

const SessionKey = "user"

const flashKey = "flash"

type Session struct {
	UserID   int64
	Username string
	Slug     string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetSession(r.Context())
			if ok {
				h.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
		})
	}
}

// viewer rebuilds the permission context for the request. A session pointing
// at a user that no longer exists degrades to a guest context.
func (h *Handler) viewer(r *http.Request) acl.ViewerContext {
	s, ok := GetSession(r.Context())
	if !ok {
		return acl.Guest()
	}

	v, err := h.service.ViewerByID(r.Context(), s.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user", s.UserID).Msg("failed to load session user")
		return acl.Guest()
	}
	return v
}

// queueFlash stores a one-shot message shown on the next rendered page.
func (h *Handler) queueFlash(w http.ResponseWriter, r *http.Request, message string) {
	session := h.SessionManager.Load(r)
	if err := session.PutString(w, flashKey, message); err != nil {
		log.Error().Err(err).Msg("failed to queue flash message")
	}
}

func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) string {
	session := h.SessionManager.Load(r)
	message, err := session.PopString(w, flashKey)
	if err != nil {
		return ""
	}
	return message
}
