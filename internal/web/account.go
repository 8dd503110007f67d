package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"agora/templates"
)

func GetLogin(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.renderLogin(r.Context(), w, r, nil)
	}
}

func Login(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := handler.SessionManager.Load(r)
		err := r.ParseForm()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			handler.renderLogin(ctx, w, r, err)
			return
		}

		user := r.Form.Get("user")
		password := r.Form.Get("password")
		u, authenticated, err := handler.service.AuthenticateUser(ctx, user, password)
		if err != nil {
			log.Error().Err(err).Msg("login failed")
			w.WriteHeader(http.StatusInternalServerError)
			handler.renderLogin(ctx, w, r, errors.New("something went wrong, try again"))
			return
		}

		if !authenticated {
			w.WriteHeader(http.StatusBadRequest)
			handler.renderLogin(ctx, w, r, errors.New("invalid credentials"))
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			UserID:   u.UserID,
			Username: u.Username,
			Slug:     u.Slug,
		})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			handler.renderLogin(ctx, w, r, errors.New("failed to create and load session"))
			return
		}

		prev := r.Form.Get("prev")
		if prev == "" {
			prev = "/"
		}
		http.Redirect(w, r, prev, http.StatusSeeOther)
	}
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prev := r.URL.Query().Get("prev")
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}

		if prev == "" {
			prev = "/"
		}
		http.Redirect(w, r, prev, http.StatusSeeOther)
	}
}

func GetSignup(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.renderSignup(r.Context(), w, r, nil)
	}
}

func SignUp(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		err := r.ParseForm()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			handler.renderSignup(ctx, w, r, errors.New("failed to parse form body"))
			return
		}

		username := r.Form.Get("username")
		email := r.Form.Get("email")
		password := r.Form.Get("password")

		err = handler.service.CreateUser(ctx, username, password, email, false)
		if err != nil {
			w.WriteHeader(GetCode(err))
			handler.renderSignup(ctx, w, r, err)
			return
		}

		http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
	}
}

func (h *Handler) renderLogin(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	h.renderPage(ctx, w, r, "Login", templates.Login(LoginRoute, err))
}

func (h *Handler) renderSignup(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	h.renderPage(ctx, w, r, "Signup", templates.SignUp(SignUpRoute, err))
}
