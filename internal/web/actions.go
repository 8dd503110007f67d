package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"agora/internal/acl"
	"agora/internal/domain"
	"agora/internal/service"
	"agora/internal/validate"
)

// responseKind tells how an action's outcome is shaped: programmatic clients
// get a JSON envelope, interactive clients a flash message and a redirect.
// It is resolved exactly once, at handler entry, and used for both the
// success and the failure paths.
type responseKind int

const (
	Interactive responseKind = iota
	Programmatic
)

func resolveResponseKind(r *http.Request) responseKind {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return Programmatic
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return Programmatic
	}
	return Interactive
}

type actionFunc func(ctx context.Context, viewer acl.ViewerContext, target domain.ProfileView) (service.ActionResult, error)

// action runs the shared guard pipeline for profile actions. Every guard
// fails before any lock is taken or transaction opened: authentication
// first, then the method check, then target resolution.
func action(h *Handler, stateKey string, f actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := resolveResponseKind(r)
		viewer := h.viewer(r)

		if !viewer.IsAuthenticated() {
			h.failAction(w, r, kind, service.ErrPermissionDenied)
			return
		}
		if r.Method != http.MethodPost {
			h.failAction(w, r, kind, ErrMethodNotAllowed)
			return
		}
		target, err := h.resolveProfile(r, viewer)
		if err != nil {
			h.failAction(w, r, kind, err)
			return
		}

		result, err := f(r.Context(), viewer, target)
		if err != nil {
			h.failAction(w, r, kind, err)
			return
		}

		h.presentAction(w, r, kind, stateKey, target, result)
	}
}

func FollowUser(h *Handler) http.HandlerFunc {
	return action(h, "is_following", h.service.FollowUser)
}

func BlockUser(h *Handler) http.HandlerFunc {
	return action(h, "is_blocking", h.service.BlockUser)
}

func (h *Handler) presentAction(w http.ResponseWriter, r *http.Request, kind responseKind, stateKey string, target domain.ProfileView, result service.ActionResult) {
	if kind == Programmatic {
		writeJSON(w, http.StatusOK, map[string]any{
			stateKey:   result.Active,
			"message":  result.Message,
			"is_error": false,
		})
		return
	}

	h.queueFlash(w, r, result.Message)

	returnPath := validate.CleanReturnPath(r.PostFormValue("return_path"))
	if returnPath == "" {
		returnPath = DefaultProfileLink(target)
	}
	http.Redirect(w, r, returnPath, http.StatusSeeOther)
}

func (h *Handler) failAction(w http.ResponseWriter, r *http.Request, kind responseKind, err error) {
	code := GetCode(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Str("url", r.URL.String()).Msg("profile action failed")
	}

	if kind == Programmatic {
		writeJSON(w, code, map[string]any{
			"is_error": true,
			"message":  http.StatusText(code),
		})
		return
	}

	// Guests get bounced to the login page instead of a bare error.
	if code == http.StatusForbidden {
		http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
		return
	}
	http.Error(w, http.StatusText(code), code)
}

func writeJSON(w http.ResponseWriter, code int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
