package web

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const MaxAvatarBytes = 512 * 1024

// UploadAvatar lets users replace the avatar on their own profile. The route
// is mounted behind AuthenticatedMiddleware.
func UploadAvatar(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, _ := GetSession(r.Context())

		err := r.ParseMultipartForm(MaxAvatarBytes)
		if err != nil {
			log.Error().Err(err).Msg("failed to read multipart form from request")
			http.Error(w, "", http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("avatar")
		if err != nil {
			http.Error(w, "failed to get file", http.StatusBadRequest)
			return
		}
		body, err := io.ReadAll(io.LimitReader(file, MaxAvatarBytes))
		if err != nil {
			http.Error(w, "failed to read file body", http.StatusBadRequest)
			return
		}

		if _, err := h.service.SetAvatar(r.Context(), s.UserID, body); err != nil {
			http.Error(w, "upload failed", http.StatusInternalServerError)
			return
		}

		h.queueFlash(w, r, "Avatar updated.")
		http.Redirect(w, r, ProfilePath(s.UserID, s.Slug), http.StatusSeeOther)
	}
}

func GetAvatar(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		digest := chi.URLParam(r, "digest")
		content, err := h.service.GetAvatar(r.Context(), digest)
		if err != nil {
			http.Error(w, "", GetCode(err))
			return
		}
		w.Header().Set("Content-Type", http.DetectContentType(content))
		if _, err := w.Write(content); err != nil {
			log.Error().Err(err).Msg("failed to write avatar")
		}
	}
}
