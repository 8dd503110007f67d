package web

import (
	"errors"
	"net/http"

	"agora/internal/db"
	"agora/internal/service"
	"agora/internal/storage"
)

var ErrMethodNotAllowed = errors.New("method not allowed")

func GetCode(err error) int {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, storage.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
