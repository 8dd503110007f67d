package service

import "errors"

var (
	ErrConflict         = errors.New("conflict")
	ErrInvalidInput     = errors.New("invalid")
	ErrPermissionDenied = errors.New("permission denied")
)

type Service interface {
	Profiles
	Social
	Accounts
	Avatars
}
