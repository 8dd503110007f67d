package service

import (
	"context"

	"agora/internal/acl"
	"agora/internal/domain"
)

type Accounts interface {
	// AuthenticateUser takes the user's identifier, which may be their username or email address, and password
	// and verifies if these credentials are correct. If authentication fails, authenticated is false and
	// err is nil; a non nil error indicates that an internal, unexpected error has occured.
	AuthenticateUser(ctx context.Context, user, password string) (u domain.Account, authenticated bool, err error)
	// CreateUser inserts a new user with their credentials.
	CreateUser(ctx context.Context, username, password, email string, admin bool) error
	// ViewerByID loads the user behind a session and derives their permission
	// context, marking them as active.
	ViewerByID(ctx context.Context, id int64) (acl.ViewerContext, error)
}

type Avatars interface {
	// SetAvatar stores the image under its digest and points the user at it.
	SetAvatar(ctx context.Context, userID int64, content []byte) (digest string, err error)
	GetAvatar(ctx context.Context, digest string) ([]byte, error)
}
