package db

import (
	"context"
	"time"

	"agora/internal/domain"
)

type Users interface {
	// GetUserByID resolves a user by their numeric id; fails with ErrNotFound
	// if no such user exists.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)
	GetUserBySlug(ctx context.Context, slug string) (domain.User, error)
	TouchLastClick(ctx context.Context, id int64, at time.Time) error
	SetAvatarDigest(ctx context.Context, id int64, digest string) error
}
