package db

import (
	"context"

	"agora/internal/domain"
)

type Account interface {
	// InsertUser persists a new user together with their credentials.
	InsertUser(ctx context.Context, username, slug, email, passwordHash string, admin bool) (int64, error)
	GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error)
	GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error)
}
