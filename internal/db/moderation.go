package db

import (
	"context"
	"time"

	"agora/internal/domain"
)

type Moderation interface {
	CountWarnings(ctx context.Context, userID int64) (int64, error)
	// ListOpenWarningTimes returns the timestamps of the user's non-canceled
	// warnings, oldest first. Whether a warning has expired depends on the
	// warning ladder, which the store does not know about.
	ListOpenWarningTimes(ctx context.Context, userID int64) ([]time.Time, error)
	// ListWarnings returns the user's warnings ordered most recent first.
	ListWarnings(ctx context.Context, userID int64, limit, offset int64) ([]domain.Warning, error)

	CountNameChanges(ctx context.Context, userID int64) (int64, error)
	// ListNameChanges returns the user's renames ordered most recent first.
	ListNameChanges(ctx context.Context, userID int64, limit, offset int64) ([]domain.NameChange, error)

	// GetActiveBan returns the user's current ban, skipping expired ones;
	// ErrNotFound when the user is not banned.
	GetActiveBan(ctx context.Context, userID int64, now time.Time) (domain.Ban, error)
}
