package db

import (
	"context"

	"agora/internal/domain"
)

type Threads interface {
	CountPostsBy(ctx context.Context, userID int64) (int64, error)
	// ListPostsBy returns the user's posts ordered most recent first.
	ListPostsBy(ctx context.Context, userID int64, limit, offset int64) ([]domain.Post, error)

	CountThreadsBy(ctx context.Context, userID int64) (int64, error)
	// ListThreadsBy returns threads the user started, ordered most recent first.
	ListThreadsBy(ctx context.Context, userID int64, limit, offset int64) ([]domain.Thread, error)
}
