package db

import (
	"context"

	"agora/internal/domain"
)

type Social interface {
	IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error)
	IsBlocking(ctx context.Context, actorID, targetID int64) (bool, error)

	// ToggleFollow flips the follow edge actor->target inside one transaction
	// and recomputes both users' denormalized counters from the edge table.
	// It reports whether the actor follows the target after the call.
	ToggleFollow(ctx context.Context, actorID, targetID int64) (following bool, err error)
	// ToggleBlock flips the block edge. Blocks carry no counters.
	ToggleBlock(ctx context.Context, actorID, targetID int64) (blocking bool, err error)

	CountFollowers(ctx context.Context, userID int64) (int64, error)
	CountFollows(ctx context.Context, userID int64) (int64, error)
	// ListFollowers returns the users following userID ordered by slug.
	ListFollowers(ctx context.Context, userID int64, limit, offset int64) ([]domain.User, error)
	// ListFollows returns the users userID follows, ordered by slug.
	ListFollows(ctx context.Context, userID int64, limit, offset int64) ([]domain.User, error)
}
