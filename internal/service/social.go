package service

import (
	"context"

	"agora/internal/acl"
	"agora/internal/domain"
)

// ActionResult is the outcome of a profile action. Active reports the state
// after the toggle: true means the edge now exists.
type ActionResult struct {
	Active  bool
	Message string
}

type Social interface {
	// FollowUser toggles the follow edge viewer->target under exclusive locks
	// on both users, refreshing the denormalized counters in the same
	// transaction. Callers cannot pick an end state, only toggle.
	FollowUser(ctx context.Context, viewer acl.ViewerContext, target domain.ProfileView) (ActionResult, error)
	// BlockUser is the block analogue; blocks carry no counters.
	BlockUser(ctx context.Context, viewer acl.ViewerContext, target domain.ProfileView) (ActionResult, error)
}
