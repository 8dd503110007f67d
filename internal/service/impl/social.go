package core

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"agora/internal/acl"
	"agora/internal/domain"
	"agora/internal/service"
)

// FollowUser toggles the follow edge viewer->target. Both users' locks are
// held across the whole counter transaction so concurrent actions touching
// either user serialize instead of losing updates.
func (s *AppService) FollowUser(ctx context.Context, viewer acl.ViewerContext, target domain.ProfileView) (service.ActionResult, error) {
	if err := allowAction(viewer, target, viewer.Perms.CanFollow, "follow"); err != nil {
		return service.ActionResult{}, err
	}

	unlock := s.lockPair(viewer.User.ID, target.ID)
	defer unlock()

	following, err := s.DB.ToggleFollow(ctx, viewer.User.ID, target.ID)
	if err != nil {
		return service.ActionResult{}, err
	}

	if following {
		// Notification is queued work; a failure here must not undo the
		// committed follow.
		if err := s.notify.FollowNotification(viewer.User.ID, target.ID); err != nil {
			log.Error().Err(err).Int64("target", target.ID).Msg("failed to queue follow notification")
		}
	}

	message := fmt.Sprintf("You have stopped following %s.", target.Username)
	if following {
		message = fmt.Sprintf("You are now following %s.", target.Username)
	}
	return service.ActionResult{Active: following, Message: message}, nil
}

// BlockUser toggles the block edge. Blocks keep no denormalized counters, so
// only the edge itself changes.
func (s *AppService) BlockUser(ctx context.Context, viewer acl.ViewerContext, target domain.ProfileView) (service.ActionResult, error) {
	if err := allowAction(viewer, target, viewer.Perms.CanBlock, "block"); err != nil {
		return service.ActionResult{}, err
	}

	unlock := s.lockPair(viewer.User.ID, target.ID)
	defer unlock()

	blocking, err := s.DB.ToggleBlock(ctx, viewer.User.ID, target.ID)
	if err != nil {
		return service.ActionResult{}, err
	}

	message := fmt.Sprintf("You have stopped blocking %s.", target.Username)
	if blocking {
		message = fmt.Sprintf("You are now blocking %s.", target.Username)
	}
	return service.ActionResult{Active: blocking, Message: message}, nil
}

// allowAction runs the action preconditions. They all fail before any lock is
// taken. Acting on yourself is rejected up front: the per-user locks are not
// reentrant.
func allowAction(viewer acl.ViewerContext, target domain.ProfileView, permitted bool, action string) error {
	if !viewer.IsAuthenticated() {
		return fmt.Errorf("%w: guests cannot %s users", service.ErrPermissionDenied, action)
	}
	if !permitted {
		return fmt.Errorf("%w: you are not allowed to %s users", service.ErrPermissionDenied, action)
	}
	if viewer.User.ID == target.ID {
		return fmt.Errorf("%w: you cannot %s yourself", service.ErrInvalidInput, action)
	}
	return nil
}

// lockPair locks both users' keys in ascending id order, whichever side
// initiated the action. Mutual actions (A on B while B acts on A) therefore
// contend on the same first key instead of deadlocking on opposite orders.
func (s *AppService) lockPair(a, b int64) func() {
	if b < a {
		a, b = b, a
	}
	unlockFirst := s.locks.Lock(lockKey(a))
	unlockSecond := s.locks.Lock(lockKey(b))
	return func() {
		unlockSecond()
		unlockFirst()
	}
}

func lockKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
