package db

import "context"

type Notifications interface {
	// InsertFollowNotification records that actor started following target, so
	// the target sees it on their next visit. Written by the task queue, not
	// inside the follow transaction.
	InsertFollowNotification(ctx context.Context, actorID, targetID int64) error
}
