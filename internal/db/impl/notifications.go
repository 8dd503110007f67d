package impl

import (
	"context"
	"time"
)

func (d *dbImpl) InsertFollowNotification(ctx context.Context, actorID, targetID int64) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO notifications(user_id, actor_id, kind, created_on)
		 VALUES (?, ?, 'follow', ?)`,
		targetID, actorID, time.Now())
	return d.HandleError(err)
}
