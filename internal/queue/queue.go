package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"

	"agora/internal/db"
)

// Notifier enqueues notification work so the actions that trigger it never
// wait on notification writes.
type Notifier interface {
	FollowNotification(actorID, targetID int64) error
}

type notifierImpl struct {
	db     db.DB
	queues *backlite.Client
}

func New(ctx context.Context, db db.DB, blClient *backlite.Client) Notifier {
	q := &notifierImpl{
		db:     db,
		queues: blClient,
	}
	q.register()
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *notifierImpl) FollowNotification(actorID, targetID int64) error {
	log.Debug().Int64("actor", actorID).Int64("target", targetID).Msg("enqueing follow notification")
	task := FollowNotifyJob{
		ActorID:  actorID,
		TargetID: targetID,
	}
	_, err := q.queues.Add(task).Save()
	return err
}
