package queue

import (
	"context"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
)

func (q *notifierImpl) register() {
	notifyQueue := backlite.NewQueue[FollowNotifyJob](q.notify())

	q.queues.Register(notifyQueue)
}

func (q *notifierImpl) notify() func(context.Context, FollowNotifyJob) error {
	return func(ctx context.Context, task FollowNotifyJob) error {
		err := q.db.InsertFollowNotification(ctx, task.ActorID, task.TargetID)
		if err != nil {
			log.Error().
				Int64("actor", task.ActorID).
				Int64("target", task.TargetID).
				Err(err).
				Msg("follow notification failed")
		}
		return err
	}
}
