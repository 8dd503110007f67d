package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	NotifyQueue = "Notify"
)

type FollowNotifyJob struct {
	ActorID  int64
	TargetID int64
}

func (j FollowNotifyJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        NotifyQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: false,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}
