package core

import (
	"codeberg.org/gruf/go-mutexes"
	"github.com/sergi/go-diff/diffmatchpatch"

	"agora/internal/config"
	"agora/internal/db"
	"agora/internal/queue"
	"agora/internal/service"
	"agora/internal/state"
	"agora/internal/storage"
)

const (
	BcryptCost = 10
)

type AppService struct {
	Config  config.Configuration
	DB      db.DB
	notify  queue.Notifier
	avatars storage.Storage
	// locks serializes profile actions per user id; an action holds both
	// parties' locks, taken in ascending id order, for its whole transaction.
	locks *mutexes.MutexMap
	DMP   *diffmatchpatch.DiffMatchPatch
}

func New(state *state.State, notify queue.Notifier, avatars storage.Storage) service.Service {
	locks := mutexes.MutexMap{}
	return &AppService{
		Config:  state.Config,
		DB:      state.DB,
		notify:  notify,
		avatars: avatars,
		locks:   &locks,
		DMP:     diffmatchpatch.New(),
	}
}
