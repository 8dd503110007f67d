package state

import (
	"agora/internal/config"
	"agora/internal/db"
)

type State struct {
	DB     db.DB
	Config config.Configuration
}
