package web

import (
	"github.com/alexedwards/scs"

	"agora/internal/config"
	"agora/internal/service"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}
