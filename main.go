package main

import (
	"context"
	"encoding/gob"
	"net/http"
	"os"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"agora/internal/config"
	dbimpl "agora/internal/db/impl"
	"agora/internal/initialization"
	"agora/internal/queue"
	service "agora/internal/service/impl"
	"agora/internal/state"
	"agora/internal/storage/filestore"
	"agora/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	config, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to read configuration")
	}
	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(config.DbUrl)
	if err != nil {
		zero.Fatal().Err(err).Msg("failed to open database")
	}
	zero.Info().Msg("database connection established")

	if os.Getenv("SETUP") != "" {
		if err = initialization.SetupDB(d, config.MigrationsFolder, config.DbUrl); err != nil {
			zero.Fatal().Err(err).Msg("database setup failed")
		}
	}

	q, err := initialization.InitQueue(d)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to set up the task queue")
	}

	avatars, err := filestore.New(config.AvatarsRoot)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to set up avatar storage")
	}

	gob.Register(web.Session{})
	if config.SessionKey == "" {
		zero.Fatal().Msg("session_key is not configured")
	}
	manager := scs.NewCookieManager(config.SessionKey)

	dd := dbimpl.New(config, d)
	notifier := queue.New(context.Background(), dd, q)

	state := state.State{
		DB:     dd,
		Config: config,
	}

	svc := service.New(&state, notifier, avatars)

	handler := web.New(&config, svc, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    config.Addr,
		Handler: router,
	}

	zero.Info().Str("addr", config.Addr).Msg("started server")
	if err := s.ListenAndServe(); err != nil {
		zero.Fatal().Err(err).Msg("server stopped")
	}
}
