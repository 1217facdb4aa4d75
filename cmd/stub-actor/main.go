package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samarpantrust/outreach/internal/actor"
	"github.com/samarpantrust/outreach/internal/actor/actortest"
	"github.com/samarpantrust/outreach/internal/config"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		cfg = &config.Config{}
	}
	log := logger.New(cfg.App.Env, cfg.App.LogLevel)

	log.Warn().Msg("╔════════════════════════════════════════════════════════════╗")
	log.Warn().Msg("║  WARNING: This is a STUB ACTOR for local testing ONLY.     ║")
	log.Warn().Msg("║  Submissions are kept in memory and lost on exit.          ║")
	log.Warn().Msg("║                                                            ║")
	log.Warn().Msg("║  Point the site at it with ACTOR_BASE_URL.                 ║")
	log.Warn().Msg("╚════════════════════════════════════════════════════════════╝")

	addr := os.Getenv("STUB_ACTOR_ADDR")
	if addr == "" {
		addr = ":8090"
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           actor.NewHandler(actortest.New(), []byte(cfg.Actor.SigningKey), log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", addr).Bool("signed", cfg.Actor.SigningKey != "").Msg("stub actor listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("stub actor error")
		}
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("stub actor shutdown error")
	}
	log.Info().Msg("stub actor stopped")
}
