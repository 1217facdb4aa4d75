package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samarpantrust/outreach/internal/actor"
	"github.com/samarpantrust/outreach/internal/cache"
	"github.com/samarpantrust/outreach/internal/config"
	"github.com/samarpantrust/outreach/internal/notify"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
	"github.com/samarpantrust/outreach/internal/service/submission"
	"github.com/samarpantrust/outreach/internal/site"
)

// checkPortAvailable verifies that the listen address is not already taken,
// usually by a stub actor started on the wrong port.
func checkPortAvailable(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("address %s is already in use: %w", addr, err)
	}
	return ln.Close()
}

func connectRedis(cfg config.RedisConfig, log logger.Logger) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unreachable, listing cache disabled")
		_ = rdb.Close()
		return nil
	}
	log.Info().Str("addr", cfg.Addr).Msg("redis connected, listing cache enabled")
	return rdb
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)

	addr := cfg.Server.Addr()
	if err := checkPortAvailable(addr); err != nil {
		log.Fatal().Err(err).Msg("pre-flight check failed")
	}

	rdb := connectRedis(cfg.Redis, log)
	if rdb != nil {
		defer rdb.Close()
	}
	lc := cache.New(rdb, cfg.Redis.KeyPrefix, cfg.Redis.TTL(), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := actor.NewClient(cfg.Actor)
	conn := actor.NewConn()
	go func() {
		err := conn.Establish(ctx, client, client, cfg.Actor.ProbeInterval(), func(err error) {
			log.Warn().Err(err).Str("actor", cfg.Actor.BaseURL).Msg("actor not reachable yet")
		})
		if err != nil {
			log.Warn().Err(err).Msg("gave up connecting to actor")
			return
		}
		log.Info().Str("actor", cfg.Actor.BaseURL).Msg("actor connected")
	}()

	var notifier submission.Notifier
	if cfg.Notify.Enabled {
		mailer, err := notify.NewSESMailer(ctx, cfg.Notify, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize SES mailer")
		}
		n, err := notify.NewNotifier(mailer, cfg.Site.Name, cfg.Notify)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize notifier")
		}
		notifier = n
		log.Info().Strs("to", cfg.Notify.To).Msg("staff notifications enabled")
	}

	svc := submission.NewService(conn, lc, notifier, log)

	server, err := site.NewServer(cfg, svc, lc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build site")
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-done
	log.Info().Msg("shutting down")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	svc.Wait()

	log.Info().Msg("server stopped")
}
