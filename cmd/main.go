package main

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aidex-platform/aidex-server/internal/api"
	"github.com/aidex-platform/aidex-server/internal/clients/checkout"
	"github.com/aidex-platform/aidex-server/internal/clients/identity"
	"github.com/aidex-platform/aidex-server/internal/policy"
	"github.com/aidex-platform/aidex-server/internal/repository"
	"github.com/aidex-platform/aidex-server/internal/service"
	"github.com/aidex-platform/aidex-server/pkg/broker"
	"github.com/aidex-platform/aidex-server/pkg/config"
	"github.com/aidex-platform/aidex-server/pkg/job"
	"github.com/aidex-platform/aidex-server/pkg/logger"
	"github.com/aidex-platform/aidex-server/pkg/postgres"
	"github.com/aidex-platform/aidex-server/pkg/security"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	engine := policy.New()
	if cfg.Policy.StrictTransitions {
		engine = policy.NewStrict()
	}

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	gateway := checkout.NewClient(cfg.Checkout)

	s := service.New(repo, engine, gateway, producer)

	identityService := identity.NewClient(cfg.IdentityURL)

	{
		job.NewService().
			RegisterJob("poll checkout sessions", cfg.Checkout.PollInterval, s.PollCheckoutSessions).
			Start(ctx)
	}

	var callbackPublicKey *rsa.PublicKey

	if cfg.Checkout.CallbackCheckEnabled {
		decodedPKey, err := base64.StdEncoding.DecodeString(cfg.Checkout.CallbackPublicKey)
		panicOnErr("decode callback public key", err)

		callbackPublicKey, err = security.ParsePublicKey(decodedPKey)
		panicOnErr("parse callback public key", err)
	}

	handler := api.NewHandler(s, cfg.Checkout.CallbackCheckEnabled, callbackPublicKey)
	mw := api.NewMiddleware(identityService)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
