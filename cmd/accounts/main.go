// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package main contains accounts main function to start the accounts service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/asterna/accounts"
	"github.com/asterna/accounts/groups"
	gapi "github.com/asterna/accounts/groups/api"
	gmiddleware "github.com/asterna/accounts/groups/middleware"
	gpostgres "github.com/asterna/accounts/groups/postgres"
	"github.com/asterna/accounts/internal/email"
	aslog "github.com/asterna/accounts/logger"
	"github.com/asterna/accounts/pkg/binding"
	"github.com/asterna/accounts/pkg/events"
	"github.com/asterna/accounts/pkg/events/redis"
	pgclient "github.com/asterna/accounts/pkg/postgres"
	"github.com/asterna/accounts/pkg/prometheus"
	"github.com/asterna/accounts/pkg/server"
	httpserver "github.com/asterna/accounts/pkg/server/http"
	"github.com/asterna/accounts/pkg/uuid"
	"github.com/asterna/accounts/users"
	uapi "github.com/asterna/accounts/users/api"
	"github.com/asterna/accounts/users/emailer"
	uevents "github.com/asterna/accounts/users/events"
	"github.com/asterna/accounts/users/hasher"
	umiddleware "github.com/asterna/accounts/users/middleware"
	upostgres "github.com/asterna/accounts/users/postgres"
	"github.com/caarlos0/env/v8"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	migrate "github.com/rubenv/sql-migrate"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "accounts"
	envPrefixDB    = "ACCOUNTS_DB_"
	envPrefixHTTP  = "ACCOUNTS_HTTP_"
	envPrefixEmail = "ACCOUNTS_EMAIL_"
	defDB          = "accounts"
	defSvcHTTPPort = "9002"
)

type config struct {
	LogLevel   string `env:"ACCOUNTS_LOG_LEVEL"        envDefault:"info"`
	ConfirmURL string `env:"ACCOUNTS_CONFIRM_ENDPOINT" envDefault:"/users/confirm"`
	HostURL    string `env:"ACCOUNTS_HOST_URL"         envDefault:"http://localhost:9002"`
	ESURL      string `env:"ACCOUNTS_ES_URL"           envDefault:"redis://localhost:6379/0"`
	ESConsumer string `env:"ACCOUNTS_ES_CONSUMER"      envDefault:"accounts"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err.Error())
	}

	logger, err := aslog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err.Error())
	}

	var exitCode int
	defer aslog.ExitWithError(&exitCode)

	dbConfig := pgclient.Config{Name: defDB}
	if err := env.ParseWithOptions(&dbConfig, env.Options{Prefix: envPrefixDB}); err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	migrations := migrate.MemoryMigrationSource{
		Migrations: append(gpostgres.Migration().Migrations, upostgres.Migration().Migrations...),
	}
	db, err := pgclient.Setup(dbConfig, migrations)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer db.Close()

	ec := email.Config{}
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: envPrefixEmail}); err != nil {
		logger.Error(fmt.Sprintf("failed to load email configuration : %s", err))
		exitCode = 1
		return
	}

	database := pgclient.NewDatabase(db)
	binder := binding.New(binding.WithoutCSRF())
	idp := uuid.New()

	groupsSvc := newGroupsService(database, binder, idp, logger)
	usersSvc, err := newUsersService(database, binder, idp, cfg, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to setup users service: %s", err))
		exitCode = 1
		return
	}

	if err := subscribeToRegistrations(ctx, cfg, &ec, logger); err != nil {
		logger.Error(fmt.Sprintf("failed to subscribe to registration events: %s", err))
		exitCode = 1
		return
	}

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.ParseWithOptions(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	mux := chi.NewRouter()
	gapi.MakeHandler(groupsSvc, mux, logger)
	uapi.MakeHandler(usersSvc, mux, logger)
	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Get("/version", accounts.Version(svcName))
	mux.Handle("/metrics", promhttp.Handler())

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, mux, logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
		exitCode = 1
	}
}

func newGroupsService(database pgclient.Database, binder binding.Binder, idp accounts.IDProvider, logger *slog.Logger) groups.Service {
	repo := gpostgres.New(database)

	svc := groups.NewService(repo, binder, idp)
	svc = gmiddleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics("groups", "api")
	svc = gmiddleware.MetricsMiddleware(svc, counter, latency)

	return svc
}

func newUsersService(database pgclient.Database, binder binding.Binder, idp accounts.IDProvider, cfg config, logger *slog.Logger) (users.Service, error) {
	repo := upostgres.New(database)

	svc := users.NewService(repo, binder, hasher.New(), idp)
	svc, err := uevents.NewEventStoreMiddleware(svc, cfg.ESURL)
	if err != nil {
		return nil, err
	}
	svc = umiddleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics("users", "api")
	svc = umiddleware.MetricsMiddleware(svc, counter, latency)

	return svc, nil
}

func subscribeToRegistrations(ctx context.Context, cfg config, ec *email.Config, logger *slog.Logger) error {
	emailerClient, err := emailer.New(cfg.ConfirmURL, ec)
	if err != nil {
		return err
	}

	subscriber, err := redis.NewSubscriber(cfg.ESURL, logger)
	if err != nil {
		return err
	}

	subConfig := events.SubscriberConfig{
		Consumer: cfg.ESConsumer,
		Stream:   uevents.StreamID,
		Handler:  uevents.NewRegistrationHandler(emailerClient, cfg.HostURL, logger),
	}

	return subscriber.Subscribe(ctx, subConfig)
}
