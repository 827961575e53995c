// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cipherhold Authors

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cipherhold/cipherhold/internal/blob"
	"github.com/cipherhold/cipherhold/internal/channel"
	"github.com/cipherhold/cipherhold/internal/config"
	"github.com/cipherhold/cipherhold/internal/crypto"
	handler "github.com/cipherhold/cipherhold/internal/handler/http"
	"github.com/cipherhold/cipherhold/internal/lock"
	"github.com/cipherhold/cipherhold/internal/logger"
	"github.com/cipherhold/cipherhold/internal/server"
	"github.com/cipherhold/cipherhold/internal/service"
	"github.com/cipherhold/cipherhold/internal/store"
	"github.com/cipherhold/cipherhold/internal/token"
	"github.com/cipherhold/cipherhold/migrations"
)

const defaultTokenDuration = 24 * time.Hour

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cipherhold-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	material, err := crypto.LoadOrGenerateKeyMaterial(cfg.App.KeyFilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading key material")
	}

	cipher, err := crypto.NewCipher(material)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher")
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	pool, err := pgxpool.New(ctx, cfg.Storage.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating coordination pool")
	}

	locker := lock.NewPostgresLocker(pool, log)

	ch, err := channel.NewPostgresChannel(ctx, cfg.Storage.DB.DSN, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating change channel")
	}

	repos := store.NewRepositories(db, log)

	blobs, err := blob.NewStore(cfg.Storage.Blobs.Dir, cipher, locker, repos.SizeHints, cfg.Locks.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	services := service.NewServices(repos, blobs, ch, cipher, log)

	tokenDuration := cfg.App.TokenDuration
	if tokenDuration <= 0 {
		tokenDuration = defaultTokenDuration
	}
	tokens := token.NewManager(cfg.App.TokenSignKey, tokenDuration)

	handlers := handler.NewHandler(services, ch, tokens, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if err := ch.Close(ctx); err != nil {
		log.Err(err).Msg("error closing change channel")
	}
	pool.Close()

	if err := db.Close(); err != nil {
		log.Err(err).Msg("error closing database")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
