// Package main starts the bookkeeping API server that manages traders,
// their bank ledgers and foreign currency entries.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/mkbukhari/hisaab-kitaab/cmd/httpserver"
	"github.com/mkbukhari/hisaab-kitaab/internal/middleware"
	"github.com/mkbukhari/hisaab-kitaab/pkg/configpkg"
	"github.com/mkbukhari/hisaab-kitaab/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.SetupWithRetry(config.DBDriver, config.DBSource, config.DBConnectAttempts, config.DBConnectBackoff)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("HISAAB KITAAB API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
