package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/genvoice/casetrack/internal/api"
	"github.com/genvoice/casetrack/internal/infrastructure/config"
	mongodb "github.com/genvoice/casetrack/internal/infrastructure/db/mongo"
	redisdb "github.com/genvoice/casetrack/internal/infrastructure/db/redis"
	"github.com/genvoice/casetrack/pkg/logger"
)

// @title        casetrack API
// @version      1.0
// @description  Case-tracking API with role-based accounts.
// @BasePath     /
func main() {
	// A missing .env is fine; real deployments set the environment.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Username: cfg.Mongo.Username,
		Password: cfg.Mongo.Password,
		Cluster:  cfg.Mongo.Cluster,
		AppName:  cfg.Mongo.AppName,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	seeder := mongodb.NewSeeder(db, cfg.SeedDir, log)
	if err := seeder.EnsureSeedData(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap database")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
