package main

import (
	"context"
	"database/sql"

	"github.com/gorilla/mux"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eligiorbautista/niyoghub-server/internal/config"
	"github.com/eligiorbautista/niyoghub-server/internal/repository/mongo"
	"github.com/eligiorbautista/niyoghub-server/internal/repository/postgres"
	"github.com/eligiorbautista/niyoghub-server/internal/token"
	"github.com/eligiorbautista/niyoghub-server/internal/upload"
)

// App is the main application container.
type App struct {
	Router *mux.Router
	Config *config.Config
	Logger *zap.Logger
}

func provideContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, func() { cancel() }
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.LogDebug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = logger.Sync() }
	return logger, cleanup, nil
}

func providePostgresDB(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Close() }
	return db, cleanup, nil
}

func provideMongoDB(ctx context.Context, cfg *config.Config) (*mongodriver.Database, func(), error) {
	db, err := mongo.NewDB(ctx, cfg.MongoURL, cfg.MongoDBName)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Client().Disconnect(ctx) }
	return db, cleanup, nil
}

func provideConversationRepository(ctx context.Context, db *mongodriver.Database) (*mongo.ConversationRepository, error) {
	return mongo.NewConversationRepository(ctx, db)
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.JWTSecret)
}

func provideUploadStore(cfg *config.Config) *upload.Store {
	return upload.NewStore(cfg.UploadDir)
}
