package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"agendaapi/internal/config"
	"agendaapi/internal/database"
	"agendaapi/internal/database/migration"
	handlers "agendaapi/internal/http/handler"
	"agendaapi/internal/logger"
	"agendaapi/internal/otel"
	mongorepo "agendaapi/internal/repository/mongo"
	"agendaapi/internal/repository/postgres"
	redisrepo "agendaapi/internal/repository/redis"
	"agendaapi/internal/service"
)

const serviceName = "agendaapi"

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, serviceName, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}

	mongoClient, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	mdb := mongoClient.Database(cfg.Mongo.Database)

	rdb, err := database.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	svcs := handlers.Services{
		Users:       service.NewUserService(postgres.NewUserPostgres(db)),
		Departments: service.NewDepartmentService(postgres.NewDepartmentPostgres(db)),
		Roles:       service.NewRoleService(postgres.NewRolePostgres(db)),
		Contacts:    service.NewContactService(mongorepo.NewContactMongo(mdb.Collection(mongorepo.ContactCollection))),
		Events:      service.NewEventService(mongorepo.NewEventMongo(mdb.Collection(mongorepo.EventCollection))),
		Configs:     service.NewConfigService(redisrepo.NewConfigRedis(rdb)),
		Sessions:    service.NewSessionService(redisrepo.NewSessionRedis(rdb)),
	}
	probes := []handlers.Probe{
		{Name: "postgres", Ping: db.PingContext},
		{Name: "mongo", Ping: func(ctx context.Context) error { return mongoClient.Ping(ctx, readpref.Primary()) }},
		{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	}

	app, err := newApp(log, svcs, probes)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case serveErr = <-errCh:
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("tracer shutdown", zap.Error(err))
	}

	if serveErr != nil {
		return fmt.Errorf("http server: %w", serveErr)
	}
	log.Info("server stopped cleanly")
	return nil
}
