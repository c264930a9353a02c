package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("finance-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Warn("logging.SetLevel")
	}
	if err := envConfig.Validate(); err != nil {
		logger.WithError(err).Fatal("config.Validate")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if envConfig.MigrateOnStart {
		before, after, err := storage.RunMigrations(envConfig.PostgresURL())
		if err != nil {
			logger.WithError(err).Fatal("storage.RunMigrations")
			return
		}
		logger.WithField("preMigrationVersion", before).
			WithField("postMigrationVersion", after).
			Info("Migration status")
	}

	dbStorage, err := storage.NewStorage(ctx, envConfig.PostgresURL())
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	logger.WithField("workers", envConfig.OperatorWorkers).Info("OperatorDelegator.Start")
	defer func() {
		delegator.Stop()
		logger.Info("OperatorDelegator.Stop")
	}()

	svc := service.NewService(dbStorage, delegator, time.Now)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  svc,
		Verifier: auth.NewVerifier(envConfig.JWTSecret, envConfig.JWTIssuer),
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
}
