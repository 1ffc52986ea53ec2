package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashbook-server/api"
	"github.com/carson-networks/cashbook-server/internal/auth"
	"github.com/carson-networks/cashbook-server/internal/config"
	"github.com/carson-networks/cashbook-server/internal/logging"
	"github.com/carson-networks/cashbook-server/internal/service"
	"github.com/carson-networks/cashbook-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("cashbook-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	tokens := auth.NewTokenManager(envConfig.JWTSecret, envConfig.TokenTTL)
	svc := service.NewService(dbStorage, tokens)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			DB:      dbStorage.DB,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
