package main

import (
	"errors"
	"log"
	"net/http"

	"wallet/src/api"
	"wallet/src/config"
	"wallet/src/utils"
	"wallet/src/worker"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment and settings only")
	}

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)
	logger := utils.NewLogger(utils.ParseLevel(cfg.Logging.Level), cfg.Logging.ToFile, cfg.Logging.FilePath)

	var httpServer *http.Server
	if cfg.Service.Type == config.WORKER {
		server, err := worker.NewServer(cfg, logger)
		if err != nil {
			return nil, err
		}
		httpServer = worker.NewHTTPServer(server)
	} else {
		server := api.NewServer(cfg, logger)
		httpServer = api.NewHTTPServer(server)
	}

	go func() {
		logger.WithField("service", cfg.Service.Type).Infof("Starting server on port %s", cfg.Service.Port)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("An error raised while setting up server")
			errC <- err
		}
	}()
	return errC, nil
}
