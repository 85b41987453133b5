package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexca-social/alexca/internal/config"
	"github.com/alexca-social/alexca/internal/logger"
	"github.com/alexca-social/alexca/internal/router"
	"github.com/alexca-social/alexca/internal/setup"
)

const (
	defaultPort      = "8080"
	evictionInterval = 1 * time.Minute
	readTimeout      = 5 * time.Second
	writeTimeout     = 10 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	deps.Sessions.StartBackgroundEviction(ctx, evictionInterval)

	r := router.SetupRouter(deps)

	httpPort := cfg.Public.Port
	if p := os.Getenv("PORT"); p != "" {
		httpPort = p
	}
	if httpPort == "" {
		httpPort = defaultPort
	}

	server := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      r,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logger.Log.Info("server started", "port", httpPort)
	log.Fatal(server.ListenAndServe())
}
