package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/qanda-dev/qanda/internal/config"
	"github.com/qanda-dev/qanda/internal/logger"
	"github.com/qanda-dev/qanda/internal/router"
	"github.com/qanda-dev/qanda/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg, err := config.Load(configFolder)
	if err != nil {
		logger.Log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Cleanup()

	r := router.New(deps)

	logger.Log.Info("server started", "addr", cfg.Public.ListenAddr)
	if err := http.ListenAndServe(cfg.Public.ListenAddr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
