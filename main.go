package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/soocke/mask-painter-go/app"
	"github.com/soocke/mask-painter-go/config"
	"github.com/soocke/mask-painter-go/debug"
)

func main() {
	var (
		source     = flag.String("source", app.SourceSample, "scene source: sample, file or screen")
		imagePath  = flag.String("image", "", "scene image path, used with -source file")
		maskPath   = flag.String("mask", "", "grayscale mask PNG to pre-seed the labelling")
		configPath = flag.String("config", "", "config file path (defaults to the user config dir)")
		debugMode  = flag.Bool("debug", false, "enable debug logging and runtime metric loggers")
	)
	flag.Parse()

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)

	level := slog.LevelInfo
	if *debugMode || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("Config load failed, using defaults", slog.String("path", path), slog.Any("error", err))
	}

	if *debugMode || cfg.Debug {
		debug.StartMemLogger(2*time.Second, logger)
		debug.StartGoroutineLogger(2*time.Second, logger)
	}

	container, err := app.BuildContainer(cfg, path, logger, app.Options{
		Source:    *source,
		ImagePath: *imagePath,
		MaskPath:  *maskPath,
	})
	if err != nil {
		logger.Error("Startup failed", slog.Any("error", err))
		os.Exit(1)
	}

	application := app.NewApp("Mask Painter", container)
	application.Start()
}
