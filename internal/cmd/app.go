package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/willfong/employee-registry/internal/config"
	"github.com/willfong/employee-registry/internal/database"
	"github.com/willfong/employee-registry/internal/registry"
)

// app bundles what every mode needs: configuration, the log sink and the
// registry service
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	logFile *os.File
	service *registry.Service
}

// newApp loads configuration and wires the logger, connector and service
func newApp() (*app, error) {
	v, err := config.NewViper(envFile)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}

	var sink io.Writer = logFile
	if verbose {
		sink = io.MultiWriter(logFile, os.Stderr)
	}
	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))

	connector, err := database.NewConnector(cfg.Database, logger)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		logFile: logFile,
		service: registry.NewService(connector, logger),
	}, nil
}

// Close releases the log file
func (a *app) Close() error {
	return a.logFile.Close()
}

func parseLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
