package http

import (
	"time"

	"blogkeeper/internal/config"
	"blogkeeper/internal/logger"
	"blogkeeper/internal/service"
)

type Handler struct {
	services *service.Services

	// devMode controls whether error responses carry internal detail.
	devMode     bool
	environment string

	// uploadsDir is served under /uploads/ when local image storage is
	// configured; empty means images live elsewhere (S3).
	uploadsDir string

	// maxUploadBytes bounds multipart request parsing.
	maxUploadBytes int64

	startedAt time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	uploadsDir := cfg.Storage.Images.Dir
	if cfg.Storage.Images.S3Endpoint != "" {
		uploadsDir = ""
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		devMode:        cfg.App.DevMode,
		environment:    cfg.App.Environment,
		uploadsDir:     uploadsDir,
		maxUploadBytes: cfg.Storage.Images.MaxUploadBytes,
		startedAt:      time.Now(),
		logger:         logger,
	}
}
