package web

import (
	"context"
	_ "embed"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/internal/summarizer"
)

//go:embed index.html
var indexHTML []byte

type implServer struct {
	cfg        *config.Config
	pipeline   pipeline.Pipeline
	summarizer summarizer.Summarizer
	logger     logger.Logger
	app        *fiber.App
}

// New builds the fiber app and registers every route.
func New(cfg *config.Config, p pipeline.Pipeline, sum summarizer.Summarizer, log logger.Logger) Server {
	s := &implServer{
		cfg:        cfg,
		pipeline:   p,
		summarizer: sum,
		logger:     log,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "audio-summarizer",
		BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleFiberError,
	})
	s.routes()
	return s
}

func (s *implServer) routes() {
	s.app.Use(s.requestID)

	s.app.Get("/", s.handleIndex)
	s.app.Get("/healthz", s.handleHealth)

	api := s.app.Group("/api/summarize")
	api.Post("/upload", s.handleFile(fieldAudio, false))
	api.Post("/recording", s.handleFile(fieldAudio, true))
	api.Post("/url", s.handleURL)
	api.Post("/batch", s.handleBatch)
}

func (s *implServer) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *implServer) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// handleFiberError renders framework errors (404, body too large) as JSON.
func (s *implServer) handleFiberError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
