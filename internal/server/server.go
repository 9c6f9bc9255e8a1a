package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/aleister1102/hlsprobe/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server is the HTTP boundary around an Extractor.
type Server struct {
	cfg        config.ServerConfig
	engine     *gin.Engine
	httpServer *http.Server
	logger     zerolog.Logger
}

// NewServer builds the router and the underlying http.Server.
func NewServer(cfg config.ServerConfig, extractor Extractor, logger zerolog.Logger) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	serverLogger := logger.With().Str("component", "Server").Logger()
	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(
		requestIDMiddleware(),
		recoveryMiddleware(serverLogger),
		accessLogMiddleware(serverLogger),
		corsMiddleware(),
	)

	handler := NewExtractHandler(extractor, logger)
	engine.GET("/healthz", healthHandler)
	engine.GET("/api/extract", handler.Handle)
	engine.POST("/api/extract", handler.Handle)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse("route not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse("method not allowed"))
	})

	return &Server{
		cfg:    cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.ListenAddress,
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout.Std(),
			WriteTimeout: cfg.WriteTimeout.Std(),
		},
		logger: serverLogger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down within ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.cfg.ListenAddress).Msg("HTTP server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return common.WrapError(err, "HTTP server failed")
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout.Std())
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return common.WrapError(err, "HTTP server shutdown failed")
	}
	return nil
}
