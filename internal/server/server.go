// internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wealthlens-api/internal/common/config"
	"wealthlens-api/internal/common/database"
	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/common/observability"
	"wealthlens-api/internal/guardrails"
	sanitizeresponse "wealthlens-api/internal/handlers/copilot/sanitize-response"
	screenquery "wealthlens-api/internal/handlers/copilot/screen-query"
	analyzeprofile "wealthlens-api/internal/handlers/onboarding/analyze-profile"
	confirmimport "wealthlens-api/internal/handlers/upload/confirm-import"
	previewimport "wealthlens-api/internal/handlers/upload/preview-import"
	updatemapping "wealthlens-api/internal/handlers/upload/update-mapping"
	"wealthlens-api/internal/uploadsession"
)

// Server owns the HTTP engine and the shared clients the handlers use.
type Server struct {
	config *config.Config
	logger logger.Logger
	engine *gin.Engine
	http   *http.Server

	postgres *database.PostgresClient
	redis    *database.RedisClient
	obs      *observability.Observability
}

func New(cfg *config.Config, log logger.Logger, pg *database.PostgresClient, rd *database.RedisClient, obs *observability.Observability) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:   cfg,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
		engine:   gin.New(),
		postgres: pg,
		redis:    rd,
		obs:      obs,
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.metricsMiddleware())
	if cfg.Server.EnableCORS {
		s.engine.Use(cors.Default())
	}

	s.registerRoutes()

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.engine,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}
	return s
}

// registerRoutes wires every enabled handler. Handlers are constructed
// here so they share the config, clients and error handler.
func (s *Server) registerRoutes() {
	errorOut := apierrors.NewErrorHandler(s.logger)
	runner := guardrails.NewRunner(s.logger)

	sessionTTL := time.Duration(s.config.Upload.SessionTTLMin) * time.Minute
	sessions := uploadsession.NewStore(s.redis.Client, sessionTTL)

	if config.IsHandlerEnabled(s.config, "analyze-profile") {
		service := analyzeprofile.NewService(s.postgres.DB, s.logger)
		handler := analyzeprofile.NewHandler(analyzeprofile.LoadConfig(), service, s.logger, errorOut)
		s.engine.POST(analyzeprofile.Route, handler.Handle)
	}

	if config.IsHandlerEnabled(s.config, "preview-import") {
		previewCfg := previewimport.LoadConfig()
		if s.config.Upload.MaxFileBytes > 0 {
			previewCfg.MaxFileBytes = s.config.Upload.MaxFileBytes
		}
		if s.config.Upload.MaxRows > 0 {
			previewCfg.MaxRows = s.config.Upload.MaxRows
		}
		handler := previewimport.NewHandler(previewCfg, sessions, s.logger, errorOut)
		s.engine.POST(previewimport.Route, handler.Handle)
	}

	if config.IsHandlerEnabled(s.config, "update-mapping") {
		handler := updatemapping.NewHandler(updatemapping.LoadConfig(), sessions, s.logger, errorOut)
		s.engine.PUT(updatemapping.Route, handler.Handle)
	}

	if config.IsHandlerEnabled(s.config, "confirm-import") {
		service := confirmimport.NewService(s.postgres.DB, s.logger)
		handler := confirmimport.NewHandler(confirmimport.LoadConfig(), service, sessions, s.logger, errorOut)
		s.engine.POST(confirmimport.Route, handler.Handle)
	}

	if config.IsHandlerEnabled(s.config, "screen-query") {
		handler := screenquery.NewHandler(screenquery.LoadConfig(), runner, s.logger, errorOut)
		s.engine.POST(screenquery.Route, handler.Handle)
	}

	if config.IsHandlerEnabled(s.config, "sanitize-response") {
		handler := sanitizeresponse.NewHandler(sanitizeresponse.LoadConfig(), runner, s.logger, errorOut)
		s.engine.POST(sanitizeresponse.Route, handler.Handle)
	}

	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/ready", s.handleReady)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start blocks serving HTTP until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.logger.Info("server listening", map[string]interface{}{
		"address": s.http.Addr,
	})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down", nil)
	return s.http.Shutdown(ctx)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
