package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/martijn/trainhub/internal/api/docs"
	"github.com/martijn/trainhub/internal/api/handler"
	"github.com/martijn/trainhub/internal/api/middleware"
	"github.com/martijn/trainhub/internal/core/repository"
	"github.com/martijn/trainhub/internal/core/service"
	"github.com/martijn/trainhub/internal/infrastructure/memory"
	"github.com/martijn/trainhub/internal/logging"
	"github.com/martijn/trainhub/pkg/config"
)

// BasePath prefixes every sandbox route.
const BasePath = "/api"

// NewMemoryCatalog returns a catalog whose records live in process memory.
func NewMemoryCatalog(tokens *service.TokenService, logger *slog.Logger) *service.CatalogService {
	repos := make(map[string]repository.RecordRepository)
	for name := range service.Schemas() {
		repos[name] = memory.NewRecords(name)
	}
	return service.NewCatalogService(repos, tokens, logger)
}

type Server struct {
	router *gin.Engine
	srv    *http.Server
	logger *slog.Logger
}

// NewServer creates the sandbox backend. db backs /health/db and may be nil.
func NewServer(
	cfg *config.Config,
	catalog *service.CatalogService,
	tokens *service.TokenService,
	db handler.Pinger,
	logger *slog.Logger,
) *Server {
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = logging.Discard()
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandlerMiddleware(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(catalog)
	healthHandler := handler.NewHealthHandler(db, "sqlite")

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	base := router.Group(BasePath)

	// Public routes (no auth required)
	base.GET("/health", healthHandler.Health)
	base.GET("/health/db", healthHandler.DBHealth)

	auth := base.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// Protected routes (auth required)
	authMiddleware := middleware.AuthMiddleware(tokens)
	base.GET("/auth/me", authMiddleware, authHandler.Me)

	for _, resource := range []string{
		service.ResourceClients,
		service.ResourceEcoles,
		service.ResourceFormateurs,
		service.ResourceSessions,
		service.ResourceUsers,
	} {
		h := handler.NewResourceHandler(catalog, resource)

		group := base.Group("/" + resource)
		group.Use(authMiddleware)
		{
			group.POST("", h.Create)
			group.GET("", h.List)
			group.GET("/:id", h.Get)
			group.PUT("/:id", h.Update)
			group.DELETE("/:id", h.Delete)
		}

		if resource != service.ResourceSessions && resource != service.ResourceUsers {
			group.GET("/:id/sessions", h.Sessions)
		}
	}

	return &Server{
		router: router,
		srv: &http.Server{
			Addr:           fmt.Sprintf("%s:%d", cfg.SandboxHost, cfg.SandboxPort),
			Handler:        router,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		logger: logger,
	}
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting sandbox backend", "addr", s.srv.Addr, "base_path", BasePath)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
