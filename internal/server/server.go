package server

import (
	"context"
	"fmt"

	"github.com/WebOleg/tether-admin/internal/config"
	"github.com/WebOleg/tether-admin/internal/handler"
	"github.com/WebOleg/tether-admin/internal/middleware"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo                *echo.Echo
	cfg                 *config.Config
	logger              *logger.Logger
	authHandler         *handler.AuthHandler
	uploadHandler       *handler.UploadHandler
	sessionHandler      *handler.SessionHandler
	notificationHandler *handler.NotificationHandler
	healthHandler       *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	authHandler *handler.AuthHandler,
	uploadHandler *handler.UploadHandler,
	sessionHandler *handler.SessionHandler,
	notificationHandler *handler.NotificationHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:                e,
		cfg:                 cfg,
		logger:              log,
		authHandler:         authHandler,
		uploadHandler:       uploadHandler,
		sessionHandler:      sessionHandler,
		notificationHandler: notificationHandler,
		healthHandler:       healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	s.echo.POST("/session/login", s.authHandler.Login)
	s.echo.POST("/session/logout", s.authHandler.Logout)

	s.echo.POST("/uploads", s.uploadHandler.Submit)
	s.echo.GET("/uploads/:id", s.uploadHandler.Status)

	s.echo.POST("/sessions", s.sessionHandler.Open)
	s.echo.GET("/sessions/:id", s.sessionHandler.Snapshot)
	s.echo.DELETE("/sessions/:id", s.sessionHandler.Close)
	s.echo.GET("/sessions/:id/debtors", s.sessionHandler.Debtors)
	s.echo.PUT("/sessions/:id/debtors/:debtorId", s.sessionHandler.UpdateDebtor)
	s.echo.DELETE("/sessions/:id/debtors/:debtorId", s.sessionHandler.DeleteDebtor)
	s.echo.POST("/sessions/:id/verify-vop", s.sessionHandler.VerifyVop)
	s.echo.POST("/sessions/:id/sync", s.sessionHandler.Sync)
	s.echo.POST("/sessions/:id/filter-chargebacks", s.sessionHandler.FilterChargebacks)

	s.echo.GET("/notifications", s.notificationHandler.Drain)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
