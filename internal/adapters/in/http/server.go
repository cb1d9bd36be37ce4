// Package http exposes the operational HTTP surface. The order lifecycle
// itself is driven through the command and query handlers; this server only
// answers liveness and readiness probes.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Server answers health probes for the running process.
type Server struct {
	db *gorm.DB
}

// NewServer creates a new health server over the given database handle.
func NewServer(db *gorm.DB) *Server {
	return &Server{db: db}
}

// RegisterRoutes attaches the health endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/ready", s.Ready)
}

// Health handles GET /health - reports process liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready - reports database reachability.
func (s *Server) Ready(ctx echo.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
