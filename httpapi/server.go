// Package httpapi exposes the planner over a JSON HTTP API.
//
// This is a presentation surface: it validates nothing of its own beyond
// request shape, delegates to the planner, and renders the core's output
// read-only. Configuration errors surface as 400 responses carrying the
// core's message verbatim.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/classmix/regroup/internal/logger"
	"github.com/classmix/regroup/planner"
	"github.com/classmix/regroup/types"
)

// Server serves the plan API.
type Server struct {
	router  *gin.Engine
	planner *planner.Planner
	logger  types.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets a logger.
//
// Parameters:
//   - log: Logger implementation
//
// Returns:
//   - Option: Functional option for NewServer
func WithLogger(log types.Logger) Option {
	return func(s *Server) {
		s.logger = log
	}
}

// NewServer creates a Server backed by the given planner.
//
// The router runs in release mode with panic recovery; request logging is
// left to the injected structured logger rather than gin's default writer.
//
// Parameters:
//   - p: Planner used to satisfy plan requests
//   - opts: Optional dependencies (WithLogger)
//
// Returns:
//   - *Server: Initialized server; call Run or mount Handler
func NewServer(p *planner.Planner, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router:  gin.New(),
		planner: p,
		logger:  logger.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(gin.Recovery())
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api/v1")
	{
		api.POST("/plans", s.createPlan)
		api.GET("/plans/preview", s.previewSizes)
		api.POST("/plans/export", s.exportPlan)
	}
}

// Handler returns the underlying http.Handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API on the given address, blocking until the listener
// fails.
//
// Parameters:
//   - addr: Listen address (e.g. ":8080")
//
// Returns:
//   - error: Listener error
func (s *Server) Run(addr string) error {
	s.logger.Info("http api listening", "addr", addr)

	return s.router.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
