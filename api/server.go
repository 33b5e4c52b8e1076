package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	limiters   *RateLimiterStore
}

// NewServer creates a new HTTP server wired with middleware and routes
func NewServer(addr string, deps *types.Dependencies) (*Server, error) {
	if config.GetString("environment") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())
	engine.Use(CORS())
	engine.Use(RequestSizeLimit(config.GetInt64("security.max_request_bytes")))

	limiters := NewRateLimiterStore()
	if err := RegisterRoutes(engine, deps, limiters); err != nil {
		limiters.Close()
		return nil, err
	}

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:           addr,
			Handler:        engine,
			ReadTimeout:    config.GetDuration("server.read_timeout"),
			WriteTimeout:   config.GetDuration("server.write_timeout"),
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: config.GetInt("server.max_header_bytes"),
		},
		limiters: limiters,
	}, nil
}

// Engine returns the server's gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiters.Close()
	return s.httpServer.Shutdown(ctx)
}
