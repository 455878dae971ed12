// Package server wires the authentication pipeline into an HTTP surface:
// a Gin engine serving the widget redirect endpoint, session-protected
// routes, and the middleware stack around them.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/RazorNd/telegram-login/auth"
	"github.com/RazorNd/telegram-login/logger"
	"github.com/RazorNd/telegram-login/server/middleware"
	"github.com/RazorNd/telegram-login/session"
)

// Server is the HTTP server hosting the Telegram login flow.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     Config
	sessions   *session.Service
	log        *logger.Logger
}

// New creates a Server with the default middleware stack and the login
// route mounted at cfg.LoginPath.
func New(cfg Config, authenticator *auth.Authenticator, sessions *session.Service, log *logger.Logger) *Server {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.RequestLogger(log),
	)

	handler := NewLoginHandler(authenticator, sessions, cfg, log)
	engine.GET(cfg.LoginPath, handler.Handle)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		engine:     engine,
		config:     cfg,
		sessions:   sessions,
		log:        log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Protected returns a route group guarded by the session middleware, using
// the same service that issues tokens on login.
func (s *Server) Protected(path string) *gin.RouterGroup {
	group := s.engine.Group(path)
	group.Use(middleware.RequireAuth(s.sessions))
	return group
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a
// goroutine.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", map[string]any{
				logger.FieldError: err.Error(),
			})
		}
	}()

	s.log.Info("HTTP server started", map[string]any{"addr": s.httpServer.Addr})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
