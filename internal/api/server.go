// ABOUTME: HTTP API exposing weekly reports behind a login gate.
// ABOUTME: Wires gin routes to the report repository and derived metrics.
package api

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/weekly/internal/auth"
	"github.com/harperreed/weekly/internal/logger"
	"github.com/harperreed/weekly/internal/storage"
)

// Server serves the JSON API.
type Server struct {
	repo       storage.Repository
	credential auth.Credential
	sessions   *auth.Sessions
	engine     *gin.Engine
}

// NewServer builds the router. Every report route requires a session.
func NewServer(repo storage.Repository, credential auth.Credential, sessions *auth.Sessions) *Server {
	s := &Server{
		repo:       repo,
		credential: credential,
		sessions:   sessions,
		engine:     gin.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.Use(RequestID(), logger.GinLogger(), logger.GinRecovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "weekly"})
	})

	api := r.Group("/api")
	api.POST("/login", s.handleLogin)

	authed := api.Group("")
	authed.Use(AuthRequired(s.sessions))
	{
		authed.GET("/session", s.handleSession)
		authed.POST("/logout", s.handleLogout)
		authed.GET("/week", s.handleWeek)

		authed.GET("/reports", s.handleListReports)
		authed.POST("/reports", s.handleCreateReport)
		authed.GET("/reports/:id", s.handleGetReport)
		authed.PUT("/reports/:id", s.handleUpdateReport)
		authed.DELETE("/reports/:id", s.handleDeleteReport)

		authed.GET("/compare", s.handleCompare)
		authed.GET("/summary", s.handleSummary)
		authed.GET("/trend", s.handleTrend)
	}
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          stdlog.New(logger.Get().With().Str("component", "http").Logger(), "", 0),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
