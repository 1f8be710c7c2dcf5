// ABOUTME: CLI command starting the HTTP API.
// ABOUTME: Reports are served as JSON behind the configured login.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/weekly/internal/api"
	"github.com/harperreed/weekly/internal/auth"
	"github.com/harperreed/weekly/internal/config"
	"github.com/harperreed/weekly/internal/logger"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON HTTP API.

Every report route requires a session token from POST /api/login.
Configure the login with 'weekly passwd --save' first.

ROUTES:

  GET    /health
  POST   /api/login             {"username": "...", "password": "..."}
  GET    /api/session
  GET    /api/week?date=YYYY-MM-DD
  GET    /api/reports[?limit=N]
  POST   /api/reports
  GET    /api/reports/:id
  PUT    /api/reports/:id
  DELETE /api/reports/:id
  GET    /api/compare?weeks=4
  GET    /api/summary
  GET    /api/trend?metric=online_requirements

CONFIGURATION (~/.config/weekly/config.json):

  server.addr          listen address (default 127.0.0.1:8501)
  server.mode          gin mode: release, debug, test
  auth.session_secret  token signing key, at least 16 bytes
                       (or WEEKLY_SESSION_SECRET)
  auth.session_ttl     session lifetime (default 12h)
  log.level            debug, info, warn, error`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(cfg.GetLogLevel())
		gin.SetMode(cfg.GetMode())

		sessions, err := newSessions(cfg)
		if err != nil {
			return err
		}

		credential := cfg.Credential()
		if credential.Username == "" || credential.PasswordHash == "" {
			logger.Warn().Msg("no login configured; every login will fail until 'weekly passwd --save' is run")
		}

		addr := cfg.GetAddr()
		if serveAddr != "" {
			addr = serveAddr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := api.NewServer(repo, credential, sessions)
		fmt.Fprintf(cmd.ErrOrStderr(), "weekly API listening on http://%s\n", addr)
		return server.ListenAndServe(ctx, addr)
	},
}

func newSessions(c *config.Config) (*auth.Sessions, error) {
	secret := c.GetSessionSecret()
	if secret == "" {
		return nil, errors.New("session secret not configured: set auth.session_secret in the config file or " + config.EnvSessionSecret)
	}
	ttl, err := c.GetSessionTTL()
	if err != nil {
		return nil, err
	}
	return auth.NewSessions([]byte(secret), ttl)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
