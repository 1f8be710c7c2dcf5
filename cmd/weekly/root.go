// ABOUTME: Root Cobra command for weekly CLI.
// ABOUTME: Loads config and manages the report store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/weekly/internal/config"
	"github.com/harperreed/weekly/internal/storage"
	"github.com/spf13/cobra"
)

// noStore marks commands that never touch the database.
const noStore = "no-store"

var (
	cfg    *config.Config
	repo   storage.Repository
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly engineering report tracker",
	Long: `Weekly is a CLI tool for tracking an engineering team's weekly report.

WHAT IT TRACKS (one report per Monday..Sunday week):

  Delivery   online_requirements, online_req_count
  Quality    fixed_bugs, bug_fix_rate
  Releases   release_orders, release_failures
  Reuse      new_reuse_units, new_reuse_events

QUICK START:

  $ weekly add --requirements 12 --bugs 8 --orders 20   # This week's report
  $ weekly add --date 2024-03-04 --requirements 9       # A past week
  $ weekly list                                         # All reports
  $ weekly compare                                      # Last 4 weeks, week over week
  $ weekly trend --metric fixed_bugs                    # One metric over time

HTTP API:

  Run 'weekly serve' to expose the reports as a JSON API behind a login.
  Set the login first with 'weekly passwd --save'.

MCP INTEGRATION:

  Run 'weekly mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "weekly": { "command": "weekly", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Reports are stored in SQLite at ~/.local/share/weekly/weekly.db.
  Override with --db, WEEKLY_DATA_DIR, or data_dir in
  ~/.config/weekly/config.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Annotations[noStore] != "" {
			return nil
		}

		// A failed RunE skips PersistentPostRunE, so close anything left open.
		if repo != nil {
			_ = repo.Close()
		}
		if dbPath != "" {
			repo, err = storage.Open(config.ExpandPath(dbPath))
		} else {
			repo, err = cfg.OpenStorage()
		}
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.local/share/weekly/weekly.db)")
}
