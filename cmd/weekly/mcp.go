// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/weekly/internal/logger"
	"github.com/harperreed/weekly/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to read and record weekly reports through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "weekly": {
        "command": "weekly",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  add_report      Record the report for a week
  list_reports    List reports, newest first
  get_report      Get a report by ID or date
  update_report   Change fields of a report
  delete_report   Delete a report
  week_bounds     Monday..Sunday range of a date
  compare_weeks   Week-over-week comparison of recent weeks

AVAILABLE RESOURCES:

  weekly://recent    Last four reports
  weekly://summary   Totals, averages and this week's headline`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(cfg.GetLogLevel())

		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		logger.Info().Str("db", dbPathFor()).Msg("mcp server starting")
		return server.Serve(ctx)
	},
}

// dbPathFor reports which database file this invocation uses.
func dbPathFor() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath()
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
