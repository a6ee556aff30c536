package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AgileCatalystDV/ai-threat-model/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for AI agent integration",
	Long: `Start a Model Context Protocol (MCP) server over stdin/stdout.

The server exposes the analyze_system, validate_model, list_patterns,
and elicitation_questions tools for MCP-compatible AI assistants.

Examples:
  # Start the stdio server with the default catalogs
  aitm serve

  # Start with a cached PLOT4AI deck and pattern overrides
  aitm serve --deck plot4ai-deck.json --patterns ./patterns`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	server := mcp.NewServer(registry)
	return server.ServeStdio(os.Stdin, os.Stdout)
}
