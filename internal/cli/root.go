package cli

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AgileCatalystDV/ai-threat-model/internal/plot4ai"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plugin"
	"github.com/AgileCatalystDV/ai-threat-model/internal/report"
)

var (
	// Global flags
	patternsDir  string
	deckPath     string
	outputFormat string
	verbose      bool

	// Shared resources
	registry *plugin.Registry
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "aitm",
	Short: "Threat modeling CLI for AI-native systems",
	Long: `aitm - Threat modeling for AI-native systems.

Analyzes a system model against OWASP LLM Top 10 (2025), OWASP Agentic
Top 10 (2026), a multi-agent catalog, and the PLOT4AI card deck, and
reports applicable threats with severity, attack vectors, and mitigations.

Examples:
  # Analyze a threat model file
  aitm analyze model.json

  # Validate a threat model and its components
  aitm validate model.json

  # List patterns for a system type
  aitm patterns --type llm-app

  # List PLOT4AI elicitation questions for the Design phase
  aitm questions --phase Design`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		opts := plugin.Options{PatternsDir: patternsDir}

		if deckPath != "" {
			deck, err := plot4ai.LoadDeck(deckPath)
			if err != nil {
				// Degrade to built-in catalogs; the PLOT4AI plugin runs empty.
				log.Printf("warning: failed to load PLOT4AI deck: %v", err)
			} else {
				opts.Deck = deck
			}
		}

		registry = plugin.NewRegistry()
		plugin.RegisterDefaults(registry, opts)

		return nil
	},
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&patternsDir, "patterns", "p", findPatternsDir(),
		"Path to the pattern override directory")
	rootCmd.PersistentFlags().StringVar(&deckPath, "deck", findDeckPath(),
		"Path to a cached PLOT4AI deck JSON file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json",
		"Output format: json or text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Human-readable verbose output")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// findPatternsDir locates the pattern override directory
func findPatternsDir() string {
	// Check common locations
	candidates := []string{
		"patterns",
		filepath.Join(os.Getenv("HOME"), ".aitm", "patterns"),
		"/usr/local/share/aitm/patterns",
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return ""
}

// findDeckPath locates a cached PLOT4AI deck file
func findDeckPath() string {
	candidates := []string{
		"plot4ai-deck.json",
		filepath.Join(os.Getenv("HOME"), ".aitm", "plot4ai-deck.json"),
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// getFormat returns the output format based on flags
func getFormat() report.OutputFormat {
	if outputFormat == "text" || verbose {
		return report.FormatText
	}
	return report.FormatJSON
}
