package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AgileCatalystDV/ai-threat-model/internal/catalog"
	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/report"
)

var (
	patternsSystemType string
	patternsFramework  string
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List threat patterns",
	Long: `List the threat patterns a plugin would apply.

Patterns come from the built-in catalogs merged with any overrides in
the patterns directory.

Examples:
  # List patterns for LLM applications
  aitm patterns --type llm-app

  # List only the OWASP Agentic patterns of the multi-agent plugin
  aitm patterns --type multi-agent --framework owasp-agentic-top10-2026`,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().StringVarP(&patternsSystemType, "type", "t", "llm-app",
		"System type whose plugin catalog to list")
	patternsCmd.Flags().StringVar(&patternsFramework, "framework", "",
		"Framework filter (empty lists the whole catalog)")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	systemType, err := model.ParseSystemType(patternsSystemType)
	if err != nil {
		return err
	}

	var framework model.Framework
	if patternsFramework != "" {
		framework, err = model.ParseFramework(patternsFramework)
		if err != nil {
			return err
		}
	}

	p := registry.Get(systemType)
	if framework == model.FrameworkPLOT4AI {
		p = registry.GetByFramework(framework)
	}
	if p == nil {
		return fmt.Errorf("no plugin registered for system type %q", systemType)
	}

	patterns := p.ThreatPatterns(framework)

	if getFormat() == report.FormatJSON {
		data, err := json.MarshalIndent(patterns, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal patterns: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%d pattern(s) for %s\n\n", len(patterns), systemType)
	for _, pattern := range patterns {
		printPattern(pattern)
	}
	return nil
}

func printPattern(p catalog.ThreatPattern) {
	fmt.Printf("%s [%s] %s\n", p.ID, p.Framework, p.Title)
	if verbose {
		fmt.Printf("  %s\n", p.Description)
		for _, m := range p.Mitigations {
			fmt.Printf("  - %s\n", m.Description)
		}
	}
}
