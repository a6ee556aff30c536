package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <model-file>",
	Short: "Validate a threat model",
	Long: `Validate a threat model file.

Checks referential integrity (data flows and threats must reference
known components) and runs per-component validation for the plugin
covering the system's type.

Examples:
  # Validate a threat model
  aitm validate model.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	tm, err := model.Load(args[0])
	if err != nil {
		return err
	}

	hasErrors := false

	refErrors := tm.Validate()
	for _, msg := range refErrors {
		fmt.Printf("ERROR: %s\n", msg)
		hasErrors = true
	}

	totalWarnings := 0
	p := registry.Get(tm.System.Type)
	if p == nil {
		fmt.Printf("WARN:  no plugin registered for system type %q; skipping component validation\n", tm.System.Type)
	} else {
		for _, c := range tm.System.Components {
			result := p.ValidateComponent(c)
			totalWarnings += len(result.Warnings)
			if !result.Valid {
				hasErrors = true
			}
			if len(result.Errors) > 0 || len(result.Warnings) > 0 || verbose {
				fmt.Print(report.FormatValidation(c.ID, result))
			}
		}
	}

	fmt.Printf("\nValidated %d component(s): %d reference error(s), %d warning(s)\n",
		len(tm.System.Components), len(refErrors), totalWarnings)

	if hasErrors {
		os.Exit(1)
	}

	return nil
}
