package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plugin"
	"github.com/AgileCatalystDV/ai-threat-model/internal/report"
)

var (
	questionsPhase    string
	questionsCategory string
	questionsAIType   string
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List PLOT4AI elicitation questions",
	Long: `List the elicitation questions from the PLOT4AI card deck.

Each question carries the card ID to use when recording answers for
'aitm analyze --answers'.

Examples:
  # All questions
  aitm questions

  # Questions for one lifecycle phase
  aitm questions --phase Design

  # Questions for one category
  aitm questions --category "Privacy & Data"`,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().StringVar(&questionsPhase, "phase", "",
		"Lifecycle phase filter (e.g. Design)")
	questionsCmd.Flags().StringVar(&questionsCategory, "category", "",
		"Category filter")
	questionsCmd.Flags().StringVar(&questionsAIType, "aitype", "",
		"AI-type filter (e.g. 'Generative AI')")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	p, ok := registry.GetByFramework(model.FrameworkPLOT4AI).(*plugin.Plot4AIPlugin)
	if !ok || p == nil {
		return fmt.Errorf("PLOT4AI plugin is not registered")
	}

	questions := p.ElicitationQuestions(plugin.Plot4AIFilter{
		LifecyclePhase: questionsPhase,
		Category:       questionsCategory,
		AIType:         questionsAIType,
	})

	if getFormat() == report.FormatJSON {
		data, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal questions: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%d question(s)\n\n", len(questions))
	for _, q := range questions {
		fmt.Printf("[%s] %s\n", q.ID, q.Question)
		if verbose {
			fmt.Printf("  Label:     %s\n", q.Label)
			fmt.Printf("  Threat if: %s\n", q.ThreatIf)
			if q.Explanation != "" {
				fmt.Printf("  %s\n", q.Explanation)
			}
		}
	}
	return nil
}
