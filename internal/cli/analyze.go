package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/AgileCatalystDV/ai-threat-model/internal/model"
	"github.com/AgileCatalystDV/ai-threat-model/internal/plugin"
	"github.com/AgileCatalystDV/ai-threat-model/internal/report"
)

var (
	analyzeFramework string
	analyzeOutput    string
	analyzePhase     string
	analyzeCategory  string
	analyzeAIType    string
	analyzeAnswers   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <model-file>",
	Short: "Analyze a threat model for applicable threats",
	Long: `Analyze a threat model file against the catalogs for its system type.

The plugin is chosen by the system's declared type, or by framework when
the PLOT4AI framework is requested. If no plugin covers the system type,
the analysis warns and reports zero threats rather than failing.

Examples:
  # Analyze with the plugin for the system's declared type
  aitm analyze model.json

  # Run the PLOT4AI deck walk instead of pattern matching
  aitm analyze model.json --framework plot4ai --phase Design

  # Apply recorded elicitation answers and save findings back
  aitm analyze model.json --framework plot4ai --answers answers.json --output model.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFramework, "framework", "",
		"Framework override (e.g. plot4ai)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "",
		"Write the model with detected threats to this file")
	analyzeCmd.Flags().StringVar(&analyzePhase, "phase", "",
		"PLOT4AI lifecycle phase filter (e.g. Design)")
	analyzeCmd.Flags().StringVar(&analyzeCategory, "category", "",
		"PLOT4AI category filter")
	analyzeCmd.Flags().StringVar(&analyzeAIType, "aitype", "",
		"PLOT4AI AI-type filter (e.g. 'Generative AI')")
	analyzeCmd.Flags().StringVar(&analyzeAnswers, "answers", "",
		"Path to a JSON file of elicitation answers keyed by card ID")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	tm, err := model.Load(args[0])
	if err != nil {
		return err
	}

	framework := tm.System.Framework
	if analyzeFramework != "" {
		parsed, err := model.ParseFramework(analyzeFramework)
		if err != nil {
			return err
		}
		framework = parsed
	}

	var summary plugin.AnalysisSummary
	if framework == model.FrameworkPLOT4AI {
		summary, err = runPlot4AI(tm)
		if err != nil {
			return err
		}
	} else {
		p := registry.Get(tm.System.Type)
		if p == nil {
			log.Printf("warning: no plugin registered for system type %q", tm.System.Type)
			summary = plugin.AnalysisSummary{
				Threats:            []model.Threat{},
				ComponentsAnalyzed: len(tm.System.Components),
				DataFlowsAnalyzed:  len(tm.System.DataFlows),
			}
		} else {
			summary = plugin.AnalyzeSystem(p, &tm.System)
		}
	}

	if analyzeOutput != "" {
		tm.Threats = summary.Threats
		if err := tm.Save(analyzeOutput); err != nil {
			return err
		}
	}

	result := report.NewResult(&tm.System, summary)
	if counter, err := report.NewTokenCounter(); err == nil {
		counter.Stamp(&result)
	}

	output, err := report.FormatResult(result, getFormat())
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Println(output)
	return nil
}

// runPlot4AI dispatches the deck walk with the elicitation filters.
func runPlot4AI(tm *model.ThreatModel) (plugin.AnalysisSummary, error) {
	p, ok := registry.GetByFramework(model.FrameworkPLOT4AI).(*plugin.Plot4AIPlugin)
	if !ok || p == nil {
		log.Printf("warning: PLOT4AI plugin is not registered")
		return plugin.AnalysisSummary{Threats: []model.Threat{}}, nil
	}

	filter := plugin.Plot4AIFilter{
		LifecyclePhase: analyzePhase,
		Category:       analyzeCategory,
		AIType:         analyzeAIType,
	}

	if analyzeAnswers != "" {
		data, err := os.ReadFile(analyzeAnswers)
		if err != nil {
			return plugin.AnalysisSummary{}, fmt.Errorf("failed to read answers file: %w", err)
		}
		if err := json.Unmarshal(data, &filter.Answers); err != nil {
			return plugin.AnalysisSummary{}, fmt.Errorf("failed to parse answers file: %w", err)
		}
	}

	threats := p.DetectThreatsFiltered(&tm.System, filter)
	return plugin.AnalysisSummary{
		Threats:            threats,
		ThreatCount:        len(threats),
		ComponentsAnalyzed: len(tm.System.Components),
		DataFlowsAnalyzed:  len(tm.System.DataFlows),
	}, nil
}
