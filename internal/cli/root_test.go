package cli

import (
	"testing"

	"github.com/AgileCatalystDV/ai-threat-model/internal/report"
)

func TestGetFormat(t *testing.T) {
	origFormat, origVerbose := outputFormat, verbose
	defer func() { outputFormat, verbose = origFormat, origVerbose }()

	outputFormat, verbose = "json", false
	if getFormat() != report.FormatJSON {
		t.Error("expected JSON format by default")
	}

	outputFormat = "text"
	if getFormat() != report.FormatText {
		t.Error("expected text format for --format text")
	}

	// Verbose forces text output regardless of format.
	outputFormat, verbose = "json", true
	if getFormat() != report.FormatText {
		t.Error("expected text format when verbose")
	}
}
