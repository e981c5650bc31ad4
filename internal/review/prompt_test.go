package review

import (
	"strings"
	"testing"
)

func TestBuildPrompt_RendersSections(t *testing.T) {
	out := BuildPrompt("print('hi')", "main.py")

	wantSections := []string{
		"[PURPOSE]",
		"[OUTPUT]",
		"[RULES]",
		"[SOURCE]",
		"[OUTPUT_FORMAT]",
	}
	for _, sec := range wantSections {
		if !strings.Contains(out, sec) {
			t.Fatalf("expected section %s in prompt", sec)
		}
	}
}

func TestBuildPrompt_EmbedsSourceVerbatimInFence(t *testing.T) {
	src := "def f(x):\n    return x * 2\n"
	out := BuildPrompt(src, "calc.py")
	if !strings.Contains(out, "```\n"+src+"\n```") {
		t.Fatalf("source not embedded in a fenced block:\n%s", out)
	}
	if !strings.Contains(out, "File: calc.py") {
		t.Fatalf("filename missing from prompt")
	}
}

// The prompt's field list is the contract surface to the model: every key the
// normalizer reads must be named, with the exact enum values.
func TestBuildPrompt_NamesEverySchemaField(t *testing.T) {
	out := BuildPrompt("x", "a.go")

	wantKeys := []string{
		"language",
		"overallSummary",
		"executionAnalysis.willCompile",
		"executionAnalysis.willRun",
		"executionAnalysis.expectedBehavior",
		"hasCriticalIssues",
		"overallScore",
		"qualityMetrics.readability",
		"qualityMetrics.efficiency",
		"qualityMetrics.maintainability",
		"qualityMetrics.security",
		"issues[].line",
		"issues[].priority",
		"issues[].category",
		"issues[].tags",
		"issues[].title",
		"issues[].description",
		"issues[].potentialImpact",
		"issues[].suggestedFix",
	}
	for _, key := range wantKeys {
		if !strings.Contains(out, key) {
			t.Fatalf("prompt does not name schema field %q", key)
		}
	}

	wantEnums := []string{
		`"Low", "Medium", "High"`,
		`"Logic", "Syntax", "Performance", "Security", "Best Practice"`,
	}
	for _, e := range wantEnums {
		if !strings.Contains(out, e) {
			t.Fatalf("prompt does not enumerate %s", e)
		}
	}
}

func TestBuildPrompt_DemandsRawJSONOnly(t *testing.T) {
	out := BuildPrompt("x", "a.go")
	if !strings.Contains(out, "only the raw JSON object") {
		t.Fatalf("prompt must instruct raw-JSON-only output")
	}
}
