package review

import (
	"bytes"
	"fmt"
	"strings"
)

// promptField describes one key of the JSON object the model must emit.
// This table is the contract surface to the model: every report field in
// report.go has a row here, and the normalizer reads exactly these keys.
type promptField struct {
	Name        string
	Type        string
	Description string
}

var reportPromptFields = []promptField{
	{"language", "string", "Detected programming language, like \"Python\" or \"JavaScript\"."},
	{"overallSummary", "string", "Brief, one or two-sentence summary of the code's quality and key findings."},
	{"executionAnalysis.willCompile", "boolean", "Whether the code is expected to compile."},
	{"executionAnalysis.willRun", "boolean", "Must be false if any critical runtime error is detected."},
	{"executionAnalysis.expectedBehavior", "string", "Expected outcome, or the reason for a potential runtime failure."},
	{"hasCriticalIssues", "boolean", "Must be true if willRun is false."},
	{"overallScore", "integer", "Code quality from 0 to 100."},
	{"qualityMetrics.readability", "integer", "Score from 0 to 10."},
	{"qualityMetrics.efficiency", "integer", "Score from 0 to 10."},
	{"qualityMetrics.maintainability", "integer", "Score from 0 to 10."},
	{"qualityMetrics.security", "integer", "Score from 0 to 10."},
	{"issues", "array", "One object per finding; empty array when the code is clean."},
	{"issues[].line", "integer", "Line number the issue occurs on."},
	{"issues[].priority", "string", "Exactly one of \"Low\", \"Medium\", \"High\"."},
	{"issues[].category", "string", "Exactly one of \"Logic\", \"Syntax\", \"Performance\", \"Security\", \"Best Practice\"."},
	{"issues[].tags", "array of strings", "Specific tags, for example [\"error-handling\", \"api-usage\"]."},
	{"issues[].title", "string", "Short, descriptive issue title."},
	{"issues[].description", "string", "Detailed explanation, formatted as Markdown."},
	{"issues[].potentialImpact", "string", "Concise, one-sentence negative consequence."},
	{"issues[].suggestedFix", "string", "Markdown code block showing the exact change that fixes the issue."},
}

var promptRules = []string{
	"Be meticulous and thorough.",
	"Every key listed under [OUTPUT] is required.",
	"priority and category values must match the permitted strings exactly.",
	"Do not include any explanatory text outside of the JSON structure.",
}

// BuildPrompt renders the full analysis instruction for one source file.
// The source text is embedded verbatim inside a fenced block.
func BuildPrompt(source, filename string) string {
	var buf bytes.Buffer
	writeSection(&buf, "PURPOSE",
		"Act as a world-class AI code analysis engine. Perform a deep static analysis of the provided code and return a comprehensive report as a single, raw JSON object.")
	writeSection(&buf, "OUTPUT", formatPromptFields(reportPromptFields))
	writeSection(&buf, "RULES", formatPromptList(promptRules))
	writeSection(&buf, "SOURCE", fmt.Sprintf("File: %s\n```\n%s\n```", filename, source))
	writeSection(&buf, "OUTPUT_FORMAT",
		"Return only the raw JSON object, without any surrounding text or markdown formatting.")
	return strings.TrimSpace(buf.String()) + "\n"
}

func formatPromptFields(fields []promptField) string {
	var buf strings.Builder
	for _, f := range fields {
		if f.Description != "" {
			fmt.Fprintf(&buf, "- %s (%s): %s\n", f.Name, f.Type, f.Description)
		} else {
			fmt.Fprintf(&buf, "- %s (%s)\n", f.Name, f.Type)
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}

func formatPromptList(items []string) string {
	var buf strings.Builder
	for _, item := range items {
		fmt.Fprintf(&buf, "- %s\n", item)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}
