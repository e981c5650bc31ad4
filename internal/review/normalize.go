package review

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied when the model omits or mistypes a field.
const (
	defaultSummary      = "No summary provided"
	defaultBehavior     = "Unknown behavior"
	defaultTitle        = "Untitled Issue"
	defaultDescription  = "No description provided"
	defaultImpact       = "Unknown impact"
	defaultFix          = "No fix suggested"
	fallbackSummary     = "Analysis completed with errors"
	fallbackBehavior    = "Unable to determine due to parsing errors"
	defaultOverallScore = 50
	defaultMetricScore  = 5
)

// Diagnostic records one repair the normalizer made: a defaulted field, a
// clamped value, or a dropped issue. Diagnostics are logged, never fatal.
type Diagnostic struct {
	Field  string
	Reason string
}

func (d Diagnostic) String() string { return d.Field + ": " + d.Reason }

// Normalize converts the parsed-but-untrusted model reply into a report that
// is always valid. Missing or wrong-typed fields take hard-coded defaults,
// numeric fields are clamped, issues that fail validation are dropped
// individually, and a top-level value that is not an object yields the
// minimal fallback report. Normalize never returns an error and never panics.
func Normalize(parsed any, language string) (CodeReviewReport, []Diagnostic) {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return fallbackReport(language), []Diagnostic{
			{Field: "(root)", Reason: fmt.Sprintf("top-level value is %T, not an object", parsed)},
		}
	}

	n := &normalizer{}

	report := CodeReviewReport{
		Language:       language,
		OverallSummary: n.str(obj, "overallSummary", defaultSummary),
		ExecutionAnalysis: ExecutionAnalysis{
			WillCompile:      true,
			WillRun:          true,
			ExpectedBehavior: defaultBehavior,
		},
		HasCriticalIssues: n.boolean(obj, "hasCriticalIssues", false),
		OverallScore:      n.score(obj, "overallScore", defaultOverallScore, 0, 100),
		Issues:            []Issue{},
	}

	if exec, ok := obj["executionAnalysis"].(map[string]any); ok {
		report.ExecutionAnalysis = ExecutionAnalysis{
			WillCompile:      n.boolean(exec, "executionAnalysis.willCompile", true),
			WillRun:          n.boolean(exec, "executionAnalysis.willRun", true),
			ExpectedBehavior: n.str(exec, "executionAnalysis.expectedBehavior", defaultBehavior),
		}
	} else if _, present := obj["executionAnalysis"]; present {
		n.note("executionAnalysis", "not an object, using defaults")
	}

	metrics, ok := obj["qualityMetrics"].(map[string]any)
	if !ok {
		if _, present := obj["qualityMetrics"]; present {
			n.note("qualityMetrics", "not an object, using defaults")
		}
		metrics = map[string]any{}
	}
	report.QualityMetrics = QualityMetrics{
		Readability:     n.score(metrics, "qualityMetrics.readability", defaultMetricScore, 0, 10),
		Efficiency:      n.score(metrics, "qualityMetrics.efficiency", defaultMetricScore, 0, 10),
		Maintainability: n.score(metrics, "qualityMetrics.maintainability", defaultMetricScore, 0, 10),
		Security:        n.score(metrics, "qualityMetrics.security", defaultMetricScore, 0, 10),
	}

	if rawIssues, ok := obj["issues"].([]any); ok {
		for i, entry := range rawIssues {
			if issue, ok := n.issue(entry, i); ok {
				report.Issues = append(report.Issues, issue)
			}
		}
	} else if _, present := obj["issues"]; present {
		n.note("issues", "not an array, dropping all issues")
	}

	return report, n.diags
}

// fallbackReport is the honest worst case: valid shape, zero scores,
// critical flag raised, no issues.
func fallbackReport(language string) CodeReviewReport {
	return CodeReviewReport{
		Language:       language,
		OverallSummary: fallbackSummary,
		ExecutionAnalysis: ExecutionAnalysis{
			WillCompile:      true,
			WillRun:          true,
			ExpectedBehavior: fallbackBehavior,
		},
		HasCriticalIssues: true,
		OverallScore:      0,
		QualityMetrics:    QualityMetrics{},
		Issues:            []Issue{},
	}
}

type normalizer struct {
	diags []Diagnostic
}

func (n *normalizer) note(field, reason string) {
	n.diags = append(n.diags, Diagnostic{Field: field, Reason: reason})
}

// Field names double as diagnostic labels ("issues[2].title"); the map key
// is the segment after the last dot.

func (n *normalizer) str(m map[string]any, field, def string) string {
	key := lastKey(field)
	v, present := m[key]
	if !present {
		return def
	}
	s, ok := v.(string)
	if !ok {
		n.note(field, fmt.Sprintf("expected string, got %T", v))
		return def
	}
	return s
}

func (n *normalizer) boolean(m map[string]any, field string, def bool) bool {
	key := lastKey(field)
	v, present := m[key]
	if !present {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		n.note(field, fmt.Sprintf("expected bool, got %T", v))
		return def
	}
	return b
}

// score coerces the value to an integer when possible, then clamps it.
func (n *normalizer) score(m map[string]any, field string, def, lo, hi int) int {
	key := lastKey(field)
	v, present := m[key]
	val := def
	if present {
		coerced, ok := coerceInt(v)
		if !ok {
			n.note(field, fmt.Sprintf("expected integer, got %T", v))
		} else {
			val = coerced
		}
	}
	clamped := clamp(val, lo, hi)
	if clamped != val {
		n.note(field, fmt.Sprintf("clamped %d into [%d,%d]", val, lo, hi))
	}
	return clamped
}

func (n *normalizer) issue(entry any, idx int) (Issue, bool) {
	prefix := fmt.Sprintf("issues[%d]", idx)
	m, ok := entry.(map[string]any)
	if !ok {
		n.note(prefix, fmt.Sprintf("expected object, got %T, dropped", entry))
		return Issue{}, false
	}

	// A missing priority defaults to Low; a present but unrecognized one
	// drops the whole issue. Category is gentler and never drops: unknown
	// strings coerce to Best Practice via the synonym table.
	rawPriority := "Low"
	if v, present := m["priority"]; present {
		s, ok := v.(string)
		if !ok {
			n.note(prefix+".priority", fmt.Sprintf("expected string, got %T, issue dropped", v))
			return Issue{}, false
		}
		rawPriority = s
	}
	priority, ok := validPriorities[rawPriority]
	if !ok {
		n.note(prefix+".priority", fmt.Sprintf("unrecognized priority %q, issue dropped", rawPriority))
		return Issue{}, false
	}

	category := CategoryBestPractice
	if v, present := m["category"]; present {
		if s, ok := v.(string); ok {
			mapped, known := categorySynonyms[s]
			if !known {
				n.note(prefix+".category", fmt.Sprintf("unrecognized category %q, coerced to %s", s, CategoryBestPractice))
				mapped = CategoryBestPractice
			}
			category = mapped
		} else {
			n.note(prefix+".category", fmt.Sprintf("expected string, got %T", v))
		}
	}

	line := 1
	if v, present := m["line"]; present {
		if coerced, ok := coerceInt(v); ok {
			line = coerced
		} else {
			n.note(prefix+".line", fmt.Sprintf("expected integer, got %T", v))
		}
	}
	if line < 1 {
		n.note(prefix+".line", fmt.Sprintf("floored %d to 1", line))
		line = 1
	}

	return Issue{
		Line:            line,
		Priority:        priority,
		Category:        category,
		Tags:            n.tags(m, prefix),
		Title:           n.str(m, prefix+".title", defaultTitle),
		Description:     n.str(m, prefix+".description", defaultDescription),
		PotentialImpact: n.str(m, prefix+".potentialImpact", defaultImpact),
		SuggestedFix:    n.str(m, prefix+".suggestedFix", defaultFix),
	}, true
}

func (n *normalizer) tags(m map[string]any, prefix string) []string {
	out := []string{}
	v, present := m["tags"]
	if !present {
		return out
	}
	arr, ok := v.([]any)
	if !ok {
		n.note(prefix+".tags", fmt.Sprintf("expected array, got %T", v))
		return out
	}
	for i, t := range arr {
		s, ok := t.(string)
		if !ok {
			n.note(fmt.Sprintf("%s.tags[%d]", prefix, i), fmt.Sprintf("expected string, got %T, skipped", t))
			continue
		}
		out = append(out, s)
	}
	return out
}

// coerceInt accepts the integer encodings a JSON reply can carry: numbers
// (float64 after generic decoding) and numeric strings.
func coerceInt(v any) (int, bool) {
	switch x := v.(type) {
	case float64:
		return int(x), true
	case int:
		return x, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lastKey(field string) string {
	if i := strings.LastIndex(field, "."); i >= 0 {
		return field[i+1:]
	}
	return field
}
