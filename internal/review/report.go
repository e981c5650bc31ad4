package review

// Priority ranks how urgently an issue should be addressed.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Category classifies the kind of problem an issue describes.
type Category string

const (
	CategoryLogic        Category = "Logic"
	CategorySyntax       Category = "Syntax"
	CategoryPerformance  Category = "Performance"
	CategorySecurity     Category = "Security"
	CategoryBestPractice Category = "Best Practice"
)

// QualityMetrics holds per-dimension scores, each in [0,10].
type QualityMetrics struct {
	Readability     int `json:"readability"`
	Efficiency      int `json:"efficiency"`
	Maintainability int `json:"maintainability"`
	Security        int `json:"security"`
}

// ExecutionAnalysis captures the model's judgement on whether the code
// compiles and runs. will_run and has_critical_issues are asserted
// independently by the model; the pipeline does not cross-check them.
type ExecutionAnalysis struct {
	WillCompile      bool   `json:"will_compile"`
	WillRun          bool   `json:"will_run"`
	ExpectedBehavior string `json:"expected_behavior"`
}

// Issue is a single finding in the reviewed file. Description and
// SuggestedFix carry Markdown.
type Issue struct {
	Line            int      `json:"line"`
	Priority        Priority `json:"priority"`
	Category        Category `json:"category"`
	Tags            []string `json:"tags"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	PotentialImpact string   `json:"potential_impact"`
	SuggestedFix    string   `json:"suggested_fix"`
}

// CodeReviewReport is the terminal artifact of one review request. It is
// built once from the model's reply and never mutated afterward.
type CodeReviewReport struct {
	Language          string            `json:"language"`
	OverallSummary    string            `json:"overall_summary"`
	ExecutionAnalysis ExecutionAnalysis `json:"execution_analysis"`
	HasCriticalIssues bool              `json:"has_critical_issues"`
	OverallScore      int               `json:"overall_score"`
	QualityMetrics    QualityMetrics    `json:"quality_metrics"`
	Issues            []Issue           `json:"issues"`
}

var validPriorities = map[string]Priority{
	"Low":    PriorityLow,
	"Medium": PriorityMedium,
	"High":   PriorityHigh,
}

// categorySynonyms maps every accepted category string, including the
// synonyms the model tends to invent, onto the canonical enum. Anything
// absent from this table coerces to Best Practice.
var categorySynonyms = map[string]Category{
	"Logic":           CategoryLogic,
	"Syntax":          CategorySyntax,
	"Performance":     CategoryPerformance,
	"Security":        CategorySecurity,
	"Best Practice":   CategoryBestPractice,
	"Maintainability": CategoryBestPractice,
	"Code Quality":    CategoryBestPractice,
	"Style":           CategoryBestPractice,
}
