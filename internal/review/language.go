package review

import (
	"path/filepath"
	"strings"
)

var extensionLabels = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".java":  "Java",
	".cpp":   "C++",
	".c":     "C",
	".cs":    "C#",
	".php":   "PHP",
	".rb":    "Ruby",
	".go":    "Go",
	".rs":    "Rust",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",
	".r":     "R",
	".m":     "Objective-C",
	".pl":    "Perl",
	".sh":    "Shell",
	".sql":   "SQL",
	".html":  "HTML",
	".css":   "CSS",
	".xml":   "XML",
	".yaml":  "YAML",
	".yml":   "YAML",
	".json":  "JSON",
}

// DetectLanguage maps a filename's extension (case-insensitive) to a
// human-readable language label. Filenames without a recognized extension,
// including extensionless ones like "Dockerfile", yield "Unknown".
func DetectLanguage(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if label, ok := extensionLabels[ext]; ok {
		return label
	}
	return "Unknown"
}
