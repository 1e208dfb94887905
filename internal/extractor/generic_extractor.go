package extractor

import (
	"path/filepath"
	"regexp"
	"strings"

	"repointel/internal/analysis"
)

var genericLanguageNames = map[string]string{
	"java": "Java",
	"cpp":  "C++",
	"go":   "Go",
	"cs":   "C#",
	"php":  "PHP",
}

var (
	genericClassPattern = regexp.MustCompile(`(?:public\s+)?class\s+(\w+)`)

	genericFuncPatterns = map[string]*regexp.Regexp{
		"go":   regexp.MustCompile(`func\s+(?:\([^)]+\)\s+)?(\w+)\s*\(`),
		"java": regexp.MustCompile(`(?:public|private|protected|static|\s)+[\w<>\[\]]+\s+(\w+)\s*\(`),
		"cs":   regexp.MustCompile(`(?:public|private|protected|static|\s)+[\w<>\[\]]+\s+(\w+)\s*\(`),
		"php":  regexp.MustCompile(`(?:public|private|protected|static)?\s*function\s+(\w+)\s*\(`),
	}
	genericFuncDefault = regexp.MustCompile(`(?:\w+\s+)+(\w+)\s*\(`)

	genericImportPatterns = map[string]*regexp.Regexp{
		"java": regexp.MustCompile(`import\s+([\w.]+);`),
		"go":   regexp.MustCompile(`"([\w./\-]+)"`),
		"cs":   regexp.MustCompile(`using\s+([\w.]+);`),
		"php":  regexp.MustCompile(`use\s+([\w\\]+);`),
	}
)

// funcStoplist excludes control-flow keywords that a naive
// "identifier followed by open paren" pattern would misclassify.
var funcStoplist = map[string]bool{
	"if":     true,
	"for":    true,
	"while":  true,
	"switch": true,
	"catch":  true,
	"return": true,
}

// GenericExtractor is the weak fallback for languages without a dedicated
// strategy. Detection is single-pattern per concern and intentionally
// shallow.
type GenericExtractor struct{}

func (g *GenericExtractor) Language() string { return "Generic" }

func (g *GenericExtractor) Extract(path string, content string) *analysis.FileAnalysis {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	language, ok := genericLanguageNames[ext]
	if !ok {
		language = strings.ToUpper(ext)
	}
	result := analysis.NewFileAnalysis(path, language)

	for _, m := range genericClassPattern.FindAllStringSubmatch(content, -1) {
		result.Classes = append(result.Classes, analysis.Class{Name: m[1]})
	}

	funcPattern, ok := genericFuncPatterns[ext]
	if !ok {
		funcPattern = genericFuncDefault
	}
	seen := map[string]bool{}
	for _, m := range funcPattern.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if seen[name] || funcStoplist[name] {
			continue
		}
		seen[name] = true
		result.Functions = append(result.Functions, analysis.Function{Name: name})
	}

	if importPattern, ok := genericImportPatterns[ext]; ok {
		for _, m := range importPattern.FindAllStringSubmatch(content, -1) {
			result.Imports = append(result.Imports, analysis.Import{Raw: m[1]})
		}
	}

	return result
}
