package extractor

import (
	"regexp"
	"strings"

	"repointel/internal/analysis"
)

// Pattern-based extraction for JavaScript/TypeScript. Regex parsing of a
// full grammar is inherently lossy (braces inside string literals can
// mis-terminate a match); this is a deliberate best-effort tradeoff for
// languages without a bundled parser.
var (
	jsImportPatterns = []*regexp.Regexp{
		regexp.MustCompile(`import\s+(?:{[^}]+}|\*\s+as\s+\w+|\w+)\s+from\s+['"]([^'"]+)['"]`),
		regexp.MustCompile(`import\s+['"]([^'"]+)['"]`),
		regexp.MustCompile(`const\s+\w+\s*=\s*require\(['"]([^'"]+)['"]\)`),
		regexp.MustCompile(`import\s+(\w+)\s*,?\s*(?:{[^}]+})?\s*from\s+['"]([^'"]+)['"]`),
	}

	jsFunctionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:export\s+)?(?:async\s+)?function\s+(\w+)\s*\(`),
		regexp.MustCompile(`(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`),
		regexp.MustCompile(`(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s+)?function`),
		regexp.MustCompile(`(?:export\s+)?(?:async\s+)?function\*?\s+(\w+)`),
	}

	jsDocPattern      = regexp.MustCompile(`/\*\*\s*\n?\s*\*?\s*([^\n*]+)`)
	jsDocTargetFinder = regexp.MustCompile(`(?:function|const)\s+(\w+)`)

	jsClassPattern = regexp.MustCompile(`(?:export\s+)?class\s+(\w+)(?:\s+extends\s+(\w+))?`)

	jsExportPatterns = []*regexp.Regexp{
		regexp.MustCompile(`export\s+default\s+(?:class|function|const)?\s*(\w+)`),
		regexp.MustCompile(`export\s+(?:const|let|var|function|class|async\s+function)\s+(\w+)`),
		regexp.MustCompile(`module\.exports\s*=\s*(\w+)`),
	}

	jsRoutePattern = regexp.MustCompile(`(?i)(?:app|router|server)\.(get|post|put|delete|patch|use|all)\s*\(\s*['"]([^'"]+)['"]`)
)

// jsDocLookahead bounds the search window between a doc comment and the
// function declaration it annotates.
const jsDocLookahead = 200

// JavaScriptExtractor extracts structure from JS/TS sources using ordered
// regex passes.
type JavaScriptExtractor struct{}

func (j *JavaScriptExtractor) Language() string { return "JavaScript" }

func (j *JavaScriptExtractor) Extract(path string, content string) *analysis.FileAnalysis {
	language := j.Language()
	if strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".tsx") {
		language = "TypeScript"
	}
	result := analysis.NewFileAnalysis(path, language)

	for _, raw := range collectImportTokens(content) {
		result.Imports = append(result.Imports, analysis.Import{Raw: raw})
	}

	docs := collectDocComments(content)
	seen := map[string]bool{}
	for _, pattern := range jsFunctionPatterns {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			name := m[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			result.Functions = append(result.Functions, analysis.Function{
				Name:        name,
				Description: docs[name],
			})
		}
	}

	for _, m := range jsClassPattern.FindAllStringSubmatch(content, -1) {
		class := analysis.Class{Name: m[1], Bases: []string{}}
		if m[2] != "" {
			class.Bases = append(class.Bases, m[2])
		}
		result.Classes = append(result.Classes, class)
	}

	exportSeen := map[string]bool{}
	for _, pattern := range jsExportPatterns {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			if !exportSeen[m[1]] {
				exportSeen[m[1]] = true
				result.Exports = append(result.Exports, m[1])
			}
		}
	}

	for _, m := range jsRoutePattern.FindAllStringSubmatch(content, -1) {
		result.Routes = append(result.Routes, analysis.Route{
			Method: strings.ToUpper(m[1]),
			Path:   m[2],
		})
	}

	return result
}

// collectImportTokens applies the alternative import syntaxes in order and
// deduplicates the module tokens, preserving first-seen order.
func collectImportTokens(content string) []string {
	var tokens []string
	seen := map[string]bool{}
	for _, pattern := range jsImportPatterns {
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			token := lastSubmatch(m)
			if token != "" && !seen[token] {
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

// collectDocComments associates each doc comment's first line with the
// nearest following function or const declaration within the lookahead
// window.
func collectDocComments(content string) map[string]string {
	docs := map[string]string{}
	for _, loc := range jsDocPattern.FindAllStringSubmatchIndex(content, -1) {
		desc := strings.TrimSpace(content[loc[2]:loc[3]])
		window := content[loc[1]:min(loc[1]+jsDocLookahead, len(content))]
		if target := jsDocTargetFinder.FindStringSubmatch(window); target != nil {
			docs[target[1]] = desc
		}
	}
	return docs
}

// lastSubmatch returns the last non-empty capture group of a match. The
// fourth import pattern captures both the binding and the module path; the
// module path is the token that matters.
func lastSubmatch(m []string) string {
	for i := len(m) - 1; i >= 1; i-- {
		if m[i] != "" {
			return m[i]
		}
	}
	return ""
}
