package extractor

import (
	"path/filepath"
	"strings"

	"repointel/internal/analysis"
	"repointel/internal/source"
)

// LanguageExtractor defines the interface that each extraction strategy
// must implement. Extract is best-effort and never returns an error: on
// unparseable input it yields a record with empty collections.
type LanguageExtractor interface {
	Language() string
	Extract(path string, content string) *analysis.FileAnalysis
}

// Dispatch maps a file path to an extraction strategy based on its
// extension. It returns nil for unrecognized extensions; the caller must
// skip such files rather than record an empty analysis.
func Dispatch(path string) LanguageExtractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return &PythonExtractor{}
	case ".tsx", ".jsx":
		return &ReactExtractor{}
	case ".js", ".ts":
		return &JavaScriptExtractor{}
	case ".java", ".cpp", ".go", ".cs", ".php":
		return &GenericExtractor{}
	}
	return nil
}

// ExtractAll runs extraction over the full file set. Files without content
// and files with no matching strategy contribute nothing. The result order
// follows the input order, and re-running on identical input yields an
// identical result.
func ExtractAll(files []source.File) []*analysis.FileAnalysis {
	results := make([]*analysis.FileAnalysis, 0, len(files))
	for _, f := range files {
		if f.Content == "" {
			continue
		}
		strategy := Dispatch(f.Path)
		if strategy == nil {
			continue
		}
		results = append(results, strategy.Extract(f.Path, f.Content))
	}
	return results
}
