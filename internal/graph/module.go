package graph

import (
	"strings"

	"repointel/internal/analysis"
)

const maxRenderedModules = 40

var pathSeparators = strings.NewReplacer("/", ".", "\\", ".")

var sourceSuffixes = []string{
	".py", ".js", ".ts", ".tsx", ".jsx", ".java", ".go", ".cs", ".php", ".cpp",
}

// ModuleID converts a repository-relative file path into a dotted module
// name: path separators become dots and a known source extension is dropped.
func ModuleID(path string) string {
	name := pathSeparators.Replace(path)
	for _, suffix := range sourceSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = name[:len(name)-len(suffix)]
			break
		}
	}
	return name
}

// BuildModuleGraph derives file-to-file dependency edges by matching each
// import's base token against the module names of the analyzed files. The
// first matching module wins, so a file never links past its own import.
func BuildModuleGraph(analyses []*analysis.FileAnalysis) *Graph {
	g := NewGraph(GraphModuleDependency)

	modules := make([]string, 0, len(analyses))
	for _, fa := range analyses {
		id := ModuleID(fa.FilePath)
		g.AddNode(id)
		modules = append(modules, id)
	}

	for i, fa := range analyses {
		src := modules[i]
		for _, token := range fa.ImportTokens() {
			base := importBase(token)
			if base == "" {
				continue
			}
			for _, mod := range modules {
				if base == lastComponent(mod) || strings.Contains(mod, base) {
					if mod != src {
						g.AddEdge(src, mod)
					}
					break
				}
			}
		}
	}

	g.Rendered = g.renderSubset(maxRenderedModules)
	return g
}

// importBase reduces an import token to its leading component, e.g.
// "os.path" to "os" and "components/Button" to "components".
func importBase(token string) string {
	base := pathSeparators.Replace(token)
	if idx := strings.Index(base, "."); idx >= 0 {
		base = base[:idx]
	}
	return base
}

func lastComponent(module string) string {
	if idx := strings.LastIndex(module, "."); idx >= 0 {
		return module[idx+1:]
	}
	return module
}
