package report

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"repointel/internal/analysis"
	"repointel/internal/graph"
)

// WriteMarkdown renders the report as a human-readable summary with a
// mermaid diagram of the module dependency graph.
func (r *Report) WriteMarkdown(path string) error {
	return os.WriteFile(path, []byte(r.Markdown()), 0644)
}

func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Repository Analysis\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("| :--- | :--- |\n")
	fmt.Fprintf(&sb, "| Files analyzed | %d |\n", r.Metadata.TotalFiles)
	fmt.Fprintf(&sb, "| Primary language | %s |\n", orDash(r.Metadata.PrimaryLanguage))
	fmt.Fprintf(&sb, "| Frontend detected | %v |\n", r.Metadata.FrontendDetected)
	fmt.Fprintf(&sb, "| Backend detected | %v |\n", r.Metadata.BackendDetected)
	sb.WriteString("\n")

	if modules, ok := r.Graphs[graph.GraphModuleDependency]; ok && len(modules.Adjacency) > 0 {
		sb.WriteString("## Module Dependencies\n\n")
		sb.WriteString(moduleMermaid(modules.Adjacency))
		sb.WriteString("\n")
	}

	if routes := r.collectRoutes(); len(routes) > 0 {
		sb.WriteString("## API Routes\n\n")
		sb.WriteString("| Method | Path | Handler | File |\n")
		sb.WriteString("| :--- | :--- | :--- | :--- |\n")
		for _, row := range routes {
			sb.WriteString(row)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Files\n\n")
	for _, f := range r.Files {
		fmt.Fprintf(&sb, "### %s\n\n", f.FilePath)
		if f.Description != "" {
			sb.WriteString(f.Description + "\n\n")
		}
		writeFileDetails(&sb, f)
	}
	return sb.String()
}

func (r *Report) collectRoutes() []string {
	var rows []string
	for _, f := range r.Files {
		for _, rt := range f.Routes {
			rows = append(rows, fmt.Sprintf("| %s | `%s` | %s | %s |\n",
				orDash(rt.Method), rt.Path, orDash(rt.Handler), f.FilePath))
		}
	}
	return rows
}

func writeFileDetails(sb *strings.Builder, f *analysis.FileAnalysis) {
	if len(f.Classes) > 0 {
		names := make([]string, 0, len(f.Classes))
		for _, c := range f.Classes {
			names = append(names, "`"+c.Name+"`")
		}
		fmt.Fprintf(sb, "- Classes: %s\n", strings.Join(names, ", "))
	}
	if len(f.Functions) > 0 {
		fmt.Fprintf(sb, "- Functions: %d\n", len(f.Functions))
	}
	if names := f.ComponentNames(); len(names) > 0 {
		fmt.Fprintf(sb, "- Components: %s\n", strings.Join(names, ", "))
	}
	if len(f.ReactHooks) > 0 {
		fmt.Fprintf(sb, "- Hooks: %s\n", strings.Join(f.ReactHooks, ", "))
	}
	if len(f.Classes) > 0 || len(f.Functions) > 0 || len(f.Components) > 0 || len(f.ReactHooks) > 0 {
		sb.WriteString("\n")
	}
}

// moduleMermaid draws the module graph sorted by module name, bounded to
// keep the diagram readable.
func moduleMermaid(adjacency map[string][]string) string {
	modules := make([]string, 0, len(adjacency))
	for mod := range adjacency {
		modules = append(modules, mod)
	}
	sort.Strings(modules)
	if len(modules) > 30 {
		modules = modules[:30]
	}
	kept := map[string]bool{}
	for _, m := range modules {
		kept[m] = true
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("graph LR\n")
	for _, mod := range modules {
		fmt.Fprintf(&sb, "    %s[%q]\n", sanitizeMermaidID(mod), mod)
	}
	for _, mod := range modules {
		for _, dep := range adjacency[mod] {
			if kept[dep] {
				fmt.Fprintf(&sb, "    %s --> %s\n", sanitizeMermaidID(mod), sanitizeMermaidID(dep))
			}
		}
	}
	sb.WriteString("```\n")
	return sb.String()
}

var mermaidIDPattern = regexp.MustCompile(`[^a-z0-9_]`)

func sanitizeMermaidID(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	v = mermaidIDPattern.ReplaceAllString(strings.ReplaceAll(v, "-", "_"), "_")
	if v == "" {
		return "node"
	}
	if v[0] >= '0' && v[0] <= '9' {
		v = "n_" + v
	}
	return v
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
