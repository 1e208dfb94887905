package report

import (
	"encoding/json"
	"os"
	"time"

	"repointel/internal/analysis"
	"repointel/internal/graph"
)

// Metadata summarizes the analyzed repository at a glance.
type Metadata struct {
	GeneratedAt      string `json:"generated_at"`
	TotalFiles       int    `json:"total_files"`
	PrimaryLanguage  string `json:"primary_language"`
	FrontendDetected bool   `json:"frontend_detected"`
	BackendDetected  bool   `json:"backend_detected"`
}

// Report is the full analysis output: per-file records plus the derived
// graphs, keyed the same way graph.BuildAll keys them.
type Report struct {
	Metadata Metadata                 `json:"metadata"`
	Files    []*analysis.FileAnalysis `json:"files"`
	Graphs   map[string]graph.Result  `json:"graphs"`
}

// Build assembles a report from analyzed files and built graphs.
func Build(files []*analysis.FileAnalysis, graphs map[string]graph.Result) *Report {
	return &Report{
		Metadata: Metadata{
			GeneratedAt:      time.Now().UTC().Format(time.RFC3339),
			TotalFiles:       len(files),
			PrimaryLanguage:  primaryLanguage(files),
			FrontendDetected: frontendDetected(files),
			BackendDetected:  backendDetected(files),
		},
		Files:  files,
		Graphs: graphs,
	}
}

// WriteJSON writes the report to path as indented JSON.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func primaryLanguage(files []*analysis.FileAnalysis) string {
	counts := map[string]int{}
	for _, f := range files {
		if f.Language != "" && f.Language != "Unknown" {
			counts[f.Language]++
		}
	}
	best := ""
	bestN := 0
	for lang, n := range counts {
		if n > bestN || (n == bestN && lang < best) {
			best = lang
			bestN = n
		}
	}
	return best
}

func frontendDetected(files []*analysis.FileAnalysis) bool {
	for _, f := range files {
		if len(f.Components) > 0 || len(f.ReactHooks) > 0 {
			return true
		}
	}
	return false
}

func backendDetected(files []*analysis.FileAnalysis) bool {
	for _, f := range files {
		if len(f.Routes) > 0 {
			return true
		}
	}
	return false
}
