package index

import (
	"context"

	"repointel/internal/analysis"
	"repointel/internal/extractor"
	"repointel/internal/graph"
	"repointel/internal/report"
	"repointel/internal/semantic"
	"repointel/internal/source"
)

// Analyzer orchestrates the full pipeline: extraction per file, semantic
// annotation, graph derivation, and report assembly.
type Analyzer struct {
	generator semantic.Generator
	renderer  graph.Renderer
}

// NewAnalyzer creates an analyzer. A nil generator disables AI enrichment
// and a nil renderer disables graph images; the pipeline runs either way.
func NewAnalyzer(gen semantic.Generator, renderer graph.Renderer) *Analyzer {
	if gen == nil {
		gen = semantic.NoopGenerator{}
	}
	if renderer == nil {
		renderer = graph.NoopRenderer{}
	}
	return &Analyzer{generator: gen, renderer: renderer}
}

// Run analyzes the given files and returns the assembled report. Files the
// dispatcher has no strategy for are skipped; a file that fails to parse
// still contributes an empty record so totals stay honest.
func (a *Analyzer) Run(ctx context.Context, files []source.File) (*report.Report, error) {
	var analyses []*analysis.FileAnalysis
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		strategy := extractor.Dispatch(f.Path)
		if strategy == nil || f.Content == "" {
			continue
		}
		fa := strategy.Extract(f.Path, f.Content)
		fa.Patterns = semantic.DetectPatterns(f.Content)
		fa.Description = semantic.DescribeFile(fa)
		semantic.EnhanceFunctions(ctx, fa, a.generator)
		analyses = append(analyses, fa)
	}

	graphs := graph.BuildAll(ctx, analyses, a.renderer)
	return report.Build(analyses, graphs), nil
}
