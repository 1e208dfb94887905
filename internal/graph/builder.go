package graph

import (
	"context"

	"repointel/internal/analysis"
)

// Keys under which BuildAll reports its graphs.
const (
	GraphModuleDependency = "module_dependency"
	GraphAPIRoutes        = "api_routes"
	GraphComponents       = "component_graph"
)

// Result is one derived graph: its full adjacency map plus an optional
// rendered image. A nil Image means rendering was skipped or failed.
type Result struct {
	Adjacency map[string][]string `json:"adjacency"`
	Image     []byte              `json:"rendered_image,omitempty"`
}

// BuildAll derives the three graphs from the analyzed files. Every key is
// always present: a builder that panics yields an empty adjacency for its
// graph only, and a renderer failure degrades that graph to adjacency-only.
func BuildAll(ctx context.Context, analyses []*analysis.FileAnalysis, renderer Renderer) map[string]Result {
	results := map[string]Result{
		GraphModuleDependency: {Adjacency: map[string][]string{}},
		GraphAPIRoutes:        {Adjacency: map[string][]string{}},
		GraphComponents:       {Adjacency: map[string][]string{}},
	}

	build := func(key string, builder func([]*analysis.FileAnalysis) *Graph) {
		defer func() {
			_ = recover()
		}()
		g := builder(analyses)
		result := Result{Adjacency: g.Adjacency}
		if renderer != nil {
			if img, err := renderer.Render(ctx, g.Name, g.DOT()); err == nil {
				result.Image = img
			}
		}
		results[key] = result
	}

	build(GraphModuleDependency, BuildModuleGraph)
	build(GraphAPIRoutes, BuildRouteGraph)
	build(GraphComponents, BuildComponentGraph)
	return results
}
