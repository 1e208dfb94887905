package graph

import (
	"strings"

	"repointel/internal/analysis"
)

const maxRenderedComponents = 30

// BuildComponentGraph links React components through their imports: an
// edge A -> B means A's file imports something whose basename matches
// component B. When a component name recurs across files the last file's
// imports win, but the node keeps its first-occurrence position.
func BuildComponentGraph(analyses []*analysis.FileAnalysis) *Graph {
	g := NewGraph(GraphComponents)

	order := []string{}
	imports := map[string][]string{}
	for _, fa := range analyses {
		for _, c := range fa.Components {
			if _, ok := imports[c.Name]; !ok {
				order = append(order, c.Name)
			}
			imports[c.Name] = fa.ImportTokens()
			g.AddNode(c.Name)
		}
	}

	for _, name := range order {
		for _, token := range imports[name] {
			base := token
			if idx := strings.LastIndex(token, "/"); idx >= 0 {
				base = token[idx+1:]
			}
			for _, other := range order {
				if other != name && strings.EqualFold(other, base) {
					g.AddEdge(name, other)
				}
			}
		}
	}

	g.Rendered = g.renderSubset(maxRenderedComponents)
	return g
}
