package graph

import (
	"fmt"

	"repointel/internal/analysis"
)

const (
	gatewayNode       = "API_Gateway"
	maxRenderedRoutes = 30
)

// BuildRouteGraph fans every discovered route out from a synthetic gateway
// node, with a second hop to the handler function where one is known.
// Handler nodes carry their defining module so same-named handlers in
// different files stay distinct.
func BuildRouteGraph(analyses []*analysis.FileAnalysis) *Graph {
	g := NewGraph(GraphAPIRoutes)
	g.AddNode(gatewayNode)

	var entries []routeEntry

	for _, fa := range analyses {
		module := ModuleID(fa.FilePath)
		for _, rt := range fa.Routes {
			label := rt.Path
			if rt.Method != "" {
				label = rt.Method + " " + rt.Path
			}
			g.AddEdge(gatewayNode, label)
			entry := routeEntry{label: label}
			if rt.Handler != "" {
				entry.handler = fmt.Sprintf("%s() %s", rt.Handler, module)
				g.AddEdge(label, entry.handler)
			}
			entries = append(entries, entry)
		}
	}

	g.Rendered = renderedRoutes(entries)
	return g
}

type routeEntry struct {
	label   string
	handler string
}

// renderedRoutes bounds the drawn graph to the gateway plus the first
// maxRenderedRoutes routes and their handlers. The full adjacency is
// never truncated.
func renderedRoutes(entries []routeEntry) Subgraph {
	sub := Subgraph{Nodes: []string{gatewayNode}, Edges: [][2]string{}}
	seenNode := map[string]struct{}{gatewayNode: {}}
	seenEdge := map[[2]string]struct{}{}

	addNode := func(n string) {
		if _, ok := seenNode[n]; !ok {
			seenNode[n] = struct{}{}
			sub.Nodes = append(sub.Nodes, n)
		}
	}
	addEdge := func(from, to string) {
		e := [2]string{from, to}
		if _, ok := seenEdge[e]; !ok {
			seenEdge[e] = struct{}{}
			sub.Edges = append(sub.Edges, e)
		}
	}

	for i, entry := range entries {
		if i >= maxRenderedRoutes {
			break
		}
		addNode(entry.label)
		addEdge(gatewayNode, entry.label)
		if entry.handler != "" {
			addNode(entry.handler)
			addEdge(entry.label, entry.handler)
		}
	}
	return sub
}
