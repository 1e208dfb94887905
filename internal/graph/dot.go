package graph

import (
	"fmt"
	"strings"
)

// Dark theme shared by all three renderings.
const (
	dotBackground = "#0e1117"
	dotNodeFill   = "#262730"
	dotFontColor  = "#fafafa"
	dotEdgeColor  = "#4a4a5a"
)

var methodColors = map[string]string{
	"GET":    "#27ae60",
	"POST":   "#e67e22",
	"PUT":    "#2980b9",
	"DELETE": "#c0392b",
	"PATCH":  "#8e44ad",
	"USE":    "#7f8c8d",
	"ALL":    "#95a5a6",
}

// DOT renders the graph's bounded subset as graphviz source.
func (g *Graph) DOT() string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", g.Name)

	rankdir := "LR"
	if g.Name == GraphAPIRoutes {
		rankdir = "TB"
	}
	fmt.Fprintf(&b, "  graph [rankdir=%s, bgcolor=%q, pad=\"0.4\"];\n", rankdir, dotBackground)
	fmt.Fprintf(&b, "  node [shape=box, style=\"rounded,filled\", fillcolor=%q, fontcolor=%q, fontname=\"Helvetica\", fontsize=10];\n", dotNodeFill, dotFontColor)
	fmt.Fprintf(&b, "  edge [color=%q, arrowsize=0.7];\n", dotEdgeColor)

	for _, n := range g.Rendered.Nodes {
		fmt.Fprintf(&b, "  %q [label=%q%s];\n", n, g.nodeLabel(n), g.nodeAttrs(n))
	}
	for _, e := range g.Rendered.Edges {
		fmt.Fprintf(&b, "  %q -> %q;\n", e[0], e[1])
	}

	b.WriteString("}\n")
	return b.String()
}

func (g *Graph) nodeLabel(name string) string {
	switch g.Name {
	case GraphModuleDependency:
		return shortenModuleLabel(name)
	case GraphAPIRoutes:
		// Handler nodes read better on two lines.
		if idx := strings.Index(name, "() "); idx >= 0 {
			return name[:idx+2] + "\n" + name[idx+3:]
		}
	}
	return name
}

func (g *Graph) nodeAttrs(name string) string {
	if g.Name != GraphAPIRoutes {
		if g.Name == GraphModuleDependency {
			return ", color=\"#4e8cff\""
		}
		return ", color=\"#61dafb\""
	}
	switch {
	case name == gatewayNode:
		return ", shape=ellipse, fillcolor=\"#1a5276\", color=\"#5dade2\""
	case strings.Contains(name, "() "):
		return ", shape=component, fillcolor=\"#1c2833\", color=\"#5dade2\""
	default:
		method, _, _ := strings.Cut(name, " ")
		if color, ok := methodColors[method]; ok {
			return fmt.Sprintf(", color=%q", color)
		}
		return ", color=\"#7f8c8d\""
	}
}

// shortenModuleLabel keeps long dotted module names readable by dropping
// all but the last two components.
func shortenModuleLabel(name string) string {
	if len(name) <= 25 {
		return name
	}
	parts := strings.Split(name, ".")
	if len(parts) >= 2 {
		return "..." + strings.Join(parts[len(parts)-2:], ".")
	}
	return name[:22] + "..."
}
