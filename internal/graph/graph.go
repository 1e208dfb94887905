package graph

// Graph is a directed graph keyed by node name. Adjacency always carries
// one entry per node, successor lists stay deduplicated and self-loop free,
// and Rendered holds the size-bounded subset that gets drawn.
type Graph struct {
	Name      string
	Nodes     []string
	Adjacency map[string][]string
	Rendered  Subgraph

	nodeSet map[string]struct{}
	edgeSet map[string]map[string]struct{}
}

// Subgraph is the bounded copy of a graph used only for rendering.
type Subgraph struct {
	Nodes []string
	Edges [][2]string
}

func NewGraph(name string) *Graph {
	return &Graph{
		Name:      name,
		Nodes:     []string{},
		Adjacency: map[string][]string{},
		nodeSet:   map[string]struct{}{},
		edgeSet:   map[string]map[string]struct{}{},
	}
}

// AddNode registers a node and its adjacency entry. Re-adding is a no-op.
func (g *Graph) AddNode(name string) {
	if name == "" {
		return
	}
	if _, ok := g.nodeSet[name]; ok {
		return
	}
	g.nodeSet[name] = struct{}{}
	g.Nodes = append(g.Nodes, name)
	g.Adjacency[name] = []string{}
	g.edgeSet[name] = map[string]struct{}{}
}

// AddEdge adds a directed edge, creating both endpoints if needed.
// Duplicate edges and self-loops are dropped.
func (g *Graph) AddEdge(from, to string) {
	if from == "" || to == "" || from == to {
		return
	}
	g.AddNode(from)
	g.AddNode(to)
	if _, ok := g.edgeSet[from][to]; ok {
		return
	}
	g.edgeSet[from][to] = struct{}{}
	g.Adjacency[from] = append(g.Adjacency[from], to)
}

// renderSubset bounds the graph to its first maxNodes nodes in insertion
// order, keeping only edges with both endpoints inside the subset.
func (g *Graph) renderSubset(maxNodes int) Subgraph {
	sub := Subgraph{Nodes: []string{}, Edges: [][2]string{}}
	kept := map[string]struct{}{}
	for _, n := range g.Nodes {
		if len(sub.Nodes) >= maxNodes {
			break
		}
		sub.Nodes = append(sub.Nodes, n)
		kept[n] = struct{}{}
	}
	for _, from := range sub.Nodes {
		for _, to := range g.Adjacency[from] {
			if _, ok := kept[to]; ok {
				sub.Edges = append(sub.Edges, [2]string{from, to})
			}
		}
	}
	return sub
}
