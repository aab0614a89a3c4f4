// SPDX-License-Identifier: MIT

package rag

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is a region-adjacency graph. It is not safe for concurrent mutation;
// concurrent readers are fine once construction is finished.
type Graph struct {
	adj   *simple.UndirectedGraph
	nodes []Node          // ascending
	ends  [][2]Node       // edge id -> (u, v), u < v
	pairs map[uint64]Edge // pairKey -> edge id
}

// New returns an empty graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		adj:   simple.NewUndirectedGraph(),
		pairs: make(map[uint64]Edge),
	}
}

// AddNode registers region n. Adding an existing node is a no-op.
// Returns ErrNodeRange when n is not a valid uint32 label.
// Complexity: O(K) for the sorted insert, K = NodeCount().
func (g *Graph) AddNode(n Node) error {
	if n < 0 || n > maxNode {
		return fmt.Errorf("AddNode(%d): %w", n, ErrNodeRange)
	}
	i := sort.Search(len(g.nodes), func(i int) bool { return g.nodes[i] >= n })
	if i < len(g.nodes) && g.nodes[i] == n {
		return nil
	}
	g.nodes = append(g.nodes, 0)
	copy(g.nodes[i+1:], g.nodes[i:])
	g.nodes[i] = n
	g.adj.AddNode(simple.Node(n))

	return nil
}

// AddEdge registers the boundary between u and v, adding missing nodes.
// An existing pair returns its current id; ids are dense in insertion order.
// Errors: ErrSelfLoop when u == v, ErrNodeRange for invalid ids.
// Complexity: O(1) amortized plus AddNode cost for new nodes.
func (g *Graph) AddEdge(u, v Node) (Edge, error) {
	if u == v {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if err := g.AddNode(u); err != nil {
		return -1, err
	}
	if err := g.AddNode(v); err != nil {
		return -1, err
	}
	key := pairKey(u, v)
	if e, ok := g.pairs[key]; ok {
		return e, nil
	}
	if u > v {
		u, v = v, u
	}
	e := Edge(len(g.ends))
	g.ends = append(g.ends, [2]Node{u, v})
	g.pairs[key] = e
	g.adj.SetEdge(ragEdge{f: simple.Node(u), t: simple.Node(v), id: e})

	return e, nil
}

// NodeCount returns the number of regions.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of boundaries.
func (g *Graph) EdgeCount() int { return len(g.ends) }

// MaxNodeID returns the largest node id, or -1 for an empty graph.
// Per-node dense arrays need MaxNodeID()+1 slots.
func (g *Graph) MaxNodeID() Node {
	if len(g.nodes) == 0 {
		return -1
	}

	return g.nodes[len(g.nodes)-1]
}

// HasNode reports whether n is registered.
func (g *Graph) HasNode(n Node) bool {
	return g.adj.Node(int64(n)) != nil
}

// NodeFromLabel returns the node of a region label.
// Complexity: O(1).
func (g *Graph) NodeFromLabel(label uint32) (Node, error) {
	n := Node(label)
	if !g.HasNode(n) {
		return -1, fmt.Errorf("NodeFromLabel(%d): %w", label, ErrNodeNotFound)
	}

	return n, nil
}

// FindEdge returns the boundary between u and v in either order.
// Returns ErrEdgeNotFound when the pair was never registered; the lookup is
// a single map lookup and does not allocate.
// Complexity: O(1).
func (g *Graph) FindEdge(u, v Node) (Edge, error) {
	if u >= 0 && v >= 0 && u <= maxNode && v <= maxNode {
		if e, ok := g.pairs[pairKey(u, v)]; ok {
			return e, nil
		}
	}

	return -1, fmt.Errorf("FindEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
}

// Endpoints returns the two regions of e with u < v.
func (g *Graph) Endpoints(e Edge) (u, v Node, err error) {
	if e < 0 || int(e) >= len(g.ends) {
		return -1, -1, fmt.Errorf("Endpoints(%d): %w", e, ErrEdgeNotFound)
	}
	p := g.ends[e]

	return p[0], p[1], nil
}

// U returns the smaller endpoint of e, or -1 when e is unknown.
func (g *Graph) U(e Edge) Node {
	if e < 0 || int(e) >= len(g.ends) {
		return -1
	}

	return g.ends[e][0]
}

// V returns the larger endpoint of e, or -1 when e is unknown.
func (g *Graph) V(e Edge) Node {
	if e < 0 || int(e) >= len(g.ends) {
		return -1
	}

	return g.ends[e][1]
}

// Degree returns the number of regions adjacent to n.
// Complexity: O(1).
func (g *Graph) Degree(n Node) (int, error) {
	if !g.HasNode(n) {
		return 0, fmt.Errorf("Degree(%d): %w", n, ErrNodeNotFound)
	}

	return g.adj.From(int64(n)).Len(), nil
}

// Neighbors returns the unique regions adjacent to n in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(n Node) ([]Node, error) {
	if !g.HasNode(n) {
		return nil, fmt.Errorf("Neighbors(%d): %w", n, ErrNodeNotFound)
	}
	gn := graph.NodesOf(g.adj.From(int64(n)))
	out := make([]Node, len(gn))
	for i, x := range gn {
		out[i] = Node(x.ID())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Nodes returns all regions in ascending order (independent copy).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns all edge ids in ascending order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.ends))
	for i := range out {
		out[i] = Edge(i)
	}

	return out
}

// Undirected exposes the adjacency as a gonum graph. Node ids equal region
// labels; edges map back to dense ids with EdgeID. Treat it as read-only.
func (g *Graph) Undirected() graph.Undirected { return g.adj }

// Components returns the connected components of the RAG, each sorted
// ascending, ordered by their smallest region.
// Complexity: O(V + E) plus sorting.
func (g *Graph) Components() [][]Node {
	cc := topo.ConnectedComponents(g.adj)
	out := make([][]Node, 0, len(cc))
	for _, comp := range cc {
		ns := make([]Node, len(comp))
		for i, x := range comp {
			ns[i] = Node(x.ID())
		}
		sort.Slice(ns, func(i, j int) bool { return ns[i] < ns[j] })
		out = append(out, ns)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}
