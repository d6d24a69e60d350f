package building

import "fmt"

// Graph is the indexed, immutable building topology.
//
// All fields are populated once by New and never mutated afterward, so the
// read methods are safe for concurrent use without locking.
type Graph struct {
	nodes map[string]Node
	adj   map[string][]Neighbor
	edges []*Edge
	exits []string
	rooms []string
}

// New validates def and builds the indexed graph: node index, symmetric
// adjacency (each edge contributes a Neighbor entry in both directions, in
// declaration order), and derived exit/room id lists.
//
// Complexity: O(V + E).
func New(def Definition) (*Graph, error) {
	if len(def.Nodes) == 0 {
		return nil, ErrEmptyDefinition
	}

	g := &Graph{
		nodes: make(map[string]Node, len(def.Nodes)),
		adj:   make(map[string][]Neighbor, len(def.Nodes)),
		edges: make([]*Edge, 0, len(def.Edges)),
	}

	for _, n := range def.Nodes {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if !n.Type.valid() {
			return nil, fmt.Errorf("%w: node %q has type %q", ErrUnknownNodeType, n.ID, n.Type)
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		g.nodes[n.ID] = n
		switch n.Type {
		case NodeExit:
			g.exits = append(g.exits, n.ID)
		case NodeRoom:
			g.rooms = append(g.rooms, n.ID)
		}
	}

	for i := range def.Edges {
		e := def.Edges[i] // copy; the stored pointer must not alias def
		if _, ok := g.nodes[e.From]; !ok {
			return nil, fmt.Errorf("%w: %q→%q (missing %q)", ErrDanglingEdge, e.From, e.To, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return nil, fmt.Errorf("%w: %q→%q (missing %q)", ErrDanglingEdge, e.From, e.To, e.To)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, e.From)
		}
		if e.Weight == 0 {
			e.Weight = 1 // unset
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: %q→%q weight=%d", ErrBadWeight, e.From, e.To, e.Weight)
		}
		stored := &e
		g.edges = append(g.edges, stored)
		// Undirected: a neighbor entry in both directions.
		g.adj[e.From] = append(g.adj[e.From], Neighbor{ID: e.To, Weight: e.Weight, Edge: stored})
		g.adj[e.To] = append(g.adj[e.To], Neighbor{ID: e.From, Weight: e.Weight, Edge: stored})
	}

	return g, nil
}

// Node returns the node record for id and whether it exists.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is a declared node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// IsExit reports whether id is a declared exit node.
func (g *Graph) IsExit(id string) bool {
	return g.nodes[id].Type == NodeExit
}

// Neighbors returns the adjacency list of id in edge declaration order.
// The returned slice is shared graph state and must not be modified.
func (g *Graph) Neighbors(id string) []Neighbor {
	return g.adj[id]
}

// Edges returns every edge in declaration order.
// The returned slice is shared graph state and must not be modified.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Exits returns the exit node ids in declaration order.
func (g *Graph) Exits() []string {
	out := make([]string, len(g.exits))
	copy(out, g.exits)
	return out
}

// Rooms returns the room node ids in declaration order.
func (g *Graph) Rooms() []string {
	out := make([]string, len(g.rooms))
	copy(out, g.rooms)
	return out
}

// NodeCount returns the number of declared nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of declared edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// DoorIDs returns the set of door ids referenced by at least one edge.
func (g *Graph) DoorIDs() map[string]struct{} {
	doors := make(map[string]struct{})
	for _, e := range g.edges {
		if e.DoorID != "" {
			doors[e.DoorID] = struct{}{}
		}
	}
	return doors
}
