// Package building defines the typed records and sentinel errors for the
// building topology graph. See doc.go for the package overview.
package building

import "errors"

// Sentinel errors for definition decoding and graph construction.
var (
	// ErrEmptyDefinition indicates a definition with no nodes.
	ErrEmptyDefinition = errors.New("building: definition has no nodes")

	// ErrEmptyNodeID indicates a node with an empty id.
	ErrEmptyNodeID = errors.New("building: node id is empty")

	// ErrDuplicateNode indicates two nodes declared with the same id.
	ErrDuplicateNode = errors.New("building: duplicate node id")

	// ErrUnknownNodeType indicates a node type outside {room, exit, plain}.
	ErrUnknownNodeType = errors.New("building: unknown node type")

	// ErrDanglingEdge indicates an edge endpoint that references an
	// undeclared node. Dangling references would silently produce
	// unreachable rooms, so construction fails fast instead.
	ErrDanglingEdge = errors.New("building: edge references undeclared node")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("building: self-loop edge not allowed")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("building: edge weight must be positive")
)

// NodeType tags a node's evacuation role.
type NodeType string

const (
	// NodeRoom is an evacuation-relevant room with a plan of its own.
	NodeRoom NodeType = "room"

	// NodeExit is a building exit; any exit terminates a safe-path search.
	NodeExit NodeType = "exit"

	// NodePlain is pass-through topology (corridors, junctions).
	NodePlain NodeType = "plain"
)

// valid reports whether t is one of the three declared node types.
func (t NodeType) valid() bool {
	return t == NodeRoom || t == NodeExit || t == NodePlain
}

// Node is a topological point in the building graph.
type Node struct {
	ID   string   `json:"id"`
	Type NodeType `json:"type"`
}

// Edge is an undirected connection between two nodes, optionally gated by a
// door. A zero Weight means "unset" and defaults to 1 at construction; the
// safety search treats every edge as unit cost regardless, the weight is
// carried for the visualization variant.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight,omitempty"`
	DoorID string `json:"door_id,omitempty"`
}

// Definition is the building definition document: the external interface
// consumed at load time.
type Definition struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Neighbor is one entry of a node's adjacency list: the node on the other
// side of an edge, the edge weight, and the edge record itself.
type Neighbor struct {
	ID     string
	Weight int
	Edge   *Edge
}
