package search

import "fmt"

// Handle is a stable index of a Node inside its Tree.
type Handle int32

// NoHandle is the absent handle: the root's parent, or "no goal node".
const NoHandle Handle = -1

// Node is one search-tree node. It is immutable once created.
type Node struct {
	// State is the graph vertex this node stands for.
	State string `json:"state"`

	// Parent is the handle of the node this one was generated from.
	Parent Handle `json:"parent"`

	// Action is the state reached by the step from Parent; empty for roots.
	Action string `json:"action,omitempty"`

	// PathCost is the cumulative edge weight from the root.
	PathCost int64 `json:"path_cost"`

	// Depth is the number of edges from the root.
	Depth int `json:"depth"`
}

// Tree is an append-only arena of nodes. A search invocation owns its Tree;
// several roots may share one arena (bidirectional search does).
type Tree struct {
	nodes []Node
}

// NewTree returns an empty arena.
func NewTree() *Tree {
	return &Tree{nodes: make([]Node, 0, 64)}
}

// Root adds a root node for state.
func (t *Tree) Root(state string) Handle {
	t.nodes = append(t.nodes, Node{State: state, Parent: NoHandle})

	return Handle(len(t.nodes) - 1)
}

// Child adds a node for state reached from parent over an edge of weight step.
func (t *Tree) Child(parent Handle, state string, step int64) Handle {
	p := t.Node(parent)
	t.nodes = append(t.nodes, Node{
		State:    state,
		Parent:   parent,
		Action:   state,
		PathCost: p.PathCost + step,
		Depth:    p.Depth + 1,
	})

	return Handle(len(t.nodes) - 1)
}

// Node returns the node behind h. An invalid handle is a programming error.
func (t *Tree) Node(h Handle) Node {
	if h < 0 || int(h) >= len(t.nodes) {
		panic(fmt.Sprintf("search: invalid handle %d (tree size %d)", h, len(t.nodes)))
	}

	return t.nodes[h]
}

// Len returns the number of nodes allocated so far.
func (t *Tree) Len() int { return len(t.nodes) }

// OnPath reports whether state appears on the root→h chain, h included.
func (t *Tree) OnPath(h Handle, state string) bool {
	for cur := h; cur != NoHandle; cur = t.nodes[cur].Parent {
		if t.nodes[cur].State == state {
			return true
		}
	}

	return false
}
