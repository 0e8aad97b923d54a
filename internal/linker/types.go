package linker

import (
	"sync"

	"github.com/vk/modelforge/internal/nodeid"
)

// Linker is a directed graph keyed by model FQN. All operations on the
// graph are concurrency-safe.
type Linker struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by the FQN's string form.
	nodes map[string]*node
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API.
type node struct {
	id  string
	fqn nodeid.FQN
	// deps holds the set of nodes that must come before this node.
	deps map[string]*node
	// dependents holds the set of nodes that come after this node.
	dependents map[string]*node
}

// Edge is a directed edge; From must be available before To can run.
type Edge struct {
	From nodeid.FQN
	To   nodeid.FQN
}
