package linker

import (
	"fmt"
	"slices"

	"github.com/vk/modelforge/internal/nodeid"
)

// New creates and returns an initialized, empty Linker.
func New() *Linker {
	return &Linker{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a node for the given FQN. If the node already exists, the
// function does nothing.
func (l *Linker) AddNode(id nodeid.FQN) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.addNodeLocked(id)
}

func (l *Linker) addNodeLocked(id nodeid.FQN) *node {
	key := id.String()
	if n, ok := l.nodes[key]; ok {
		return n
	}

	n := &node{
		id:         key,
		fqn:        nodeid.New(id...),
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	l.nodes[key] = n
	return n
}

// AddDependency records that dependent depends on dependency: both nodes are
// created if missing and an edge dependency -> dependent is inserted.
// Repeating the same call is a no-op.
func (l *Linker) AddDependency(dependent, dependency nodeid.FQN) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	to := l.addNodeLocked(dependent)
	from := l.addNodeLocked(dependency)

	to.deps[from.id] = from
	from.dependents[to.id] = to
}

// Len returns the number of nodes in the graph.
func (l *Linker) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.nodes)
}

// Has reports whether a node for id exists.
func (l *Linker) Has(id nodeid.FQN) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	_, ok := l.nodes[id.String()]
	return ok
}

// Nodes returns every node, sorted by id.
func (l *Linker) Nodes() []nodeid.FQN {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	out := make([]nodeid.FQN, 0, len(l.nodes))
	for _, key := range l.sortedKeysLocked() {
		out = append(out, nodeid.New(l.nodes[key].fqn...))
	}
	return out
}

// Edges returns every edge, sorted by (From, To).
func (l *Linker) Edges() []Edge {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var out []Edge
	for _, key := range l.sortedKeysLocked() {
		n := l.nodes[key]
		for _, depKey := range sortedKeys(n.dependents) {
			out = append(out, Edge{From: nodeid.New(n.fqn...), To: nodeid.New(n.dependents[depKey].fqn...)})
		}
	}
	return out
}

// Dependencies returns the nodes that id directly depends on, sorted by id.
func (l *Linker) Dependencies(id nodeid.FQN) ([]nodeid.FQN, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	n, ok := l.nodes[id.String()]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return fqnsOf(n.deps), nil
}

// Dependents returns the nodes that directly depend on id, sorted by id.
func (l *Linker) Dependents(id nodeid.FQN) ([]nodeid.FQN, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	n, ok := l.nodes[id.String()]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return fqnsOf(n.dependents), nil
}

func (l *Linker) sortedKeysLocked() []string {
	return sortedKeys(l.nodes)
}

func sortedKeys(m map[string]*node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func fqnsOf(m map[string]*node) []nodeid.FQN {
	out := make([]nodeid.FQN, 0, len(m))
	for _, key := range sortedKeys(m) {
		out = append(out, nodeid.New(m[key].fqn...))
	}
	return out
}
