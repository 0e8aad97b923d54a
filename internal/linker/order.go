package linker

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vk/modelforge/internal/nodeid"
)

// ErrCyclicDependency is matched by every *CycleError.
var ErrCyclicDependency = errors.New("cyclic dependency")

// CycleError is returned when ordering is requested over a graph that is
// not acyclic. Nodes lists every node that could not be ordered.
type CycleError struct {
	Nodes []nodeid.FQN
}

func (e *CycleError) Error() string {
	ids := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		ids[i] = n.String()
	}
	return fmt.Sprintf("cycle detected involving nodes: %s", strings.Join(ids, ", "))
}

func (e *CycleError) Unwrap() error { return ErrCyclicDependency }

// TopologicalOrder returns the graph's nodes ordered so that for every edge
// u -> v, u comes before v. Nodes with no relative constraint are ordered by
// id, so the result only depends on the graph's contents.
//
// When subset is given only those nodes are returned. Their transitive
// dependencies still take part in the ordering so indirect constraints are
// honoured, and a cycle among them is reported. Unknown subset ids are an
// error.
func (l *Linker) TopologicalOrder(subset ...nodeid.FQN) ([]nodeid.FQN, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	relevant := make(map[string]*node, len(l.nodes))
	want := make(map[string]bool, len(subset))
	if len(subset) == 0 {
		for k, n := range l.nodes {
			relevant[k] = n
			want[k] = true
		}
	} else {
		var stack []*node
		for _, id := range subset {
			n, ok := l.nodes[id.String()]
			if !ok {
				return nil, fmt.Errorf("node not found: %s", id)
			}
			want[n.id] = true
			stack = append(stack, n)
		}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, seen := relevant[n.id]; seen {
				continue
			}
			relevant[n.id] = n
			for _, dep := range n.deps {
				stack = append(stack, dep)
			}
		}
	}

	// Kahn's algorithm over the relevant nodes, always taking the smallest
	// ready id next.
	inDegree := make(map[string]int, len(relevant))
	var ready []string
	for k, n := range relevant {
		inDegree[k] = len(n.deps)
		if inDegree[k] == 0 {
			ready = append(ready, k)
		}
	}
	slices.Sort(ready)

	order := make([]nodeid.FQN, 0, len(want))
	visited := 0
	for len(ready) > 0 {
		k := ready[0]
		ready = ready[1:]
		visited++

		n := relevant[k]
		if want[k] {
			order = append(order, nodeid.New(n.fqn...))
		}

		var released []string
		for depKey := range n.dependents {
			if _, ok := relevant[depKey]; !ok {
				continue
			}
			inDegree[depKey]--
			if inDegree[depKey] == 0 {
				released = append(released, depKey)
			}
		}
		if len(released) > 0 {
			ready = append(ready, released...)
			slices.Sort(ready)
		}
	}

	if visited != len(relevant) {
		var stuck []string
		for k, d := range inDegree {
			if d > 0 {
				stuck = append(stuck, k)
			}
		}
		slices.Sort(stuck)
		cycle := &CycleError{}
		for _, k := range stuck {
			cycle.Nodes = append(cycle.Nodes, nodeid.New(relevant[k].fqn...))
		}
		return nil, cycle
	}

	return order, nil
}
