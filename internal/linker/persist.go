package linker

import (
	"fmt"
	"io"
	"os"

	"github.com/vk/modelforge/internal/nodeid"
	"gopkg.in/yaml.v3"
)

// graphFile is the on-disk adjacency-list form of a Linker.
type graphFile struct {
	Nodes []graphNode `yaml:"nodes"`
}

// graphNode lists one node and the ids of the nodes it depends on.
type graphNode struct {
	ID        string   `yaml:"id"`
	FQN       []string `yaml:"fqn,flow"`
	DependsOn []string `yaml:"depends_on,omitempty"`
}

// Write serializes the node and edge sets as YAML. Nodes and their
// dependency lists are sorted by id, so equal graphs produce equal bytes.
func (l *Linker) Write(w io.Writer) error {
	l.mutex.RLock()
	file := graphFile{Nodes: make([]graphNode, 0, len(l.nodes))}
	for _, key := range l.sortedKeysLocked() {
		n := l.nodes[key]
		file.Nodes = append(file.Nodes, graphNode{
			ID:        n.id,
			FQN:       nodeid.New(n.fqn...),
			DependsOn: sortedKeys(n.deps),
		})
	}
	l.mutex.RUnlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("encoding graph: %w", err)
	}
	return enc.Close()
}

// Read parses a graph previously produced by Write.
func Read(r io.Reader) (*Linker, error) {
	var file graphFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding graph: %w", err)
	}

	l := New()
	byID := make(map[string]nodeid.FQN, len(file.Nodes))
	for _, gn := range file.Nodes {
		fqn := nodeid.FQN(gn.FQN)
		if len(fqn) == 0 {
			parsed, err := nodeid.Parse(gn.ID)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", gn.ID, err)
			}
			fqn = parsed
		}
		if gn.ID != "" && gn.ID != fqn.String() {
			return nil, fmt.Errorf("node id %q does not match fqn %q", gn.ID, fqn)
		}
		byID[fqn.String()] = fqn
		l.AddNode(fqn)
	}

	for _, gn := range file.Nodes {
		dependent := byID[nodeid.FQN(gn.FQN).String()]
		if dependent == nil {
			dependent = byID[gn.ID]
		}
		for _, depID := range gn.DependsOn {
			dependency, ok := byID[depID]
			if !ok {
				return nil, fmt.Errorf("node %q depends on undeclared node %q", dependent, depID)
			}
			l.AddDependency(dependent, dependency)
		}
	}
	return l, nil
}

// WriteFile writes the graph to path, replacing any existing file.
func (l *Linker) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating graph file %s: %w", path, err)
	}
	if err := l.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile loads a graph from path.
func ReadFile(path string) (*Linker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph file %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
