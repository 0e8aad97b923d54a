package linker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modelforge/internal/nodeid"
)

func fqn(s string) nodeid.FQN {
	f, err := nodeid.Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func TestNew(t *testing.T) {
	l := New()
	require.NotNil(t, l)
	assert.NotNil(t, l.nodes)
	assert.Empty(t, l.nodes)
}

func TestAddNode(t *testing.T) {
	l := New()

	l.AddNode(fqn("p.a"))
	assert.Len(t, l.nodes, 1)
	nodeA, ok := l.nodes["p.a"]
	require.True(t, ok)
	assert.Equal(t, "p.a", nodeA.id)
	assert.NotNil(t, nodeA.deps)
	assert.NotNil(t, nodeA.dependents)

	l.AddNode(fqn("p.a")) // Test idempotency
	assert.Len(t, l.nodes, 1)

	l.AddNode(fqn("p.b"))
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Has(fqn("p.b")))
	assert.False(t, l.Has(fqn("p.c")))
}

func TestAddDependency(t *testing.T) {
	t.Run("creates missing nodes and edge", func(t *testing.T) {
		l := New()

		l.AddDependency(fqn("p.b"), fqn("p.a")) // b depends on a

		nodeA := l.nodes["p.a"]
		nodeB := l.nodes["p.b"]
		require.NotNil(t, nodeA)
		require.NotNil(t, nodeB)
		assert.Contains(t, nodeA.dependents, "p.b")
		assert.Contains(t, nodeB.deps, "p.a")

		if diff := cmp.Diff([]Edge{{From: fqn("p.a"), To: fqn("p.b")}}, l.Edges()); diff != "" {
			t.Errorf("edges mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		l := New()
		l.AddDependency(fqn("p.b"), fqn("p.a"))
		l.AddDependency(fqn("p.b"), fqn("p.a"))

		assert.Equal(t, 2, l.Len())
		assert.Len(t, l.Edges(), 1)
	})

	t.Run("dependencies and dependents", func(t *testing.T) {
		l := New()
		l.AddDependency(fqn("p.c"), fqn("p.a"))
		l.AddDependency(fqn("p.c"), fqn("p.b"))

		deps, err := l.Dependencies(fqn("p.c"))
		require.NoError(t, err)
		assert.Equal(t, []nodeid.FQN{fqn("p.a"), fqn("p.b")}, deps)

		dependents, err := l.Dependents(fqn("p.a"))
		require.NoError(t, err)
		assert.Equal(t, []nodeid.FQN{fqn("p.c")}, dependents)

		_, err = l.Dependencies(fqn("p.dne"))
		assert.ErrorContains(t, err, "node not found")
		_, err = l.Dependents(fqn("p.dne"))
		assert.ErrorContains(t, err, "node not found")
	})
}

func TestNodes_Sorted(t *testing.T) {
	l := New()
	l.AddNode(fqn("p.z"))
	l.AddNode(fqn("p.a"))
	l.AddNode(fqn("p.m"))

	assert.Equal(t, []nodeid.FQN{fqn("p.a"), fqn("p.m"), fqn("p.z")}, l.Nodes())
}
