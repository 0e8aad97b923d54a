package compiler

import (
	"github.com/vk/modelforge/internal/adapter"
	"github.com/vk/modelforge/internal/linker"
	"github.com/vk/modelforge/internal/render"
	"github.com/vk/modelforge/internal/source"
)

// resolver is the `ref` capability handed to one model's template.
type resolver struct {
	linker  *linker.Linker
	index   *Index
	source  *source.Model
	adapter adapter.Adapter
	schema  string
}

// newResolver binds a resolver to the model being rendered and registers
// that model as a graph node, so it appears even with no edges.
func newResolver(l *linker.Linker, ix *Index, m *source.Model, a adapter.Adapter, schema string) *resolver {
	l.AddNode(m.FQN)
	return &resolver{
		linker:  l,
		index:   ix,
		source:  m,
		adapter: a,
		schema:  schema,
	}
}

// Resolve looks up ref, records that the source model depends on it and
// returns the quoted relation name to splice into the template output.
func (r *resolver) Resolve(ref Reference) (string, error) {
	target, err := r.index.Lookup(ref)
	if err != nil {
		return "", err
	}

	name := r.adapter.ModelName(target.Name)
	r.linker.AddDependency(r.source.FQN, target.FQN.WithName(name))
	return render.QuoteIdent(r.schema) + "." + render.QuoteIdent(name), nil
}

// templateFunc adapts Resolve to the variadic `ref` template function.
func (r *resolver) templateFunc() func(args ...string) (string, error) {
	return func(args ...string) (string, error) {
		ref, err := referenceFromArgs(args)
		if err != nil {
			return "", err
		}
		return r.Resolve(ref)
	}
}
