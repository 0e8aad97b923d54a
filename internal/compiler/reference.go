package compiler

import (
	"fmt"

	"github.com/vk/modelforge/internal/source"
)

// anyNamespace names the search space of an unqualified reference.
const anyNamespace = "ANY"

// Reference is a symbolic model reference: either Unqualified(name), which
// searches every package, or Qualified(package, name), which searches only
// models owned by that package.
type Reference struct {
	Package string
	Name    string
}

// Unqualified references name in any package.
func Unqualified(name string) Reference {
	return Reference{Name: name}
}

// Qualified references name within pkg only.
func Qualified(pkg, name string) Reference {
	return Reference{Package: pkg, Name: name}
}

// IsQualified reports whether the reference is restricted to one package.
func (r Reference) IsQualified() bool { return r.Package != "" }

// Namespace is the package searched, or "ANY".
func (r Reference) Namespace() string {
	if r.IsQualified() {
		return r.Package
	}
	return anyNamespace
}

func (r Reference) String() string {
	if r.IsQualified() {
		return r.Package + "." + r.Name
	}
	return r.Name
}

// referenceFromArgs maps the template call forms ref "name" and
// ref "package" "name" onto a Reference.
func referenceFromArgs(args []string) (Reference, error) {
	switch len(args) {
	case 1:
		if args[0] == "" {
			return Reference{}, fmt.Errorf("ref: model name cannot be empty")
		}
		return Unqualified(args[0]), nil
	case 2:
		if args[0] == "" || args[1] == "" {
			return Reference{}, fmt.Errorf("ref: package and model name cannot be empty")
		}
		return Qualified(args[0], args[1]), nil
	default:
		return Reference{}, fmt.Errorf("ref: expected 1 or 2 arguments, got %d", len(args))
	}
}

// Index is a read-only lookup over the candidate pool of one run. It is
// built once and shared by every resolver of that run.
type Index struct {
	byName map[string][]*source.Model
}

// NewIndex indexes models by terminal name, keeping pool order within a
// name.
func NewIndex(models []*source.Model) *Index {
	ix := &Index{byName: make(map[string][]*source.Model)}
	for _, m := range models {
		ix.byName[m.Name] = append(ix.byName[m.Name], m)
	}
	return ix
}

// Lookup returns the single model matching ref.
func (ix *Index) Lookup(ref Reference) (*source.Model, error) {
	var found []*source.Model
	for _, m := range ix.byName[ref.Name] {
		if ref.IsQualified() && m.Project.Name != ref.Package {
			continue
		}
		found = append(found, m)
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return nil, &ReferenceError{Ref: ref}
	default:
		refErr := &ReferenceError{Ref: ref}
		for _, m := range found {
			refErr.Matches = append(refErr.Matches, m.FQN)
		}
		return nil, refErr
	}
}

// ValidateUnique fails on the first model whose terminal name was already
// seen, across every package in the pool.
func ValidateUnique(models []*source.Model) error {
	seen := make(map[string]*source.Model, len(models))
	for _, m := range models {
		if first, ok := seen[m.Name]; ok {
			return &DuplicateModelError{Name: m.Name, First: first.FQN, Conflict: m.FQN}
		}
		seen[m.Name] = m
	}
	return nil
}
