// internal/nodeid/fqn.go
package nodeid

import (
	"slices"
	"strings"
)

// Separator joins FQN segments in their canonical string form.
const Separator = "."

// String serializes the FQN into its canonical dotted representation.
func (f FQN) String() string {
	return strings.Join(f, Separator)
}

// Name returns the terminal segment, or "" for an empty FQN.
func (f FQN) Name() string {
	if len(f) == 0 {
		return ""
	}
	return f[len(f)-1]
}

// Package returns the owning project segment, or "" for an empty FQN.
func (f FQN) Package() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// WithName returns a copy of the FQN whose last segment is replaced by name.
func (f FQN) WithName(name string) FQN {
	if len(f) == 0 {
		return FQN{name}
	}
	out := New(f...)
	out[len(out)-1] = name
	return out
}

// HasPrefix reports whether prefix matches the leading segments of f.
func (f FQN) HasPrefix(prefix FQN) bool {
	if len(prefix) > len(f) {
		return false
	}
	return slices.Equal(f[:len(prefix)], prefix)
}

// Equal checks for segment-wise equality.
func (f FQN) Equal(other FQN) bool {
	return slices.Equal(f, other)
}
