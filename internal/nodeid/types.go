// internal/nodeid/types.go
package nodeid

// FQN is the fully-qualified name of a model: an ordered sequence of path
// segments terminating in the model's declared name.
type FQN []string

// New builds an FQN from the given segments. The slice is copied so later
// mutation by the caller does not leak into the identifier.
func New(segments ...string) FQN {
	out := make(FQN, len(segments))
	copy(out, segments)
	return out
}
