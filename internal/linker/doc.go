// Package linker holds the dependency graph that is discovered while models
// are rendered. Nodes are model FQNs; an edge u -> v means u must be built
// before v.
//
// The graph only grows during a compilation pass. Ordering and persistence
// happen afterwards, once every model has registered itself.
package linker
