package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/modelforge/internal/nodeid"
)

var (
	// ErrDuplicateModelName is matched by *DuplicateModelError.
	ErrDuplicateModelName = errors.New("duplicate model name")
	// ErrReferenceNotFound is matched by a *ReferenceError with no matches.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrAmbiguousReference is matched by a *ReferenceError with several matches.
	ErrAmbiguousReference = errors.New("ambiguous reference")
)

// DuplicateModelError reports two discovered models sharing a terminal name.
type DuplicateModelError struct {
	Name     string
	First    nodeid.FQN
	Conflict nodeid.FQN
}

func (e *DuplicateModelError) Error() string {
	return fmt.Sprintf("conflicting model found: model=%s (%s and %s)", e.Name, e.First, e.Conflict)
}

func (e *DuplicateModelError) Unwrap() error { return ErrDuplicateModelName }

// ReferenceError reports a reference that did not resolve to exactly one
// model.
type ReferenceError struct {
	Ref     Reference
	Matches []nodeid.FQN
}

func (e *ReferenceError) Error() string {
	if len(e.Matches) == 0 {
		return fmt.Sprintf("can't find a model named '%s' in package '%s' -- does it exist?", e.Ref.Name, e.Ref.Namespace())
	}
	matches := make([]string, len(e.Matches))
	for i, m := range e.Matches {
		matches[i] = m.String()
	}
	return fmt.Sprintf("model specification is ambiguous: model='%s' package='%s' -- %d models match criteria: %s",
		e.Ref.Name, e.Ref.Namespace(), len(e.Matches), strings.Join(matches, ", "))
}

func (e *ReferenceError) Unwrap() error {
	if len(e.Matches) == 0 {
		return ErrReferenceNotFound
	}
	return ErrAmbiguousReference
}
