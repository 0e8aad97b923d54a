// Package adapter turns rendered model SQL into executable statements. An
// adapter also owns the naming transform applied to model names, so that
// references, graph nodes and written files agree on a model's name.
package adapter

import (
	"fmt"
	"strings"

	"github.com/vk/modelforge/internal/project"
	"github.com/vk/modelforge/internal/render"
)

// Adapter builds statements for one backend target.
type Adapter interface {
	// Label identifies the adapter in output paths and the graph file name.
	Label() string
	// ModelName maps a model's declared name to the relation name it is
	// materialized as.
	ModelName(name string) string
	// Statement wraps body for the given relation. ok is false when the
	// materialization produces no statement of its own.
	Statement(schema, name string, m project.Materialization, body string) (stmt string, ok bool)
}

// New returns the adapter for label: "build" or "test".
func New(label string) (Adapter, error) {
	switch label {
	case BuildLabel:
		return Build{}, nil
	case DryRunLabel:
		return DryRun{}, nil
	default:
		return nil, fmt.Errorf("unknown adapter %q", label)
	}
}

const (
	BuildLabel  = "build"
	DryRunLabel = "test"

	dryRunPrefix = "test_"
)

// Build creates relations under their declared names.
type Build struct{}

func (Build) Label() string { return BuildLabel }

func (Build) ModelName(name string) string { return name }

func (Build) Statement(schema, name string, m project.Materialization, body string) (string, bool) {
	switch m {
	case project.Table:
		return createStatement("table", schema, name, body), true
	case project.View:
		return createStatement("view", schema, name, body), true
	default:
		return "", false
	}
}

// DryRun creates every relation as a prefixed view so a pipeline can be
// exercised next to the real relations without replacing them.
type DryRun struct{}

func (DryRun) Label() string { return DryRunLabel }

func (DryRun) ModelName(name string) string { return dryRunPrefix + name }

func (DryRun) Statement(schema, name string, m project.Materialization, body string) (string, bool) {
	if m == project.Ephemeral {
		return "", false
	}
	return createStatement("view", schema, name, body), true
}

func createStatement(kind, schema, name, body string) string {
	return fmt.Sprintf("create %s %s.%s as (\n%s\n);\n",
		kind, render.QuoteIdent(schema), render.QuoteIdent(name), strings.TrimSpace(body))
}
