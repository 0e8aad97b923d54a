// Package source discovers model and analysis templates in a project's
// source directories and describes each one.
package source

import (
	"path/filepath"
	"strings"

	"github.com/vk/modelforge/internal/adapter"
	"github.com/vk/modelforge/internal/nodeid"
	"github.com/vk/modelforge/internal/project"
)

// Kind distinguishes models from analyses.
type Kind int

const (
	KindModel Kind = iota
	KindAnalysis
)

func (k Kind) String() string {
	if k == KindAnalysis {
		return "analysis"
	}
	return "model"
}

// TemplateExt is the extension of model and analysis templates.
const TemplateExt = ".sql"

// analysisDir separates analysis outputs from model outputs.
const analysisDir = "analysis"

// Model describes one template. It is created once per discovery pass and
// not modified afterwards.
type Model struct {
	Kind    Kind
	Name    string
	FQN     nodeid.FQN
	Project *project.Project
	// TopDir is the source directory the model was found in; includes
	// resolve against it.
	TopDir string
	// RelPath is the template path relative to TopDir, with forward slashes.
	RelPath string
}

func (m *Model) String() string {
	return m.FQN.String()
}

// Config returns the model's effective configuration under the active root
// project.
func (m *Model) Config(root *project.Project) project.ModelConfig {
	return m.Project.ModelConfig(m.FQN, root)
}

// BuildPath is the output path, relative to the target directory:
// <label>/<project>/<dirs>/<name>.sql for models and
// <label>/analysis/<project>/<dirs>/<name>.sql for analyses. The file name
// uses the adapter's model name.
func (m *Model) BuildPath(a adapter.Adapter) string {
	parts := []string{a.Label()}
	if m.Kind == KindAnalysis {
		parts = append(parts, analysisDir)
	}
	parts = append(parts, m.FQN[:len(m.FQN)-1]...)
	parts = append(parts, a.ModelName(m.Name)+TemplateExt)
	return filepath.Join(parts...)
}

// Compile builds the statement for rendered SQL. Models are wrapped by the
// adapter according to their materialization; analyses are emitted as
// rendered. ok is false when there is nothing to write.
func (m *Model) Compile(rendered string, root *project.Project, a adapter.Adapter) (stmt string, ok bool) {
	if m.Kind == KindAnalysis {
		if strings.TrimSpace(rendered) == "" {
			return "", false
		}
		return rendered, true
	}
	cfg := m.Config(root)
	return a.Statement(root.Schema, a.ModelName(m.Name), cfg.Materialized, rendered)
}
