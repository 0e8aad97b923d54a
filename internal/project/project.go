package project

import (
	"path/filepath"

	"github.com/vk/modelforge/internal/nodeid"
	"github.com/vk/modelforge/internal/render"
)

// FileName is the project definition file expected at a project root.
const FileName = "project.hcl"

// Project is a fully parsed project definition.
type Project struct {
	Name    string
	Version string
	// Dir is the project root; relative paths below are resolved against it.
	Dir string

	SourcePaths   []string
	AnalysisPaths []string
	TargetPath    string
	ModulesPath   string

	// Schema is exposed to templates as env.schema.
	Schema string
	Vars   map[string]any

	// models holds the `model` blocks in file order.
	models []modelBlockConfig
}

// modelBlockConfig is a translated `model "<path>" { ... }` block.
type modelBlockConfig struct {
	path         nodeid.FQN
	enabled      *bool
	materialized *Materialization
}

// resolve returns p joined to the project directory unless it is absolute.
func (p *Project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}

// TargetDir is the absolute output root.
func (p *Project) TargetDir() string { return p.resolve(p.TargetPath) }

// ModulesDir is the absolute root of installed dependency projects.
func (p *Project) ModulesDir() string { return p.resolve(p.ModulesPath) }

// SourceDirs returns the model source directories.
func (p *Project) SourceDirs() []string { return p.resolveAll(p.SourcePaths) }

// AnalysisDirs returns the analysis source directories.
func (p *Project) AnalysisDirs() []string { return p.resolveAll(p.AnalysisPaths) }

func (p *Project) resolveAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, path := range paths {
		out[i] = p.resolve(path)
	}
	return out
}

// Context returns the base rendering context shared by every template of
// this project: env.schema, project.name/version, var.* and the base funcs.
func (p *Project) Context() render.Context {
	rc := render.NewContext()
	rc.Data["env"] = map[string]any{
		"schema": p.Schema,
	}
	rc.Data["project"] = map[string]any{
		"name":    p.Name,
		"version": p.Version,
	}
	vars := make(map[string]any, len(p.Vars))
	for k, v := range p.Vars {
		vars[k] = v
	}
	rc.Data["var"] = vars
	return rc
}
