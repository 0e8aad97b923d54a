package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/modelforge/internal/ctxlog"
	"github.com/vk/modelforge/internal/fsutil"
	"github.com/vk/modelforge/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Load reads dir/project.hcl and translates it into a Project.
func Load(ctx context.Context, dir string) (*Project, error) {
	logger := ctxlog.FromContext(ctx)

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project dir %s: %w", dir, err)
	}
	path := filepath.Join(absDir, FileName)
	logger.Debug("Loading project definition.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(ctx, absDir, path, src)
}

// Parse decodes project.hcl content. dir is the project root used to
// resolve relative paths and filename is used in diagnostics.
func Parse(ctx context.Context, dir, filename string, src []byte) (*Project, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	p, err := translate(dir, &root)
	if err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", filename, err)
	}
	logger.Debug("Project definition loaded.", "name", p.Name, "model_blocks", len(p.models), "vars", len(p.Vars))
	return p, nil
}

// evalContext exposes env("NAME") to project files so schemas and vars can
// come from the environment.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{{Name: "name", Type: cty.String}},
				Type:   function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					return cty.StringVal(os.Getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}

func translate(dir string, root *fileRoot) (*Project, error) {
	if !nodeid.ValidSegment(root.Name) {
		return nil, fmt.Errorf("project name %q must contain only letters, digits, '_' or '-'", root.Name)
	}

	p := &Project{
		Name:          root.Name,
		Version:       root.Version,
		Dir:           dir,
		SourcePaths:   root.SourcePaths,
		AnalysisPaths: root.AnalysisPaths,
		TargetPath:    root.TargetPath,
		ModulesPath:   root.ModulesPath,
		Schema:        root.Schema,
	}
	if p.SourcePaths == nil {
		p.SourcePaths = []string{defaultSourcePath}
	}
	if p.TargetPath == "" {
		p.TargetPath = defaultTargetPath
	}
	if p.ModulesPath == "" {
		p.ModulesPath = defaultModulesPath
	}
	if p.Schema == "" {
		p.Schema = p.Name
	}

	vars, err := varsFromCty(root.Vars)
	if err != nil {
		return nil, fmt.Errorf("vars: %w", err)
	}
	p.Vars = vars

	for _, b := range root.Models {
		path, err := nodeid.Parse(b.Path)
		if err != nil {
			return nil, fmt.Errorf("model block %q: %w", b.Path, err)
		}
		cfg := modelBlockConfig{path: path, enabled: b.Enabled}
		if b.Materialized != nil {
			m, err := parseMaterialization(*b.Materialized)
			if err != nil {
				return nil, fmt.Errorf("model block %q: %w", b.Path, err)
			}
			cfg.materialized = &m
		}
		p.models = append(p.models, cfg)
	}
	return p, nil
}

// DependencyProjects loads every project installed one level below the
// modules directory. Directories without a project file are skipped;
// dependencies of dependencies are not followed.
func (p *Project) DependencyProjects(ctx context.Context) ([]*Project, error) {
	logger := ctxlog.FromContext(ctx)

	dirs, err := fsutil.SubDirectories(p.ModulesDir())
	if err != nil {
		return nil, fmt.Errorf("listing modules in %s: %w", p.ModulesDir(), err)
	}

	var deps []*Project
	for _, dir := range dirs {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Debug("Skipping module directory without a project file.", "dir", dir)
				continue
			}
			return nil, err
		}
		dep, err := Load(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("loading dependency project %s: %w", dir, err)
		}
		deps = append(deps, dep)
	}
	logger.Debug("Dependency projects loaded.", "count", len(deps))
	return deps, nil
}
