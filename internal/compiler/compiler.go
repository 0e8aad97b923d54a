package compiler

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/vk/modelforge/internal/adapter"
	"github.com/vk/modelforge/internal/ctxlog"
	"github.com/vk/modelforge/internal/fsutil"
	"github.com/vk/modelforge/internal/linker"
	"github.com/vk/modelforge/internal/project"
	"github.com/vk/modelforge/internal/render"
	"github.com/vk/modelforge/internal/source"
	"golang.org/x/sync/errgroup"
)

// Compiler compiles one project with one adapter.
type Compiler struct {
	project  *project.Project
	adapter  adapter.Adapter
	renderer render.Renderer
	workers  int
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithWorkers sets how many models are rendered concurrently. Values below
// one mean sequential compilation.
func WithWorkers(n int) Option {
	return func(c *Compiler) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithRenderer replaces the default text/template renderer.
func WithRenderer(r render.Renderer) Option {
	return func(c *Compiler) { c.renderer = r }
}

// New creates a Compiler for p that builds statements with a.
func New(p *project.Project, a adapter.Adapter, opts ...Option) *Compiler {
	c := &Compiler{
		project:  p,
		adapter:  a,
		renderer: render.New(),
		workers:  1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result summarizes a compilation run.
type Result struct {
	// Models and Analyses count the templates that produced an output file.
	Models   int
	Analyses int
	// Graph is the persisted model graph; GraphPath is where it was written.
	Graph     *linker.Linker
	GraphPath string
}

// GraphFileName is the model graph file name for an adapter label.
func GraphFileName(label string) string {
	return fmt.Sprintf("graph-%s.yml", label)
}

// GraphPath is where Compile persists the model graph for this compiler.
func (c *Compiler) GraphPath() string {
	return filepath.Join(c.project.TargetDir(), GraphFileName(c.adapter.Label()))
}

// Compile runs the whole pipeline: discover models from the project and its
// dependency projects, check name uniqueness, compile every model into one
// graph and persist it, then compile the project's analyses against a
// separate graph. Any error aborts the run; the graph is only written when
// every model compiled.
func (c *Compiler) Compile(ctx context.Context) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := c.initialize(); err != nil {
		return Result{}, err
	}

	models, err := c.modelSources(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := ValidateUnique(models); err != nil {
		return Result{}, err
	}
	ix := NewIndex(models)
	logger.Debug("Model pool ready.", "count", len(models))

	modelGraph := linker.New()
	compiledModels, err := c.compileAll(ctx, modelGraph, models, ix)
	if err != nil {
		return Result{}, err
	}

	graphPath := c.GraphPath()
	if err := modelGraph.WriteFile(graphPath); err != nil {
		return Result{}, err
	}
	logger.Debug("Model graph written.", "path", graphPath, "nodes", modelGraph.Len())

	analyses, err := source.DiscoverAnalyses(ctx, c.project)
	if err != nil {
		return Result{}, err
	}
	compiledAnalyses, err := c.compileAll(ctx, linker.New(), analyses, ix)
	if err != nil {
		return Result{}, err
	}

	logger.Info("Compilation finished.", "models", compiledModels, "analyses", compiledAnalyses, "adapter", c.adapter.Label())
	return Result{
		Models:    compiledModels,
		Analyses:  compiledAnalyses,
		Graph:     modelGraph,
		GraphPath: graphPath,
	}, nil
}

// initialize makes sure the target and modules directories exist.
func (c *Compiler) initialize() error {
	if err := fsutil.EnsureDir(c.project.TargetDir()); err != nil {
		return err
	}
	return fsutil.EnsureDir(c.project.ModulesDir())
}

// modelSources returns the project's models followed by those of every
// dependency project, in module directory order.
func (c *Compiler) modelSources(ctx context.Context) ([]*source.Model, error) {
	models, err := source.DiscoverModels(ctx, c.project)
	if err != nil {
		return nil, err
	}

	deps, err := c.project.DependencyProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, dep := range deps {
		depModels, err := source.DiscoverModels(ctx, dep)
		if err != nil {
			return nil, err
		}
		models = append(models, depModels...)
	}
	return models, nil
}

// compileAll compiles models against l using up to c.workers goroutines and
// returns how many produced output. The first error cancels the rest.
func (c *Compiler) compileAll(ctx context.Context, l *linker.Linker, models []*source.Model, ix *Index) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	var compiled atomic.Int64
	for _, m := range models {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := c.compileOne(gctx, l, m, ix)
			if err != nil {
				return err
			}
			if ok {
				compiled.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(compiled.Load()), nil
}
