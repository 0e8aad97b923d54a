package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/vk/modelforge/internal/compiler"
	"github.com/vk/modelforge/internal/ctxlog"
	"github.com/vk/modelforge/internal/linker"
	"github.com/vk/modelforge/internal/nodeid"
	"github.com/vk/modelforge/internal/project"
)

// Run executes the main application logic based on the App's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p, err := project.Load(ctx, a.config.ProjectDir)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	if a.config.Schema != "" {
		a.logger.Debug("Overriding project schema.", "from", p.Schema, "to", a.config.Schema)
		p.Schema = a.config.Schema
	}

	if a.config.Order {
		return a.printOrder(p)
	}
	return a.compile(ctx, p)
}

func (a *App) compile(ctx context.Context, p *project.Project) error {
	a.logger.Info("Compiling project.", "project", p.Name, "adapter", a.adapter().Label(), "workers", a.config.WorkerCount)

	c := compiler.New(p, a.adapter(), compiler.WithWorkers(a.config.WorkerCount))
	res, err := c.Compile(ctx)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	if a.config.LogFormat == "text" {
		a.printSummary(res)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// printSummary writes a one-line human summary of a compilation.
func (a *App) printSummary(res compiler.Result) {
	ok := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)

	ok.Fprint(a.outW, "Done.")
	fmt.Fprintf(a.outW, " %d models, %d analyses compiled. ", res.Models, res.Analyses)
	dim.Fprintf(a.outW, "graph: %s\n", res.GraphPath)
}

// printOrder reads the graph persisted by a previous compilation and writes
// one node id per line in dependency order.
func (a *App) printOrder(p *project.Project) error {
	path := filepath.Join(p.TargetDir(), compiler.GraphFileName(a.adapter().Label()))
	a.logger.Debug("Reading model graph.", "path", path)

	g, err := linker.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read model graph: %w", err)
	}

	subset := make([]nodeid.FQN, 0, len(a.config.Select))
	for _, id := range a.config.Select {
		fqn, err := nodeid.Parse(id)
		if err != nil {
			return err
		}
		subset = append(subset, fqn)
	}

	order, err := g.TopologicalOrder(subset...)
	if err != nil {
		return fmt.Errorf("failed to order model graph: %w", err)
	}
	for _, id := range order {
		fmt.Fprintln(a.outW, id.String())
	}
	a.logger.Debug("Order printed.", "nodes", len(order))
	return nil
}
