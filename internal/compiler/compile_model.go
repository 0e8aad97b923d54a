package compiler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/modelforge/internal/ctxlog"
	"github.com/vk/modelforge/internal/fsutil"
	"github.com/vk/modelforge/internal/linker"
	"github.com/vk/modelforge/internal/source"
)

// compileOne renders m, builds its statement and writes it below the
// target directory. It reports whether a file was written.
//
// A disabled model returns before touching the graph. Otherwise the model's
// node and any edges its references create stay in l even when the adapter
// declines to emit a statement.
func (c *Compiler) compileOne(ctx context.Context, l *linker.Linker, m *source.Model, ix *Index) (bool, error) {
	logger := ctxlog.FromContext(ctx).With("kind", m.Kind.String(), "fqn", m.FQN.String())

	cfg := m.Config(c.project)
	if !cfg.Enabled {
		logger.Debug("Skipping disabled model.")
		return false, nil
	}

	rc := c.project.Context()
	rc.Data["env"].(map[string]any)["target"] = c.adapter.Label()
	schema, _ := rc.LookupString("env", "schema")
	rc.Funcs["ref"] = newResolver(l, ix, m, c.adapter, schema).templateFunc()

	rendered, err := c.renderer.Render(m.TopDir, m.RelPath, rc)
	if err != nil {
		return false, fmt.Errorf("compiling %s %s: %w", m.Kind, m.FQN, err)
	}

	stmt, ok := m.Compile(rendered, c.project, c.adapter)
	if !ok {
		logger.Debug("No statement produced.", "materialized", string(cfg.Materialized))
		return false, nil
	}

	path := filepath.Join(c.project.TargetDir(), m.BuildPath(c.adapter))
	if err := fsutil.WriteFile(path, []byte(stmt)); err != nil {
		return false, err
	}
	logger.Info("Compiled.", "path", path)
	return true, nil
}
