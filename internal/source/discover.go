package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/modelforge/internal/ctxlog"
	"github.com/vk/modelforge/internal/fsutil"
	"github.com/vk/modelforge/internal/nodeid"
	"github.com/vk/modelforge/internal/project"
)

// DiscoverModels returns the models found in p's source paths.
func DiscoverModels(ctx context.Context, p *project.Project) ([]*Model, error) {
	return Discover(ctx, p, KindModel, p.SourceDirs())
}

// DiscoverAnalyses returns the analyses found in p's analysis paths.
func DiscoverAnalyses(ctx context.Context, p *project.Project) ([]*Model, error) {
	return Discover(ctx, p, KindAnalysis, p.AnalysisDirs())
}

// Discover walks each directory in dirs and describes every template found.
// Results follow the order of dirs, then lexical path order. Missing
// directories are skipped.
func Discover(ctx context.Context, p *project.Project, kind Kind, dirs []string) ([]*Model, error) {
	logger := ctxlog.FromContext(ctx)

	var models []*Model
	for _, dir := range dirs {
		files, err := fsutil.FindFilesByExtension(dir, TemplateExt)
		if err != nil {
			return nil, fmt.Errorf("discovering %s templates in %s: %w", kind, dir, err)
		}
		for _, file := range files {
			m, err := describe(p, kind, dir, file)
			if err != nil {
				return nil, err
			}
			models = append(models, m)
		}
	}

	logger.Debug("Templates discovered.", "project", p.Name, "kind", kind.String(), "count", len(models))
	return models, nil
}

func describe(p *project.Project, kind Kind, topDir, file string) (*Model, error) {
	rel, err := filepath.Rel(topDir, file)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	segments := strings.Split(strings.TrimSuffix(rel, TemplateExt), "/")
	fqn := nodeid.New(append([]string{p.Name}, segments...)...)
	for _, s := range segments {
		if !nodeid.ValidSegment(s) {
			return nil, fmt.Errorf("%s %s: %q is not a valid name segment", kind, file, s)
		}
	}

	return &Model{
		Kind:    kind,
		Name:    fqn.Name(),
		FQN:     fqn,
		Project: p,
		TopDir:  topDir,
		RelPath: rel,
	}, nil
}
