package render

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// defaultMaxIncludeDepth bounds nested includes so a fragment that includes
// itself fails instead of recursing forever.
const defaultMaxIncludeDepth = 16

// Renderer renders the template at relPath below baseDir against rc.
type Renderer interface {
	Render(baseDir, relPath string, rc Context) (string, error)
}

// TemplateRenderer is the text/template implementation of Renderer.
type TemplateRenderer struct {
	maxIncludeDepth int
}

// New creates a TemplateRenderer.
func New() *TemplateRenderer {
	return &TemplateRenderer{maxIncludeDepth: defaultMaxIncludeDepth}
}

// Render implements Renderer.
func (r *TemplateRenderer) Render(baseDir, relPath string, rc Context) (string, error) {
	return r.render(baseDir, relPath, rc, 0)
}

// RenderString renders an in-memory template body. Includes still resolve
// against baseDir.
func (r *TemplateRenderer) RenderString(baseDir, name, body string, rc Context) (string, error) {
	return r.execute(baseDir, name, body, rc, 0)
}

func (r *TemplateRenderer) render(baseDir, relPath string, rc Context, depth int) (string, error) {
	if depth > r.maxIncludeDepth {
		return "", fmt.Errorf("include depth exceeds %d at %s", r.maxIncludeDepth, relPath)
	}
	relPath = filepath.FromSlash(relPath)
	if !filepath.IsLocal(relPath) {
		return "", fmt.Errorf("template path %q escapes %s", relPath, baseDir)
	}

	body, err := os.ReadFile(filepath.Join(baseDir, relPath))
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	return r.execute(baseDir, filepath.ToSlash(relPath), string(body), rc, depth)
}

func (r *TemplateRenderer) execute(baseDir, name, body string, rc Context, depth int) (string, error) {
	funcs := make(template.FuncMap, len(rc.Funcs)+1)
	maps.Copy(funcs, rc.Funcs)
	funcs["include"] = func(path string) (string, error) {
		return r.render(baseDir, path, rc, depth+1)
	}

	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(body)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, rc.Data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return sb.String(), nil
}
