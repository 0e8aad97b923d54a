package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRender_DataAndFuncs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, dir, "orders.sql", `select * from {{ quote .env.schema }}.{{ upper "raw" }} where d > {{ literal .var.start }}`)
	rc := NewContext()
	rc.Data["env"] = map[string]any{"schema": "analytics"}
	rc.Data["var"] = map[string]any{"start": "2024-01-01"}

	// --- Act ---
	out, err := New().Render(dir, "orders.sql", rc)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, `select * from "analytics".RAW where d > '2024-01-01'`, out)
}

func TestRender_Include(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "macros/cols.sql", `id, {{ .env.schema }}_name`)
	writeFile(t, dir, "models/users.sql", `select {{ include "macros/cols.sql" }} from users`)
	rc := NewContext()
	rc.Data["env"] = map[string]any{"schema": "s"}

	out, err := New().Render(dir, "models/users.sql", rc)
	require.NoError(t, err)
	assert.Equal(t, `select id, s_name from users`, out)
}

func TestRender_IncludeErrors(t *testing.T) {
	t.Parallel()

	t.Run("escaping base dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "m.sql", `{{ include "../secret.sql" }}`)
		_, err := New().Render(dir, "m.sql", NewContext())
		assert.ErrorContains(t, err, "escapes")
	})

	t.Run("self include", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "loop.sql", `{{ include "loop.sql" }}`)
		_, err := New().Render(dir, "loop.sql", NewContext())
		assert.ErrorContains(t, err, "include depth")
	})

	t.Run("missing fragment", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "m.sql", `{{ include "nope.sql" }}`)
		_, err := New().Render(dir, "m.sql", NewContext())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRender_FuncErrorIsWrapped(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	dir := t.TempDir()
	writeFile(t, dir, "m.sql", `{{ fail }}`)
	rc := NewContext()
	rc.Funcs["fail"] = func() (string, error) { return "", sentinel }

	_, err := New().Render(dir, "m.sql", rc)
	assert.ErrorIs(t, err, sentinel)
}

func TestRender_MissingKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "m.sql", `{{ .var.nope }}`)
	rc := NewContext()
	rc.Data["var"] = map[string]any{}

	_, err := New().Render(dir, "m.sql", rc)
	assert.ErrorContains(t, err, "nope")
}

func TestRender_ParseError(t *testing.T) {
	t.Parallel()

	_, err := New().RenderString(t.TempDir(), "bad", `{{ if }}`, NewContext())
	assert.ErrorContains(t, err, "parsing template")
}

func TestContext_CloneAndLookup(t *testing.T) {
	t.Parallel()

	base := NewContext()
	base.Data["env"] = map[string]any{"schema": "a"}

	clone := base.Clone()
	clone.Data["extra"] = 1
	clone.Funcs["ref"] = func() string { return "" }

	_, ok := base.Data["extra"]
	assert.False(t, ok)
	_, ok = base.Funcs["ref"]
	assert.False(t, ok)

	schema, ok := clone.LookupString("env", "schema")
	assert.True(t, ok)
	assert.Equal(t, "a", schema)

	_, ok = clone.Lookup("env", "missing")
	assert.False(t, ok)
	_, ok = clone.LookupString("extra")
	assert.False(t, ok)
}

func TestRender_DefaultFilter(t *testing.T) {
	t.Parallel()

	rc := NewContext()
	rc.Data["var"] = map[string]any{"empty": "", "set": 3}

	out, err := New().RenderString(t.TempDir(), "inline", `{{ .var.empty | default "none" }}/{{ .var.set | default 1 }}`, rc)

	require.NoError(t, err)
	assert.Equal(t, "none/3", out)
}
