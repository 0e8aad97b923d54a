package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modelforge/internal/nodeid"
	"github.com/vk/modelforge/internal/testutil"
)

func mustParse(t *testing.T, src string) *Project {
	t.Helper()
	ctx, _ := testutil.Context(t)
	p, err := Parse(ctx, t.TempDir(), FileName, []byte(src))
	require.NoError(t, err)
	return p
}

func TestContext(t *testing.T) {
	t.Parallel()

	p := mustParse(t, `
name    = "shop"
version = "2"
schema  = "prod"
vars    = { region = "eu" }
`)

	rc := p.Context()

	schema, ok := rc.LookupString("env", "schema")
	require.True(t, ok)
	assert.Equal(t, "prod", schema)

	name, ok := rc.LookupString("project", "name")
	require.True(t, ok)
	assert.Equal(t, "shop", name)

	region, ok := rc.LookupString("var", "region")
	require.True(t, ok)
	assert.Equal(t, "eu", region)

	assert.Contains(t, rc.Funcs, "quote")

	// Each call builds a fresh context.
	rc.Data["var"].(map[string]any)["region"] = "us"
	again, _ := p.Context().LookupString("var", "region")
	assert.Equal(t, "eu", again)
}

func TestModelConfig(t *testing.T) {
	t.Parallel()

	dep := mustParse(t, `
name = "pkg"
model "pkg" {
  materialized = "table"
}
model "pkg.legacy" {
  enabled = false
}
`)
	root := mustParse(t, `
name = "shop"
model "shop.staging.stg_orders" {
  materialized = "ephemeral"
}
model "shop.staging" {
  materialized = "table"
}
model "shop.staging.stg_old" {
  enabled = false
}
model "pkg.legacy.keep" {
  enabled = true
}
`)

	testCases := []struct {
		name  string
		owner *Project
		fqn   string
		want  ModelConfig
	}{
		{name: "defaults", owner: root, fqn: "shop.marts.orders", want: ModelConfig{Enabled: true, Materialized: View}},
		{name: "directory block", owner: root, fqn: "shop.staging.stg_users", want: ModelConfig{Enabled: true, Materialized: Table}},
		{name: "longest prefix wins regardless of file order", owner: root, fqn: "shop.staging.stg_orders", want: ModelConfig{Enabled: true, Materialized: Ephemeral}},
		{name: "disabled", owner: root, fqn: "shop.staging.stg_old", want: ModelConfig{Enabled: false, Materialized: Table}},
		{name: "dependency own config", owner: dep, fqn: "pkg.base.users", want: ModelConfig{Enabled: true, Materialized: Table}},
		{name: "dependency disables subtree", owner: dep, fqn: "pkg.legacy.old", want: ModelConfig{Enabled: false, Materialized: Table}},
		{name: "root overrides dependency", owner: dep, fqn: "pkg.legacy.keep", want: ModelConfig{Enabled: true, Materialized: Table}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := nodeid.Parse(tc.fqn)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tc.owner.ModelConfig(f, root))
		})
	}
}
