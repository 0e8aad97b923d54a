package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	valid := Config{ProjectDir: ".", WorkerCount: 1}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing project dir", mutate: func(c *Config) { c.ProjectDir = "" }, wantErr: "ProjectDir"},
		{name: "zero workers", mutate: func(c *Config) { c.WorkerCount = 0 }, wantErr: "WorkerCount"},
		{name: "select without order", mutate: func(c *Config) { c.Select = []string{"a.b"} }, wantErr: "Order"},
		{
			name:    "invalid select id",
			mutate:  func(c *Config) { c.Order = true; c.Select = []string{"a..b"} },
			wantErr: "invalid Select entry",
		},
		{
			name:   "order with select",
			mutate: func(c *Config) { c.Order = true; c.Select = []string{"shop.orders"} },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			got, err := NewConfig(cfg)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}
