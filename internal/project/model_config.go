package project

import (
	"fmt"
	"slices"

	"github.com/vk/modelforge/internal/nodeid"
)

// Materialization selects how a model's statement is built.
type Materialization string

const (
	View      Materialization = "view"
	Table     Materialization = "table"
	Ephemeral Materialization = "ephemeral"
)

func parseMaterialization(s string) (Materialization, error) {
	switch m := Materialization(s); m {
	case View, Table, Ephemeral:
		return m, nil
	default:
		return "", fmt.Errorf("unknown materialization %q: must be one of view, table, ephemeral", s)
	}
}

// ModelConfig is the effective configuration of a single model.
type ModelConfig struct {
	Enabled      bool
	Materialized Materialization
}

// DefaultModelConfig is the configuration of a model no block mentions.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{Enabled: true, Materialized: View}
}

// ModelConfig resolves the configuration for the model identified by fqn,
// which belongs to p. Blocks whose path prefixes fqn apply from the
// shortest to the longest; p's blocks apply first, then root's, so the
// active project always has the last word. root may be nil or p itself.
func (p *Project) ModelConfig(fqn nodeid.FQN, root *Project) ModelConfig {
	cfg := DefaultModelConfig()
	p.applyModelBlocks(fqn, &cfg)
	if root != nil && root != p {
		root.applyModelBlocks(fqn, &cfg)
	}
	return cfg
}

func (p *Project) applyModelBlocks(fqn nodeid.FQN, cfg *ModelConfig) {
	var matching []modelBlockConfig
	for _, b := range p.models {
		if fqn.HasPrefix(b.path) {
			matching = append(matching, b)
		}
	}
	slices.SortStableFunc(matching, func(a, b modelBlockConfig) int {
		return len(a.path) - len(b.path)
	})

	for _, b := range matching {
		if b.enabled != nil {
			cfg.Enabled = *b.enabled
		}
		if b.materialized != nil {
			cfg.Materialized = *b.materialized
		}
	}
}
