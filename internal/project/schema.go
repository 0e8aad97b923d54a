package project

import (
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the HCL shape of project.hcl.
type fileRoot struct {
	Name          string        `hcl:"name"`
	Version       string        `hcl:"version,optional"`
	SourcePaths   []string      `hcl:"source_paths,optional"`
	AnalysisPaths []string      `hcl:"analysis_paths,optional"`
	TargetPath    string        `hcl:"target_path,optional"`
	ModulesPath   string        `hcl:"modules_path,optional"`
	Schema        string        `hcl:"schema,optional"`
	Vars          cty.Value     `hcl:"vars,optional"`
	Models        []*modelBlock `hcl:"model,block"`
}

// modelBlock configures every model whose FQN starts with Path.
type modelBlock struct {
	Path         string  `hcl:"path,label"`
	Enabled      *bool   `hcl:"enabled,optional"`
	Materialized *string `hcl:"materialized,optional"`
}

// Defaults applied when project.hcl leaves an option out.
const (
	defaultSourcePath  = "models"
	defaultTargetPath  = "target"
	defaultModulesPath = "modules"
)
