package jobGrid

import (
	_ "embed"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
)

//go:embed defaults/grid.hcl
var defaultGrid []byte

//go:embed defaults/base_script.sb
var defaultTemplate string

//DefaultTemplate returns the built-in SLURM submission template
func DefaultTemplate() string {
	return defaultTemplate
}

//hclGridFile is the top-level structure of a grid file
type hclGridFile struct {
	Settings *hclSettings `hcl:"settings,block"`
	Params   []*hclParam  `hcl:"param,block"`
}

//hclSettings overrides fields of the Config passed to the loader, unset attributes keep their value
type hclSettings struct {
	SeedOffset    *int    `hcl:"seed_offset,optional"`
	Replicates    *int    `hcl:"replicates,optional"`
	TimeRequest   *string `hcl:"time_request,optional"`
	MemoryRequest *string `hcl:"memory_request,optional"`
	Account       *string `hcl:"account,optional"`
	JobNamePrefix *string `hcl:"job_name_prefix,optional"`
	CPUsPerNode   *int    `hcl:"cpus_per_node,optional"`
	Executable    *string `hcl:"executable,optional"`
}

type hclParam struct {
	Name     string   `hcl:"name,label"`
	Values   []string `hcl:"values"`
	Verbatim bool     `hcl:"verbatim,optional"`
}

//Grid is a decoded grid file
type Grid struct {
	Registry *Registry
	Config   Config
}

//envContext exposes the process environment as env.<NAME> to grid file expressions
func envContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

//decodeGrid builds a Grid from a parsed file, starting from base
func decodeGrid(file *hcl.File, filename string, base Config) (*Grid, error) {
	var parsed hclGridFile
	if diags := gohcl.DecodeBody(file.Body, envContext(), &parsed); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode grid file %s", filename)
	}

	config := base
	if s := parsed.Settings; s != nil {
		apply(&config.SeedOffset, s.SeedOffset)
		apply(&config.Replicates, s.Replicates)
		apply(&config.TimeRequest, s.TimeRequest)
		apply(&config.MemoryRequest, s.MemoryRequest)
		apply(&config.Account, s.Account)
		apply(&config.JobNamePrefix, s.JobNamePrefix)
		apply(&config.CPUsPerNode, s.CPUsPerNode)
		apply(&config.Executable, s.Executable)
	}

	registry := NewRegistry()
	for _, p := range parsed.Params {
		register := registry.Register
		if p.Verbatim {
			register = registry.RegisterVerbatim
		}
		if err := register(p.Name); err != nil {
			return nil, errors.Wrapf(err, "grid file %s", filename)
		}
		if err := registry.AddValues(p.Name, p.Values...); err != nil {
			return nil, errors.Wrapf(err, "grid file %s", filename)
		}
	}
	return &Grid{Registry: registry, Config: config}, nil
}

//ParseGrid decodes grid file content. filename is only used in diagnostics
func ParseGrid(src []byte, filename string, base Config) (*Grid, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse grid file %s", filename)
	}
	return decodeGrid(file, filename, base)
}

//LoadGridFile reads and decodes the grid file at path
func LoadGridFile(path string, base Config) (*Grid, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse grid file %s", path)
	}
	return decodeGrid(file, path, base)
}

//DefaultGrid returns the built-in grid of the 2021-11-15 experiment
func DefaultGrid(base Config) (*Grid, error) {
	return ParseGrid(defaultGrid, "defaults/grid.hcl", base)
}
