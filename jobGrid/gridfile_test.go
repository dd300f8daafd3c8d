package jobGrid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGrid(t *testing.T) {
	grid, err := DefaultGrid(Config{DataDir: "/data", ConfigDir: "/cfg"})
	require.NoError(t, err)

	assert.Equal(t, 90000, grid.Config.SeedOffset)
	assert.Equal(t, 30, grid.Config.Replicates)
	assert.Equal(t, "avidagp-ec", grid.Config.Executable)
	//fields not in the settings block are kept
	assert.Equal(t, "/data", grid.Config.DataDir)
	assert.Equal(t, "/cfg", grid.Config.ConfigDir)

	params := grid.Registry.Params()
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
		assert.Equal(t, Flagged, p.Kind)
	}
	assert.Equal(t, []string{
		"POP_SIZE", "GENS", "ANCESTOR_FILE", "OUTPUT_RESOLUTION",
		"SNAPSHOT_RESOLUTION", "EVAL_STEPS", "SELECTION_METHOD", "AVIDAGP_ENV_FILE",
	}, names)
	assert.Equal(t, 6, grid.Registry.Count())
}

func TestParseGrid(t *testing.T) {
	t.Setenv("DEVOTOOLS_TEST_ACCOUNT", "evolab")
	src := []byte(`
settings {
  replicates = 5
  account    = env.DEVOTOOLS_TEST_ACCOUNT
}

param "MUT_RATE" {
  values = [0.01, 0.1]
}

param "EXTRA" {
  values   = ["-A 1 -B 2"]
  verbatim = true
}
`)
	base := DefaultConfig()
	grid, err := ParseGrid(src, "test.hcl", base)
	require.NoError(t, err)

	assert.Equal(t, 5, grid.Config.Replicates)
	assert.Equal(t, "evolab", grid.Config.Account)
	assert.Equal(t, base.SeedOffset, grid.Config.SeedOffset)

	params := grid.Registry.Params()
	require.Len(t, params, 2)
	assert.Equal(t, []string{"0.01", "0.1"}, params[0].Values)
	assert.Equal(t, Verbatim, params[1].Kind)

	combos, err := grid.Registry.Combinations()
	require.NoError(t, err)
	require.Len(t, combos, 2)
	assert.Equal(t, "-MUT_RATE 0.1 -A 1 -B 2", combos[1].CommandLine())
}

func TestParseGrid_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax error", src: `param "A" {`},
		{name: "missing values", src: `param "A" {}`},
		{name: "duplicate param", src: "param \"A\" {\n values = [\"1\"]\n}\nparam \"A\" {\n values = [\"2\"]\n}\n"},
		{name: "unknown setting", src: "settings {\n colour = \"red\"\n}\n"},
		{name: "unknown env var", src: "param \"A\" {\n values = [env.DEVOTOOLS_SURELY_UNSET_VARIABLE]\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid([]byte(tt.src), "test.hcl", DefaultConfig())
			assert.Error(t, err)
		})
	}
}

func TestLoadGridFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.hcl")
	require.NoError(t, os.WriteFile(path, []byte("param \"A\" {\n values = [\"x\", \"y\"]\n}\n"), 0o644))

	grid, err := LoadGridFile(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Registry.Count())

	_, err = LoadGridFile(filepath.Join(t.TempDir(), "missing.hcl"), DefaultConfig())
	assert.Error(t, err)
}
