package registryconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFillsUnsetFieldsFromDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.hcl")
	hcl := `registry {
  config_dir = "data/my_evaluations"
  log_level  = "debug"
}`
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/my_evaluations", cfg.Registry.ConfigDir)
	assert.Equal(t, "debug", cfg.Registry.LogLevel)
	// DataDir and MaxLoaded were not set in the file, so defaults apply.
	assert.Equal(t, Default().Registry.DataDir, cfg.Registry.DataDir)
	assert.Equal(t, Default().Registry.MaxLoaded, cfg.Registry.MaxLoaded)
}

func TestLoadInvalidHCLIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.hcl")
	require.NoError(t, os.WriteFile(path, []byte("registry { config_dir = "), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
