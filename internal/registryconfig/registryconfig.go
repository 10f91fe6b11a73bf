// Package registryconfig is the ambient operational-config concern: where
// the evaluator registry looks for its evaluation-type JSON files, plus
// data_dir and max_loaded settings that are parsed and defaulted here but
// not read by the registry. It is distinct from the variant/
// eval-type wire formats (internal/rules, internal/evaluator), which stay
// JSON — this is process bootstrap, configured with HCL via
// hashicorp/hcl/v2, with a default configuration fallback when no file is
// present.
package registryconfig

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the evaluator registry's bootstrap configuration.
type Config struct {
	Registry RegistrySettings `hcl:"registry,block"`
}

// RegistrySettings names where evaluation-type configs and ranking data
// files live and how many loaded evaluators to retain. Only ConfigDir and
// LogLevel are used (by the CLI); the registry does not read DataDir or
// MaxLoaded and never evicts a loaded evaluator.
type RegistrySettings struct {
	ConfigDir string `hcl:"config_dir,optional"`
	DataDir   string `hcl:"data_dir,optional"`
	MaxLoaded int    `hcl:"max_loaded,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// Default returns a conservative configuration suitable for local use and
// tests.
func Default() *Config {
	return &Config{
		Registry: RegistrySettings{
			ConfigDir: "data/hand_evaluations",
			DataDir:   "data/hand_rankings",
			MaxLoaded: 64,
			LogLevel:  "info",
		},
	}
}

// Load reads registry bootstrap configuration from an HCL file, applying
// Default() values for anything unset. A missing file is not an error —
// the registry simply runs with defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("registryconfig: parsing %s: %s", path, diags.Error())
	}

	cfg := Config{}
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("registryconfig: decoding %s: %s", path, diags.Error())
	}

	defaults := Default()
	if cfg.Registry.ConfigDir == "" {
		cfg.Registry.ConfigDir = defaults.Registry.ConfigDir
	}
	if cfg.Registry.DataDir == "" {
		cfg.Registry.DataDir = defaults.Registry.DataDir
	}
	if cfg.Registry.MaxLoaded == 0 {
		cfg.Registry.MaxLoaded = defaults.Registry.MaxLoaded
	}
	if cfg.Registry.LogLevel == "" {
		cfg.Registry.LogLevel = defaults.Registry.LogLevel
	}
	return &cfg, nil
}
