// Package config loads guidelint configuration: defaults, then the
// .guidelint.yaml file if present, then environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thebtf/gormguide/internal/guide"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = ".guidelint.yaml"

// EnvFiles overrides the lint targets with a comma-separated path list.
const EnvFiles = "GUIDELINT_FILES"

// Config holds the guidelint configuration.
type Config struct {
	Files            []string `yaml:"files"`
	FenceLanguage    string   `yaml:"fence_language"`
	BlocksPerSection int      `yaml:"blocks_per_section"`
	DisabledRules    []string `yaml:"disabled_rules"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Files:            []string{"docs/performance.md"},
		FenceLanguage:    "go",
		BlocksPerSection: 2,
	}
}

// Load builds the effective configuration. path selects the YAML file; when
// empty, DefaultConfigFile is tried and allowed to be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if files := os.Getenv(EnvFiles); files != "" {
		cfg.Files = nil
		for _, f := range strings.Split(files, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.Files = append(cfg.Files, f)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BlocksPerSection < 1 {
		return fmt.Errorf("blocks_per_section must be at least 1, got %d", c.BlocksPerSection)
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("no guide files configured")
	}
	known := map[string]struct{}{}
	for _, r := range guide.AllRules() {
		known[r] = struct{}{}
	}
	for _, r := range c.DisabledRules {
		if _, ok := known[r]; !ok {
			return fmt.Errorf("unknown rule %q in disabled_rules", r)
		}
	}
	return nil
}

// Rules converts the configuration into the lint rule set.
func (c Config) Rules() guide.Rules {
	rules := guide.Rules{
		FenceLanguage:    c.FenceLanguage,
		BlocksPerSection: c.BlocksPerSection,
	}
	if len(c.DisabledRules) > 0 {
		rules.Disabled = make(map[string]struct{}, len(c.DisabledRules))
		for _, r := range c.DisabledRules {
			rules.Disabled[r] = struct{}{}
		}
	}
	return rules
}
