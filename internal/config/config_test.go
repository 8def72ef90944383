package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebtf/gormguide/internal/guide"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guidelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "explicit missing config file should fail")

	// Implicit lookup of .guidelint.yaml in a directory without one
	// falls back to defaults.
	t.Chdir(t.TempDir())
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/performance.md"}, cfg.Files)
	assert.Equal(t, "go", cfg.FenceLanguage)
	assert.Equal(t, 2, cfg.BlocksPerSection)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "files:\n  - a.md\n  - b.md\nblocks_per_section: 3\ndisabled_rules:\n  - toc-empty\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md"}, cfg.Files)
	assert.Equal(t, 3, cfg.BlocksPerSection)
	assert.Equal(t, "go", cfg.FenceLanguage, "unset keys keep defaults")

	rules := cfg.Rules()
	assert.Equal(t, 3, rules.BlocksPerSection)
	_, disabled := rules.Disabled[guide.RuleTOCEmpty]
	assert.True(t, disabled)
}

func TestLoad_EnvOverridesFiles(t *testing.T) {
	path := writeConfig(t, "files:\n  - a.md\n")
	t.Setenv(EnvFiles, "x.md, y.md")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"x.md", "y.md"}, cfg.Files)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown disabled rule", "files:\n  - a.md\ndisabled_rules:\n  - no-such-rule\n"},
		{"zero blocks per section", "files:\n  - a.md\nblocks_per_section: 0\n"},
		{"empty file list", "files: []\n"},
		{"malformed yaml", "files: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
