package toonconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madskristensen/toon/internal/toonconfig"
	"github.com/madskristensen/toon/pkg/toon"
)

// withTempWorkdir chdirs into a fresh temp directory for the duration
// of the test, restoring the original working directory on cleanup.
func withTempWorkdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return dir
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	withTempWorkdir(t)

	cfg, err := toonconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, 65536, cfg.MaxStringLength)
	assert.Equal(t, 100, cfg.MaxNestingDepth)
	assert.Equal(t, "comma", cfg.Encode.Delimiter)
	assert.True(t, cfg.Encode.PreferTables)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := withTempWorkdir(t)

	content := "max_nesting_depth: 10\nencode:\n  delimiter: pipe\n  indent_width: 4\n  prefer_tables: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".toon.yml"), []byte(content), 0o644))

	cfg, err := toonconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxNestingDepth)
	assert.Equal(t, "pipe", cfg.Encode.Delimiter)
	assert.Equal(t, 4, cfg.Encode.IndentWidth)
	assert.False(t, cfg.Encode.PreferTables)
}

func TestConfig_EncodeOptions(t *testing.T) {
	cfg := &toonconfig.Config{
		Encode: toonconfig.EncodeConfig{IndentWidth: 4, Delimiter: "tab", PreferTables: false},
	}
	opts := cfg.EncodeOptions()
	assert.Equal(t, 4, opts.IndentWidth)
	assert.False(t, opts.PreferTables)
	assert.Equal(t, toon.TabDelimiter, opts.Delimiter)
}

func TestConfig_ParseOptions(t *testing.T) {
	cfg := &toonconfig.Config{MaxStringLength: 100, MaxTokenCount: 200, MaxNestingDepth: 5, MaxArraySize: 50}
	opts := cfg.ParseOptions()
	assert.Equal(t, 100, opts.MaxStringLength)
	assert.Equal(t, 5, opts.MaxNestingDepth)
}

func TestInProject(t *testing.T) {
	dir := withTempWorkdir(t)
	assert.False(t, toonconfig.InProject())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".toon.yml"), []byte("max_nesting_depth: 10\n"), 0o644))
	assert.True(t, toonconfig.InProject())
}
