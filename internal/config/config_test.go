package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raven-computing/reckon/internal/types"
)

func TestLoadMissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.False(t, cfg.StopOnError)
	assert.Empty(t, cfg.Exclude)
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".scount.toml")
	content := `
stop_on_error = true
format = "json"
operations = ["llc", "phl"]
exclude = ["vendor/**", "**/*.min.js"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.StopOnError)
	assert.Equal(t, "json", cfg.ReportFormat)
	assert.Equal(t, []string{"llc", "phl"}, cfg.Operations)
	assert.Equal(t, []string{"vendor/**", "**/*.min.js"}, cfg.Exclude)
}

func TestOperationMask(t *testing.T) {
	cfg := &Config{Operations: []string{"llc", "wrd"}}
	mask, err := cfg.OperationMask()
	require.NoError(t, err)
	assert.Equal(t, types.OptCountLogicalLines|types.OptCountWords, mask)

	// An empty list is the all-operations sentinel.
	mask, err = (&Config{}).OperationMask()
	require.NoError(t, err)
	assert.Zero(t, mask)

	_, err = (&Config{Operations: []string{"bogus"}}).OperationMask()
	assert.Error(t, err)
}

func TestFormatMask(t *testing.T) {
	cfg := &Config{Formats: []string{"c", "md"}}
	mask, err := cfg.FormatMask()
	require.NoError(t, err)
	assert.Equal(t, types.MakeFormatOption(types.LangC)|types.MakeFormatOption(types.Markdown), mask)

	_, err = (&Config{Formats: []string{"rs"}}).FormatMask()
	assert.Error(t, err)
}
