package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	d := Defaults()
	require.NoError(t, d.Validate())
	assert.Equal(t, 2025, d.Seed.DefaultYear)
	assert.Equal(t, 4, d.TVMaze.Concurrency)
	assert.Equal(t, 300*time.Millisecond, d.TVMaze.Delay)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showrank.yaml")
	yamlContent := `
database:
  path: ` + filepath.Join(dir, "test.db") + `
seed:
  shows_csv: in/shows.csv
  default_year: 2026
tvmaze:
  delay: 1s
  concurrency: 2
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "test.db"), cfg.Database.Path)
	assert.Equal(t, "in/shows.csv", cfg.Seed.ShowsCSV)
	assert.Equal(t, 2026, cfg.Seed.DefaultYear)
	assert.Equal(t, time.Second, cfg.TVMaze.Delay)
	assert.Equal(t, 2, cfg.TVMaze.Concurrency)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "data/rankings.yaml", cfg.Rankings.Path)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  addr: \":7000\"\n"), 0o644))

	t.Setenv("SHOWRANK_HTTP_ADDR", ":7777")
	t.Setenv("SHOWRANK_TVMAZE_CONCURRENCY", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.HTTP.Addr)
	assert.Equal(t, 8, cfg.TVMaze.Concurrency)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showrank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed:\n  default_year: 1999\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_year")
}
