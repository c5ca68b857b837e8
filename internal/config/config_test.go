package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "migration.yaml")

	cfg := Default("Acme Pvt Ltd")
	cfg.GroupMap = map[string]string{"Cryptocurrency": "Investments"}
	cfg.LedgersMap = map[string]string{"round_off": "Rounding Difference"}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Acme Pvt Ltd", loaded.Company.Name)
	assert.Equal(t, "Rupees", loaded.Company.CurrencyName)
	assert.Equal(t, "source", loaded.Dirs.Source)
	assert.Equal(t, "output", loaded.Dirs.Output)
	assert.Equal(t, 0.01, loaded.Balance.Epsilon)
	assert.Equal(t, "Investments", loaded.GroupMap["Cryptocurrency"])
	assert.Equal(t, "Rounding Difference", loaded.LedgersMap["round_off"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EpsilonDefaultsWhenUnset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "migration.yaml")
	yaml := "company:\n  name: Acme\ndirs:\n  source: source\n  output: output\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Balance.Epsilon)
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "migration.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
