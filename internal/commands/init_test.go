package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybridge/tallybridge/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Pvt Ltd"))

	for _, d := range []string{"source", "output", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, "migration.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Pvt Ltd", cfg.Company.Name)
	assert.Equal(t, 0.01, cfg.Balance.Epsilon)
}

func TestRunInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Pvt Ltd"))

	err := runInit(dir, "Other Co")
	assert.Error(t, err)
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "tallybridge", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["init"])
	assert.True(t, names["migrate"])
}
