package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/journal/internal/config"
	"github.com/f3rmion/journal/internal/journal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")

	created, err := writeConfigFiles(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{config.ConfigFileName, config.PromptsFileName}, created)

	cfg, err := config.Load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, filepath.Join(dir, config.ConfigFileName), cfg.ConfigFile)
	assert.Equal(t, journal.DefaultPrompts(), cfg.Prompts)
}

func TestWriteConfigFiles_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("api_url: http://mine:1\n"), 0644))

	_, err := writeConfigFiles(dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = writeConfigFiles(dir, true)
	require.NoError(t, err)
}
