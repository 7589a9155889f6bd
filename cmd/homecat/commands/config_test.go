package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIConfig_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("missing file yields a zero config", func(t *testing.T) {
		config, err := loadCLIConfig()
		require.NoError(t, err)
		assert.Empty(t, config.API)
		assert.Empty(t, config.Token)
	})

	t.Run("saved values survive a reload", func(t *testing.T) {
		config := &CLIConfig{
			API:    "http://catalog.internal",
			Token:  "tok-1",
			Output: "yaml",
		}
		require.NoError(t, saveCLIConfig(config))

		reloaded, err := loadCLIConfig()
		require.NoError(t, err)
		assert.Equal(t, config, reloaded)
	})

	t.Run("config file is private", func(t *testing.T) {
		path, err := configFilePath()
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
		assert.Equal(t, "config.yml", filepath.Base(path))
	})
}
