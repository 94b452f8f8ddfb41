package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var config Config
	require.NoError(t, v.Unmarshal(&config))

	assert.Equal(t, "blockpress.db", config.Database.Path)
	assert.Equal(t, 300, config.Sync.IntervalSeconds)
	assert.True(t, config.Sync.CheckOnStartup)
	assert.Equal(t, "Untitled", config.Editor.DefaultTitle)
	assert.Equal(t, 2, config.Editor.DefaultHeadingLevel)
	assert.False(t, config.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := `
[site]
base_url = "https://blog.example.com/api"
username = "editor"

[database]
path = "/tmp/library.db"

[sync]
interval_seconds = 60
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	config, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://blog.example.com/api", config.Site.BaseURL)
	assert.Equal(t, "editor", config.Site.Username)
	assert.Equal(t, "/tmp/library.db", config.Database.Path)
	assert.Equal(t, 60, config.Sync.IntervalSeconds)

	// Untouched keys keep their defaults.
	assert.Equal(t, "Untitled", config.Editor.DefaultTitle)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestCreateBackupRotation(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	// No file yet: backup is a no-op.
	require.NoError(t, createBackup(configPath))
	assert.NoFileExists(t, configPath+".back1")

	for i, content := range []string{"gen = 1", "gen = 2", "gen = 3", "gen = 4"} {
		require.NoError(t, os.WriteFile(configPath, []byte(content), 0644), "write %d", i)
		require.NoError(t, createBackup(configPath))
	}

	// Newest backup holds the latest content, oldest rolled off.
	back1, err := os.ReadFile(configPath + ".back1")
	require.NoError(t, err)
	assert.Equal(t, "gen = 4", string(back1))

	back3, err := os.ReadFile(configPath + ".back3")
	require.NoError(t, err)
	assert.Equal(t, "gen = 2", string(back3))
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/home/u/.blockpress/config.toml.back1"))
	assert.True(t, isBackupFile("config.toml.back3"))
	assert.False(t, isBackupFile("config.toml"))
	assert.False(t, isBackupFile("blockpress.toml"))
}
