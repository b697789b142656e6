package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupChimeHome points CHIME_HOME at a temp directory for the test.
func setupChimeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("CHIME_HOME", home)
	return home
}

func writeSettings(t *testing.T, home, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	setupChimeHome(t)

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.NotNil(t, settings)
	assert.Nil(t, settings.Debug)
	assert.Empty(t, settings.DefaultSound)
	assert.False(t, settings.Muted())
}

func TestLoadSettingsFull(t *testing.T) {
	home := setupChimeHome(t)
	writeSettings(t, home, `{
		"debug": true,
		"default_sound": "success",
		"max_log_files": 10,
		"mute": true
	}`)

	settings, err := LoadSettings()

	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.Equal(t, "success", settings.DefaultSound)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 10, *settings.MaxLogFiles)
	assert.True(t, settings.Muted())
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	home := setupChimeHome(t)
	writeSettings(t, home, `{not json`)

	_, err := LoadSettings()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestMutedNilReceiverAndUnset(t *testing.T) {
	var nilSettings *Settings
	assert.False(t, nilSettings.Muted())
	assert.False(t, (&Settings{}).Muted())

	muted := true
	assert.True(t, (&Settings{Mute: &muted}).Muted())
}
