package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, 25*time.Second, cfg.BrowserConfig.NavigationTimeout.Std())
	assert.Equal(t, 5*time.Second, cfg.BrowserConfig.SettleDelay.Std())
	assert.True(t, cfg.BrowserConfig.Headless)
	assert.Equal(t, []string{"Image", "Font", "Stylesheet"}, cfg.BrowserConfig.BlockedResourceTypes)
	assert.Equal(t, []string{"data-src", "data-url", "data-stream", "data-file", "src"}, cfg.ExtractorConfig.StreamAttributes)
	assert.Contains(t, cfg.ExtractorConfig.PlayerGlobals, "player")
	assert.Contains(t, cfg.ExtractorConfig.PlayerGlobals, "videoPlayer")
	assert.Equal(t, ":8080", cfg.ServerConfig.ListenAddress)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestNewDefaultConfigs_DoNotShareSlices(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.ExtractorConfig.PlayerGlobals[0] = "mutated"
	cfg.BrowserConfig.BlockedResourceTypes[0] = "Media"

	assert.Equal(t, "jwplayer", DefaultPlayerGlobals[0])
	assert.Equal(t, "Image", DefaultBlockedResourceTypes[0])
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	chdirForTest(t, t.TempDir())

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
browser_config:
  user_agent: test-agent
  navigation_timeout: 10s
  settle_delay: 2
  stealth: true
extractor_config:
  deep_script_analysis: true
  player_globals: [myPlayer]
server_config:
  listen_address: 127.0.0.1:9000
log_config:
  log_level: debug
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "test-agent", cfg.BrowserConfig.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.BrowserConfig.NavigationTimeout.Std())
	assert.Equal(t, 2*time.Second, cfg.BrowserConfig.SettleDelay.Std())
	assert.True(t, cfg.BrowserConfig.Stealth)
	assert.True(t, cfg.BrowserConfig.Headless, "unset keys keep defaults")
	assert.True(t, cfg.ExtractorConfig.DeepScriptAnalysis)
	assert.Equal(t, []string{"myPlayer"}, cfg.ExtractorConfig.PlayerGlobals)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServerConfig.ListenAddress)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	configData := `{
		"browser_config": {"settle_delay": "1500ms", "headless": false},
		"log_config": {"log_format": "json"}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.BrowserConfig.SettleDelay.Std())
	assert.False(t, cfg.BrowserConfig.Headless)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
}

func TestLoadGlobalConfig_EnvPath(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("server_config:\n  mode: debug\n"), 0644))
	t.Setenv(ConfigPathEnv, configFile)

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.ServerConfig.Mode)
}

func TestLoadGlobalConfig_InvalidJSON(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "invalid.json")
	require.NoError(t, os.WriteFile(configFile, []byte(`{"log_config": {},}`), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal JSON")
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "invalid.yaml")
	invalidYAML := `
log_config:
  log_level: info
    invalid_indent: value
`
	require.NoError(t, os.WriteFile(configFile, []byte(invalidYAML), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to unmarshal YAML")
}

func TestLoadGlobalConfig_InvalidDuration(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("browser_config:\n  settle_delay: soon\n"), 0644))

	_, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}
