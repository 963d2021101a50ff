package configs

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "https://cdn.sanity.io", cfg.Assets.BaseURL)
	assert.Equal(t, 10, cfg.Browser.TimeoutSeconds)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, 10*1024*1024, cfg.Scanner.MaxLineBytes)
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: debug
  file: ./explorer.log
assets:
  base_url: https://cdn.example.com
browser:
  command: firefox
  timeout_seconds: 3
server:
  port: 9090
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./explorer.log", cfg.Log.File)
	assert.Equal(t, "https://cdn.example.com", cfg.Assets.BaseURL)
	assert.Equal(t, "firefox", cfg.Browser.Command)
	assert.Equal(t, 3, cfg.Browser.TimeoutSeconds)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("./does-not-exist.yml", nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: loud
`)

	cfg, err := LoadConfig(path, nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "log.level (oneof=")
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 70000
`)

	cfg, err := LoadConfig(path, nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "server.port (max=65535)")
}

func TestLoadConfig_InvalidBaseURL(t *testing.T) {
	path := writeTempConfig(t, `assets:
  base_url: not a url
`)

	cfg, err := LoadConfig(path, nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assets.baseurl (url)")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `log:
  level: debug
`)
	t.Setenv("EXPLORER_LOG_LEVEL", "error")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("EXPLORER_SERVER_PORT", "7000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 8088, "")
	flags.String("base-url", "", "")
	require.NoError(t, flags.Parse([]string{"--port", "7100"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Server.Port)
	// unchanged flags do not shadow defaults
	assert.Equal(t, "https://cdn.sanity.io", cfg.Assets.BaseURL)
}
