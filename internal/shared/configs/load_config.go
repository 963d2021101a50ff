package configs

import (
	"fmt"
	"strings"

	"asset-log-explorer/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "EXPLORER"

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":       "log.level",
	"log-file":        "log.file",
	"base-url":        "assets.base_url",
	"browser-command": "browser.command",
	"port":            "server.port",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("assets.base_url", "https://cdn.sanity.io")
	v.SetDefault("browser.command", "")
	v.SetDefault("browser.timeout_seconds", 10)
	v.SetDefault("server.port", 8088)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("scanner.max_line_bytes", 10*1024*1024)
}

// LoadConfig builds the configuration from defaults, an optional yaml file, EXPLORER_* environment
// variables and the given flags (highest precedence, only when changed), then validates it.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags != nil {
		for flagName, key := range flagKeys {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", flagName, err)
			}
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", validators.Describe(err))
	}

	return &cfg, nil
}
