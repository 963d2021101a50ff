package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Assets  AssetsConfig  `mapstructure:"assets" validate:"required"`
	Browser BrowserConfig `mapstructure:"browser" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Scanner ScannerConfig `mapstructure:"scanner" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	File  string `mapstructure:"file"` // empty: stderr outside the UI, discarded while the UI runs
}

// AssetsConfig holds the settings used to turn logged paths into openable URLs.
type AssetsConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// BrowserConfig holds settings for the external URL opener.
type BrowserConfig struct {
	Command        string `mapstructure:"command"` // overrides the platform opener when set
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,min=1,max=300"`
}

// ServerConfig holds settings for the read-only HTTP surface.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// ScannerConfig holds NDJSON scanning limits.
type ScannerConfig struct {
	MaxLineBytes int `mapstructure:"max_line_bytes" validate:"required,min=1024"`
}
