// Package config loads colreplace settings from environment variables, with
// defaults for everything. The positional arguments of the command are not
// configuration and never come from here.
package config

// Config holds all tool configuration.
type Config struct {
	Logging LoggingConfig
	Replace ReplaceConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ReplaceConfig holds processing settings.
type ReplaceConfig struct {
	// MalformedRows is the policy for rows with the wrong field count: skip or fail (default: skip)
	MalformedRows string `env:"COLREPLACE_MALFORMED_ROWS" default:"skip"`

	// StripBOM removes a leading UTF-8 byte order mark from the input (default: false)
	StripBOM bool `env:"COLREPLACE_STRIP_BOM" default:"false"`

	// BufferSize is the read/write buffer size in bytes (default: 65536)
	BufferSize int `env:"COLREPLACE_BUFFER_SIZE" default:"65536"`
}
