// Package config loads session settings from defaults, an optional YAML
// file and environment variables, in that order of precedence (lowest
// first), and validates them before the session starts.
package config

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Table   TableConfig   `yaml:"table"`
}

// LoggingConfig holds logging settings. Logs go to stderr.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `env:"TABLED_LOG_LEVEL" default:"info" yaml:"level"`

	// Format is text or json (default: text)
	Format string `env:"TABLED_LOG_FORMAT" default:"text" yaml:"format"`
}

// OutputConfig holds settings for command output on stdout.
type OutputConfig struct {
	// Format is text or json (default: text)
	Format string `env:"TABLED_OUTPUT" default:"text" yaml:"format"`

	// Prompt is shown before each line when stdin is a terminal (default: "> ")
	Prompt string `env:"TABLED_PROMPT" default:"> " yaml:"prompt"`
}

// TableConfig holds the starting table.
type TableConfig struct {
	// Schema is the initial schema encoding, e.g. "name:str,age:i64".
	// Empty starts with a table that has no columns.
	Schema string `env:"TABLED_SCHEMA" yaml:"schema"`
}

// FileEnv names the environment variable holding the YAML file path.
const FileEnv = "TABLED_CONFIG"
