// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging LoggingConfig
	Console ConsoleConfig
	Catalog CatalogConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`

	// Output is where log records go: stderr, stdout or discard (default: stderr).
	// Keep it off stdout when running interactively so records don't mix with the menu.
	Output string `env:"LOG_OUTPUT" default:"stderr"`
}

// ConsoleConfig holds settings for the interactive menu.
type ConsoleConfig struct {
	// ClearScreen clears the terminal before each menu (default: false)
	ClearScreen bool `env:"CONSOLE_CLEAR_SCREEN" default:"false"`

	// Pause waits for Enter after each action (default: true)
	Pause bool `env:"CONSOLE_PAUSE" default:"true"`

	// Currency is appended to prices shown for a single book (default: USD)
	Currency string `env:"CONSOLE_CURRENCY" envAlt:"CURRENCY" default:"USD"`
}

// CatalogConfig holds catalog behaviour settings.
type CatalogConfig struct {
	// Strict rejects books with an empty title or a negative price (default: false)
	Strict bool `env:"CATALOG_STRICT" default:"false"`
}
