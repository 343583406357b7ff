package config

import "fmt"

// validateConfig checks configuration values that cannot be expressed
// through defaults alone.
func validateConfig(config *Config) error {
	if config.Editor.IndentWidth < 0 || config.Editor.IndentWidth > 16 {
		return fmt.Errorf("editor.indent_width must be between 0 and 16, got %d", config.Editor.IndentWidth)
	}

	switch config.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", config.Logging.Format)
	}

	if config.Database.QueryTimeout < 0 {
		return fmt.Errorf("database.query_timeout must not be negative")
	}

	return nil
}
