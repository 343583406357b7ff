package config

import "time"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			OpenPlainTextAlongside: false,
			IndentWidth:            4,
		},
		Database: DatabaseConfig{
			Path:         "", // Resolved from XDG data dir on load
			QueryTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// setDefaults configures viper with default values.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("editor.open_plain_text_alongside", defaults.Editor.OpenPlainTextAlongside)
	m.viper.SetDefault("editor.indent_width", defaults.Editor.IndentWidth)
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("database.query_timeout", defaults.Database.QueryTimeout)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
