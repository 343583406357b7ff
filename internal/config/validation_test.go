package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfigAcceptsDefaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative indent", func(c *Config) { c.Editor.IndentWidth = -1 }},
		{"huge indent", func(c *Config) { c.Editor.IndentWidth = 32 }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"negative timeout", func(c *Config) { c.Database.QueryTimeout = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}
