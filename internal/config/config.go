package config

import (
	"fmt"
)

// Config holds the toolrouter CLI configuration. The router core itself
// takes no configuration; everything here concerns the surrounding
// process: which model provider a caller talks to and how logging behaves.
type Config struct {
	// Provider selects the model provider wire format for catalog
	// rendering: anthropic or openai.
	Provider string `json:"provider" mapstructure:"provider"`

	// Model is the model identifier handed to the provider by the caller.
	Model string `json:"model" mapstructure:"model"`

	// APIKeyEnv names the environment variable holding the provider API
	// key. The key itself is never stored in config.
	APIKeyEnv string `json:"api_key_env" mapstructure:"api_key_env"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	File   string `json:"file" mapstructure:"file"`
	Pretty bool   `json:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:  "anthropic",
		Model:     "claude-sonnet-4",
		APIKeyEnv: "ANTHROPIC_API_KEY",
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if err := ValidateProvider(c.Provider); err != nil {
		return err
	}
	if err := ValidateModel(c.Model); err != nil {
		return err
	}
	if err := ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// String returns a printable summary of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("provider=%s model=%s api_key_env=%s log_level=%s",
		c.Provider, c.Model, c.APIKeyEnv, c.Logging.Level)
}
