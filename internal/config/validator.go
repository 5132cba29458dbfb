package config

import (
	"fmt"
)

var validProviders = map[string]bool{
	"anthropic": true,
	"openai":    true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateProvider validates a provider name
func ValidateProvider(provider string) error {
	if provider == "" {
		return fmt.Errorf("provider cannot be empty")
	}
	if !validProviders[provider] {
		return fmt.Errorf("unknown provider: %s (valid: anthropic, openai)", provider)
	}
	return nil
}

// ValidateModel validates a model name
func ValidateModel(model string) error {
	if model == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	return nil
}

// ValidateLogLevel validates a log level
func ValidateLogLevel(level string) error {
	if level == "" {
		return fmt.Errorf("log level cannot be empty")
	}
	if !validLogLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", level)
	}
	return nil
}
