package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultPrompt   = "DB > "
	DefaultLogLevel = "warn"

	// LogLevelEnv overrides the log level when the flag is not given
	LogLevelEnv = "ROWDB_LOG_LEVEL"
)

type Config struct {
	Prompt   string
	LogLevel string
}

func Default() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		LogLevel: DefaultLogLevel,
	}
}

// Level parses the configured log level
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

func (c *Config) Validate() error {
	_, err := c.Level()
	return err
}
