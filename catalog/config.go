package catalog

import (
	log "github.com/inconshreveable/log15"
)

// Config contains the parameters of a Catalog.
type Config struct {
	Logger log.Logger
}

func defaultConfig() *Config {
	return &Config{
		Logger: log.Root(),
	}
}

func (c *Config) applyOptions(opts []Option) (*Config, error) {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Option is a function that takes a config struct and modifies it
type Option func(c *Config) error

// WithLogger sets the logger catalog updates are reported to.
func WithLogger(logger log.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}
