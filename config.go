package gldispatch

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/gldispatch/capability"
)

// Config is the environment configuration.
type Config struct {
	// Debug enables the validator.
	Debug bool `env:"GLDISPATCH_DEBUG"`

	// DisabledExtensions are hidden from every probed capability set.
	DisabledExtensions []string `env:"GLDISPATCH_DISABLE_EXTENSIONS" envSeparator:","`

	// MaxVersion caps the probed version of one API, written like
	// GL_VERSION: "3.3" limits desktop GL contexts, "OpenGL ES 2.0" limits
	// ES contexts. Contexts of the other API are left alone.
	MaxVersion capability.Limit `env:"GLDISPATCH_MAX_VERSION"`

	// Libraries overrides the shared libraries the loader package opens.
	Libraries []string `env:"GLDISPATCH_LIBRARIES" envSeparator:","`
}

// LoadConfigFromEnv parses Config from the process environment.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("gldispatch: parse env: %w", err)
	}
	return cfg, nil
}
