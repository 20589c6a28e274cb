package rolescalc

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config mirrors the construction options for environment-driven setups.
type Config struct {
	AlwaysAllow      []string `env:"ROLES_ALWAYS_ALLOW" envSeparator:","`            // AlwaysAllow lists roles that satisfy every requirement unconditionally.
	ResourceActions  bool     `env:"ROLES_RESOURCE_ACTIONS" envDefault:"false"`      // ResourceActions enables compound-role semantics.
	WriteExtendsRead bool     `env:"ROLES_WRITE_EXTENDS_READ" envDefault:"false"`    // WriteExtendsRead makes the write action grant read.
	Separator        string   `env:"ROLES_RESOURCE_ACTION_SEPARATOR" envDefault:":"` // Separator splits compound role names; must be one character.
}

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from environment variables, loading the default
// .env file first when one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig creates a calculator from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) (*Calc, error) {
	configOpts := make([]Option, 0, 4)

	if len(cfg.AlwaysAllow) > 0 {
		configOpts = append(configOpts, WithAlwaysAllow(cfg.AlwaysAllow...))
	}
	if cfg.ResourceActions {
		configOpts = append(configOpts, WithResourceActions())
	}
	if cfg.WriteExtendsRead {
		configOpts = append(configOpts, WithWriteExtendsRead())
	}
	if cfg.Separator != "" {
		configOpts = append(configOpts, WithResourceActionSeparator(cfg.Separator))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

// NewFromEnv creates a calculator configured from environment variables.
func NewFromEnv(opts ...Option) (*Calc, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}
