package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/e11jah/prefixtree"
)

// Config holds the settings a tree is built with.
type Config struct {
	Policy   string `mapstructure:"policy"`
	Alphabet string `mapstructure:"alphabet"`
	Debug    bool   `mapstructure:"debug"`
}

// LoadConfig loads configuration from file and environment variables
// prefixed with PREFIXTREE_.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("prefixtree")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("policy", "owned")
	v.SetDefault("alphabet", "extended")
	v.SetDefault("debug", false)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.labelPolicy(); err != nil {
		return err
	}
	if _, err := c.alphabet(); err != nil {
		return err
	}
	return nil
}

func (c *Config) labelPolicy() (prefixtree.LabelPolicy, error) {
	switch c.Policy {
	case "owned":
		return prefixtree.Owned(), nil
	case "shared":
		return prefixtree.SharedView(), nil
	}
	return nil, fmt.Errorf("unknown label policy %q", c.Policy)
}

func (c *Config) alphabet() (prefixtree.Alphabet, error) {
	switch c.Alphabet {
	case "extended":
		return prefixtree.ExtendedASCII(), nil
	case "ascii":
		return prefixtree.ASCII(), nil
	case "lower":
		return prefixtree.LowerCase(), nil
	case "ctoken":
		return prefixtree.CToken(), nil
	}
	return nil, fmt.Errorf("unknown alphabet %q", c.Alphabet)
}

// Options returns the tree options described by c.
func (c *Config) Options(log zerolog.Logger) ([]prefixtree.Option, error) {
	policy, err := c.labelPolicy()
	if err != nil {
		return nil, err
	}
	abc, err := c.alphabet()
	if err != nil {
		return nil, err
	}
	return []prefixtree.Option{
		prefixtree.WithLabelPolicy(policy),
		prefixtree.WithAlphabet(abc),
		prefixtree.WithLogger(log),
	}, nil
}

// setup reads the configuration named by the global flags and lets the
// remaining global flags override it.
func setup(ctx *cli.Context) (*Config, zerolog.Logger, error) {
	cfg, err := LoadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if ctx.IsSet(policyFlag.Name) {
		cfg.Policy = ctx.String(policyFlag.Name)
	}
	if ctx.IsSet(alphabetFlag.Name) {
		cfg.Alphabet = ctx.String(alphabetFlag.Name)
	}
	if ctx.IsSet(debugFlag.Name) {
		cfg.Debug = ctx.Bool(debugFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, newLogger(cfg.Debug), nil
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().
		Logger()
}
