// Package config loads lemma.yml and LEMMA_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/lemma/internal/algebra"
	"github.com/simonhull/firebird-suite/lemma/internal/logger"
)

// FileName is the config file looked up in the working directory.
const FileName = "lemma.yml"

// EnvPrefix prefixes environment overrides, e.g. LEMMA_LOG_LEVEL.
const EnvPrefix = "LEMMA"

// Config represents lemma.yml
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Fixtures FixturesConfig `mapstructure:"fixtures" yaml:"fixtures"`
}

// LogConfig controls diagnostics written to stderr
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// ServerConfig holds settings for lemma serve
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// FixturesConfig holds the objects the checkers run against
type FixturesConfig struct {
	Ring         RingConfig         `mapstructure:"ring" yaml:"ring"`
	Module       ModuleConfig       `mapstructure:"module" yaml:"module"`
	PrimesModule PrimesModuleConfig `mapstructure:"primes_module" yaml:"primes_module"`
}

// RingConfig describes the Noetherian ring
type RingConfig struct {
	Name      string        `mapstructure:"name" yaml:"name"`
	Dimension int           `mapstructure:"dimension" yaml:"dimension"`
	Ideals    []IdealConfig `mapstructure:"ideals" yaml:"ideals"`
}

// IdealConfig describes one ideal of the ring
type IdealConfig struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Prime   bool   `mapstructure:"prime" yaml:"prime"`
	Maximal bool   `mapstructure:"maximal" yaml:"maximal"`
}

// ModuleConfig describes the module checked for projectivity
type ModuleConfig struct {
	Name       string `mapstructure:"name" yaml:"name"`
	Rank       int    `mapstructure:"rank" yaml:"rank"`
	Projective bool   `mapstructure:"projective" yaml:"projective"`
}

// PrimesModuleConfig names the module whose associated primes are checked
type PrimesModuleConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
}

// Default returns the built-in configuration. Its fixtures are exactly the
// objects the checkers use when no config file exists.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "silent"},
		Server: ServerConfig{Addr: ":3000"},
		Fixtures: FixturesConfig{
			Ring: RingConfig{
				Name:      "A",
				Dimension: 2,
				Ideals: []IdealConfig{
					{Name: "m1", Prime: true, Maximal: true},
					{Name: "p1", Prime: true, Maximal: false},
					{Name: "m2", Prime: true, Maximal: true},
				},
			},
			Module:       ModuleConfig{Name: "P", Rank: 3, Projective: true},
			PrimesModule: PrimesModuleConfig{Name: "M"},
		},
	}
}

// Load reads configuration. An empty path searches the working directory for
// lemma.yml and falls back to defaults if none exists; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("fixtures.ring.name", d.Fixtures.Ring.Name)
	v.SetDefault("fixtures.ring.dimension", d.Fixtures.Ring.Dimension)

	ideals := make([]map[string]any, 0, len(d.Fixtures.Ring.Ideals))
	for _, i := range d.Fixtures.Ring.Ideals {
		ideals = append(ideals, map[string]any{"name": i.Name, "prime": i.Prime, "maximal": i.Maximal})
	}
	v.SetDefault("fixtures.ring.ideals", ideals)

	v.SetDefault("fixtures.module.name", d.Fixtures.Module.Name)
	v.SetDefault("fixtures.module.rank", d.Fixtures.Module.Rank)
	v.SetDefault("fixtures.module.projective", d.Fixtures.Module.Projective)
	v.SetDefault("fixtures.primes_module.name", d.Fixtures.PrimesModule.Name)
}

// Validate checks that the configuration describes usable fixtures.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Fixtures.Ring.Name == "" {
		return fmt.Errorf("fixtures.ring.name must not be empty")
	}
	if c.Fixtures.Module.Name == "" {
		return fmt.Errorf("fixtures.module.name must not be empty")
	}
	if c.Fixtures.PrimesModule.Name == "" {
		return fmt.Errorf("fixtures.primes_module.name must not be empty")
	}

	seen := make(map[string]bool, len(c.Fixtures.Ring.Ideals))
	for i, ideal := range c.Fixtures.Ring.Ideals {
		if ideal.Name == "" {
			return fmt.Errorf("fixtures.ring.ideals[%d]: name must not be empty", i)
		}
		if seen[ideal.Name] {
			return fmt.Errorf("fixtures.ring.ideals[%d]: duplicate ideal %q", i, ideal.Name)
		}
		if ideal.Maximal && !ideal.Prime {
			return fmt.Errorf("fixtures.ring.ideals[%d]: maximal ideal %q must be prime", i, ideal.Name)
		}
		seen[ideal.Name] = true
	}

	return nil
}

// LogLevel returns the parsed log level. Call Validate first.
func (c *Config) LogLevel() logger.Level {
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}

// Ring builds the configured Noetherian ring.
func (c *Config) Ring() *algebra.NoetherianRing {
	rc := c.Fixtures.Ring
	ring := algebra.NewNoetherianRing(rc.Name, rc.Dimension)
	for _, i := range rc.Ideals {
		ring.AddIdeal(algebra.NewIdeal(i.Name, i.Prime, i.Maximal))
	}
	return ring
}

// Module builds the configured finitely generated module.
func (c *Config) Module() *algebra.FinitelyGeneratedModule {
	mc := c.Fixtures.Module
	module := algebra.NewFinitelyGeneratedModule(mc.Name, mc.Rank)
	module.SetProjective(mc.Projective)
	return module
}

// Save writes cfg to path as YAML. An existing file is only replaced when
// overwrite is set.
func Save(path string, cfg *Config, overwrite bool) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("writing config file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
