// Package config implements the CLI-facing configuration layer: a
// viper-backed Cfg loaded from a TOML file, environment variables, or
// flags, with flags registered once and bound by name.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spatialmodel/gridxform/errs"
)

// Cfg holds the parameters of one gridxform invocation.
type Cfg struct {
	*viper.Viper
}

// New builds a Cfg with defaults set and the given flags bound.
func New(flags *pflag.FlagSet) *Cfg {
	cfg := &Cfg{Viper: viper.New()}
	cfg.SetEnvPrefix("GRIDXFORM")
	cfg.AutomaticEnv()
	cfg.SetDefault("kernel2d", "bilinear")
	cfg.SetDefault("kernel1d", "linear")
	cfg.SetDefault("fill", "none")
	cfg.BindPFlags(flags)
	return cfg
}

// Load reads the configuration file named by the "config" key, if set.
func (cfg *Cfg) Load() error {
	path := cfg.GetString("config")
	if path == "" {
		return nil
	}
	cfg.SetConfigFile(path)
	if err := cfg.ReadInConfig(); err != nil {
		return errs.Wrap(errs.ConfigurationError, "config: reading %q: %v", path, err)
	}
	return nil
}

// Kernel2DName and Kernel1DName return the configured kernel names, which
// cmd/gridxform resolves to package interp's kernel functions; other
// options such as "input" and "output" are read via cfg.GetString.
func (cfg *Cfg) Kernel2DName() string { return cfg.GetString("kernel2d") }
func (cfg *Cfg) Kernel1DName() string { return cfg.GetString("kernel1d") }

// Validate checks that required string keys are non-empty.
func (cfg *Cfg) Validate(required ...string) error {
	for _, key := range required {
		if cfg.GetString(key) == "" {
			return errs.Wrap(errs.ConfigurationError, "config: missing required option %q", key)
		}
	}
	return nil
}

// DefaultConfig is the starting point written by "gridxform config init".
// The TOML encoder writes the toml keys only; the comment tags are not
// written to the file.
type DefaultConfig struct {
	InputFile  string `toml:"input" comment:"path to the source gridded dataset"`
	OutputFile string `toml:"output"`
	Kernel2D   string `toml:"kernel2d" comment:"nearest, bilinear, or bicubic"`
	Kernel1D   string `toml:"kernel1d" comment:"linear, log, or loglog"`
	Fill       string `toml:"fill" comment:"none, poisson, or creep"`
}

// WriteDefault writes the default TOML configuration to path, without
// comments.
func WriteDefault(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ConfigurationError, "config: creating %q: %v", path, err)
	}
	defer f.Close()

	def := DefaultConfig{Kernel2D: "bilinear", Kernel1D: "linear", Fill: "none"}
	if err := toml.NewEncoder(f).Encode(def); err != nil {
		return errs.Wrap(errs.ConfigurationError, "config: writing %q: %v", path, err)
	}
	return nil
}
