// Package config loads run settings for the minegrid binary from a YAML
// file, MINEGRID_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/minegrid/board"
)

// EnvPrefix is prepended to every environment override, e.g. MINEGRID_SIZE.
const EnvPrefix = "MINEGRID"

// Config is the decoded run configuration.
type Config struct {
	Size             int `mapstructure:"size"`
	Difficulty       int `mapstructure:"difficulty"`
	DifficultyOffset int `mapstructure:"difficulty_offset"`
	Density          struct {
		// Numerator and Denominator override the difficulty-derived density when both are set.
		Numerator   int `mapstructure:"numerator"`
		Denominator int `mapstructure:"denominator"`
	} `mapstructure:"density"`
	// Seed fixes hazard placement; 0 picks a time-based seed.
	Seed uint64 `mapstructure:"seed"`
	Log  struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"log"`
}

// Flags registers the command-line flags understood by Load.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.Int("size", board.DefaultSize, "side length of the square grid")
	fs.Int("difficulty", board.DefaultDifficulty, "difficulty level; hazard density is 1/(offset-difficulty)")
	fs.Int("difficulty-offset", board.DefaultDifficultyOffset, "difficulty offset")
	fs.Int("density-numerator", 0, "hazard density numerator (overrides difficulty with --density-denominator)")
	fs.Int("density-denominator", 0, "hazard density denominator")
	fs.Uint64("seed", 0, "placement seed, 0 for time-based")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "log file path; empty discards logs")
}

// Load resolves the configuration. fs may be nil; when given, it must have
// been set up with Flags and parsed. Only flags the user actually set take
// precedence over file and environment values.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range map[string]string{
			"size":                "size",
			"difficulty":          "difficulty",
			"difficulty_offset":   "difficulty-offset",
			"density.numerator":   "density-numerator",
			"density.denominator": "density-denominator",
			"seed":                "seed",
			"log.level":           "log-level",
			"log.file":            "log-file",
		} {
			if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
				return nil, fmt.Errorf("config: bind flag %q: %w", flag, err)
			}
		}
		if path, _ := fs.GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
	}

	if v.ConfigFileUsed() != "" {
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("size", board.DefaultSize)
	v.SetDefault("difficulty", board.DefaultDifficulty)
	v.SetDefault("difficulty_offset", board.DefaultDifficultyOffset)
	v.SetDefault("density.numerator", 0)
	v.SetDefault("density.denominator", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Board converts the run configuration into board construction parameters.
func (c *Config) Board() board.Config {
	num, den := board.DensityFor(c.Difficulty, c.DifficultyOffset)
	if c.Density.Numerator != 0 || c.Density.Denominator != 0 {
		num, den = c.Density.Numerator, c.Density.Denominator
	}
	return board.Config{Size: c.Size, DensityNum: num, DensityDen: den}
}

// Validate checks the board parameters and the log level.
func (c *Config) Validate() error {
	if err := c.Board().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Join(ErrLogLevel, err)
	}
	return nil
}

// ErrLogLevel indicates an unknown log.level value.
var ErrLogLevel = errors.New("config: unknown log level")
