// SPDX-License-Identifier: MIT

package features

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ragfeat/grid"
)

// Config holds extraction settings backed by viper. Keys:
//
//	histogram.bins        int    (40)
//	histogram.min         float  (unset: data minimum)
//	histogram.max         float  (unset: data maximum)
//	extraction.concurrent bool   (true)
//	logging.level         string ("info")
//
// Environment variables RAGFEAT_<SECTION>_<KEY> override file values.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("histogram.bins", 40)

	v.SetDefault("extraction.concurrent", true)

	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("RAGFEAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a configuration file (any format viper reads).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set overrides a key at runtime.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) BinCount() int   { return c.v.GetInt("histogram.bins") }
func (c *Config) Concurrent() bool { return c.v.GetBool("extraction.concurrent") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// HistogramRange returns the intensity histogram range: histogram.min and
// histogram.max when both are set and form a valid range, otherwise the
// finite extent of data. ok is false when neither source gives a usable range.
func (c *Config) HistogramRange(data *grid.Data) (lo, hi float64, ok bool) {
	if c.v.IsSet("histogram.min") && c.v.IsSet("histogram.max") {
		lo, hi = c.v.GetFloat64("histogram.min"), c.v.GetFloat64("histogram.max")
		if validRange(lo, hi) {
			return lo, hi, true
		}
	}
	if data == nil {
		return 0, 0, false
	}
	lo, hi = data.MinMax()

	return lo, hi, validRange(lo, hi)
}

// Options converts the configuration into Extractor options. A bin count
// below 1 falls back to the default.
func (c *Config) Options() []Option {
	opts := []Option{
		WithConcurrent(c.Concurrent()),
		WithLogger(c.CreateLogger()),
	}
	if n := c.BinCount(); n >= 1 {
		opts = append(opts, WithBinCount(n))
	}

	return opts
}

// CreateLogger creates a console zerolog logger at the configured level.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "ragfeat").Logger()
}
