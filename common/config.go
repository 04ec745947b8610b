package common

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"github.com/BurntSushi/toml"

	"NameInPi/chudnovsky"
	"NameInPi/mp"
)

// DefaultConfigFile is read when no -config flag is given.
const DefaultConfigFile = "namepi.toml"

// MaxPower is the largest power of ten an int digit count can hold.
const MaxPower = 18

type Config struct {
	Search  SearchConfig  `toml:"search"`
	Compute ComputeConfig `toml:"compute"`
	Output  OutputConfig  `toml:"output"`
}

type SearchConfig struct {
	// Probe is tried before the powers of ten, 0 skips it.
	Probe    int    `toml:"probe"`
	MaxPower int    `toml:"max_power"`
	Limit    string `toml:"limit"`
}

type ComputeConfig struct {
	Threads      int   `toml:"threads"`
	Threshold    int64 `toml:"threshold"`
	FFTThreshold int   `toml:"fft_threshold"`
}

type OutputConfig struct {
	Verbose bool   `toml:"verbose"`
	Report  string `toml:"report"`
}

func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Probe:    100,
			MaxPower: MaxPower,
		},
		Compute: ComputeConfig{
			Threads:      runtime.NumCPU(),
			Threshold:    chudnovsky.DefaultThreshold,
			FFTThreshold: mp.DefaultFFTThreshold,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. A missing file is not an
// error, it just leaves the defaults in place.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges that the flag and file parsers cannot.
func (c *Config) Validate() error {
	if c.Search.Probe < 0 {
		return fmt.Errorf("probe must not be negative, got %d", c.Search.Probe)
	}
	if c.Search.MaxPower < 0 || c.Search.MaxPower > MaxPower {
		return fmt.Errorf("max_power must be in [0..%d], got %d", MaxPower, c.Search.MaxPower)
	}
	if c.Search.Limit != "" {
		if _, err := DecodeLimit(c.Search.Limit, false); err != nil {
			return err
		}
	}
	if c.Compute.Threads < 1 {
		return fmt.Errorf("threads must be positive, got %d", c.Compute.Threads)
	}
	return nil
}
