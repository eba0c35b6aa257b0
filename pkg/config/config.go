package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const envPrefix = "GENESTATS"

// Config holds the report settings.
//
// The gene-disease corpus this tool was built around names its files
// data/<group>/<disease>.<cutoff>.entrez.arff; setting the trim bounds to
// 10 and 17 recovers the bare disease name from such paths. With the
// bounds unset the report falls back to the file's base name.
type Config struct {
	NameTrimPrefix  int    `mapstructure:"name_trim_prefix" yaml:"name_trim_prefix"`
	NameTrimSuffix  int    `mapstructure:"name_trim_suffix" yaml:"name_trim_suffix"`
	OutputDelimiter string `mapstructure:"output_delimiter" yaml:"output_delimiter"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		NameTrimPrefix:  -1,
		NameTrimSuffix:  -1,
		OutputDelimiter: ",",
	}
}

// Load reads configuration from file, environment, and defaults.
// Precedence: env > config file > defaults. With cfgFile empty, the
// optional ~/.genestats/config.yaml is used.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("name_trim_prefix", defaults.NameTrimPrefix)
	v.SetDefault("name_trim_suffix", defaults.NameTrimSuffix)
	v.SetDefault("output_delimiter", defaults.OutputDelimiter)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".genestats"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to cfgFile. If cfgFile is empty, it writes
// to ~/.genestats/config.yaml, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error resolving home dir: %w", err)
		}
		dir := filepath.Join(home, ".genestats")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file %s: %w", path, err)
	}
	return nil
}

// DatasetName derives the report name for a dataset file. With both trim
// bounds set, the name is the path with that many leading and trailing
// characters removed. Otherwise, and whenever the bounds do not fit the
// path, it is the base name without its extension.
func (c *Config) DatasetName(path string) string {
	if c.NameTrimPrefix >= 0 && c.NameTrimSuffix >= 0 {
		end := len(path) - c.NameTrimSuffix
		if c.NameTrimPrefix < end {
			return path[c.NameTrimPrefix:end]
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Delimiter returns the output delimiter as a rune. The two-character
// escape \t is accepted for tab-separated output.
func (c *Config) Delimiter() (rune, error) {
	if c.OutputDelimiter == `\t` {
		return '\t', nil
	}
	runes := []rune(c.OutputDelimiter)
	if len(runes) != 1 {
		return 0, fmt.Errorf("output delimiter must be a single character, got %q", c.OutputDelimiter)
	}
	return runes[0], nil
}
