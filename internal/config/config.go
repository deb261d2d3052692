// Package config provides configuration management for the termkit CLI
// using Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// Configuration lives in .termkit.yml with TERMKIT_ environment overrides.
// Its core concept is the named split profile: a declarative description
// of one splitter (separators, quotes, markers, grouping, normalizer
// chain) that compiles into a splitter.Splitter.
package config

import (
	"github.com/spf13/viper"

	"github.com/conneroisu/termkit/internal/errors"
	"github.com/conneroisu/termkit/internal/normalize"
	"github.com/conneroisu/termkit/internal/splitter"
)

type Config struct {
	Profiles map[string]Profile `yaml:"profiles" mapstructure:"profiles"`
	Logging  LoggingConfig      `yaml:"logging" mapstructure:"logging"`
}

// Profile declares one splitter. Character sets are strings for YAML
// ergonomics; order matters (the first separator is the canonical join
// character, marker order fixes bucket order).
type Profile struct {
	Separators string   `yaml:"separators" mapstructure:"separators"`
	Quotes     string   `yaml:"quotes" mapstructure:"quotes"`
	Markers    string   `yaml:"markers" mapstructure:"markers"`
	Unmarked   bool     `yaml:"unmarked" mapstructure:"unmarked"`
	Grouping   string   `yaml:"grouping" mapstructure:"grouping"`
	Normalize  []string `yaml:"normalize" mapstructure:"normalize"`
	Sort       bool     `yaml:"sort" mapstructure:"sort"`
	Unique     bool     `yaml:"unique" mapstructure:"unique"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Default returns the built-in configuration: a whitespace "words"
// profile and a "search" profile with +/- markers, info-level text logs.
func Default() *Config {
	return &Config{
		Profiles: map[string]Profile{
			"words": {
				Separators: " \t,",
				Quotes:     `"'`,
			},
			"search": {
				Separators: " \t,",
				Quotes:     `"'`,
				Markers:    "+-",
				Unmarked:   true,
				Grouping:   "map",
				Normalize:  []string{"lower", "unquote"},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load unmarshals the viper state, filling in the built-in profiles for
// anything the config file leaves unset. Built-in profiles can be
// overridden by declaring a profile of the same name.
func Load() (*Config, error) {
	config := Default()

	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	if config.Profiles == nil {
		config.Profiles = Default().Profiles
	}
	for name, profile := range Default().Profiles {
		if _, ok := config.Profiles[name]; !ok {
			config.Profiles[name] = profile
		}
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}

	return config, nil
}

// Profile looks up a named split profile.
func (c *Config) Profile(name string) (Profile, error) {
	profile, ok := c.Profiles[name]
	if !ok {
		return Profile{}, errors.NewConfigError(
			errors.ErrCodeProfileUnknown,
			"unknown split profile: "+name,
		)
	}

	return profile, nil
}

// Build compiles the profile into a splitter.
func (p Profile) Build() (*splitter.Splitter, error) {
	grouping, err := splitter.ParseGroupingMode(p.Grouping)
	if err != nil {
		return nil, err
	}

	markers := []rune(p.Markers)
	if p.Unmarked {
		markers = append([]rune{splitter.NoMarker}, markers...)
	}

	container := splitter.ContainerList
	if p.Unique {
		container = splitter.ContainerSet
	}

	b := splitter.NewBuilder().
		WithSeparators([]rune(p.Separators)...).
		WithQuotes([]rune(p.Quotes)...).
		WithMarkers(markers...).
		WithGrouping(grouping).
		WithSort(p.Sort).
		WithContainer(container)

	if len(p.Normalize) > 0 {
		fn, err := normalize.ByName(p.Normalize...)
		if err != nil {
			return nil, err
		}
		b = b.WithNormalizer(splitter.Normalizer(fn))
	}

	return b.Build()
}
