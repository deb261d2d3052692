// Package cmd provides the command-line interface for termkit with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --profile, etc.) - highest priority
//	2. TERMKIT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (TERMKIT_LOGGING_LEVEL, etc.)
//	4. Configuration files (.termkit.yml) - lowest priority
//
// Environment Variables:
//
//	TERMKIT_CONFIG_FILE: Path to custom configuration file
//	TERMKIT_LOGGING_LEVEL: Override log level
//	TERMKIT_LOGGING_FORMAT: Override log format
//	And more following the TERMKIT_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/termkit/internal/config"
	"github.com/conneroisu/termkit/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termkit",
	Short: "Term splitting and text normalization for search-style input",
	Long: `Termkit tokenizes raw input lines into terms the way search boxes read
queries: quoted phrases stay intact, +/- style markers assign terms to
groups, and configurable normalizer chains clean each term up.

Key Features:
  • Quote-aware term splitting with group markers
  • Named split profiles in .termkit.yml
  • Normalizer chains: case folding, Unicode normal forms, accents, slugs
  • Flat, map, pairs, and buckets output shapes, as text or JSON

Quick Start:
  termkit split 'animals +cat -dog +"medical treatment"'
  termkit split --profile search 'panda "high altitude"'
  termkit slug "Crème Brûlée 2.0"
  termkit config init`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .termkit.yml, can also use TERMKIT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. TERMKIT_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .termkit.yml in the current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfig := os.Getenv("TERMKIT_CONFIG_FILE"); envConfig != "" {
		viper.SetConfigFile(envConfig)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".termkit")
	}

	viper.SetEnvPrefix("TERMKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config files are fine; explicit ones must load.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}

// newLogger builds the CLI logger from the loaded configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})
}
