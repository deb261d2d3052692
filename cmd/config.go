package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	configpkg "github.com/conneroisu/termkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage termkit configuration",
	Long: `Config inspects and scaffolds the .termkit.yml configuration file
holding named split profiles and logging settings.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .termkit.yml",
	Long: `Init writes the built-in configuration (the "words" and "search"
profiles) to .termkit.yml in the current directory as a starting point.`,
	RunE: runConfigInitCommand,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShowCommand,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	RunE:  runConfigValidateCommand,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing .termkit.yml")
	configInitCmd.Flags().StringP("output", "o", ".termkit.yml", "path to write")
}

func runConfigInitCommand(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", output)
		}
	}

	data, err := yaml.Marshal(configpkg.Default())
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)

	return nil
}

func runConfigShowCommand(cmd *cobra.Command, args []string) error {
	cfg, err := configpkg.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))

	return nil
}

func runConfigValidateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := configpkg.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	result := configpkg.Validate(cfg)
	fmt.Fprint(cmd.OutOrStdout(), result.String())

	if result.HasErrors() {
		return fmt.Errorf("configuration is invalid")
	}

	return nil
}
