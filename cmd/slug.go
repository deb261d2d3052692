package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/termkit/internal/normalize"
)

var slugCmd = &cobra.Command{
	Use:   "slug [text...]",
	Short: "Generate URL-safe slugs",
	Long: `Slug converts each argument into a URL-safe slug: accents stripped,
lowercased, with non-alphanumeric runs collapsed to single hyphens.

Examples:
  termkit slug "Crème Brûlée 2.0"     # creme-brulee-2-0
  termkit slug "Hello, World!"        # hello-world`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSlugCommand,
}

func init() {
	rootCmd.AddCommand(slugCmd)
}

func runSlugCommand(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		slug, err := normalize.Slugify(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), slug)
	}

	return nil
}
