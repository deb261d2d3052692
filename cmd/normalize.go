package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/termkit/internal/normalize"
)

// normalizeNames lists the chain links ByName accepts, shared between the
// normalize and split help texts.
var normalizeNames = []string{
	"identity", "lower", "upper", "title", "trim", "nfc", "nfd", "ascii", "unquote", "slug",
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Apply a normalizer chain to text",
	Long: `Normalize runs each argument through a chain of text normalizers:
case folding, Unicode normal forms, accent stripping, quote stripping,
and slug generation.

Examples:
  termkit normalize --chain lower,ascii "Crème Brûlée"
  termkit normalize --chain trim,unquote '  "padded phrase"  '`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalizeCommand,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringSliceP("chain", "c", []string{"lower"},
		"normalizer chain, applied left to right ("+strings.Join(normalizeNames, ", ")+")")
}

func runNormalizeCommand(cmd *cobra.Command, args []string) error {
	chain, _ := cmd.Flags().GetStringSlice("chain")

	fn, err := normalize.ByName(chain...)
	if err != nil {
		return err
	}

	for _, arg := range args {
		result, err := fn(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}

	return nil
}
