package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	configpkg "github.com/conneroisu/termkit/internal/config"
	"github.com/conneroisu/termkit/internal/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split [text...]",
	Short: "Split text into terms",
	Long: `Split tokenizes each input line into terms: quoted phrases stay intact,
marker prefixes assign terms to groups, and the configured normalizer
chain cleans each term up.

Input comes from arguments, or from stdin when no arguments are given
(one split per line).

Examples:
  termkit split 'animals +cat -dog +"medical treatment"'
  termkit split --profile search '"high altitude" panda'
  termkit split --markers "+-" --grouping buckets 'a +b -c'
  echo "cat,dog panda" | termkit split --sort --unique --json`,
	RunE: runSplitCommand,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringP("profile", "p", "", "named split profile from configuration")
	splitCmd.Flags().String("separators", " \t,", "separator characters; the first is used when rejoining")
	splitCmd.Flags().String("quotes", `"'`, "quote characters (same character opens and closes a span)")
	splitCmd.Flags().String("markers", "", "group marker characters, e.g. \"+-\"")
	splitCmd.Flags().Bool("unmarked", true, "give unmarked terms their own leading bucket in grouped output")
	splitCmd.Flags().StringP("grouping", "g", "", "result shape (flat, map, pairs, buckets)")
	splitCmd.Flags().StringSliceP("normalize", "n", nil, "normalizer chain ("+strings.Join(normalizeNames, ", ")+")")
	splitCmd.Flags().Bool("sort", false, "sort terms before grouping")
	splitCmd.Flags().BoolP("unique", "u", false, "drop duplicate terms, keeping first occurrence")
	splitCmd.Flags().Bool("json", false, "emit JSON instead of text")
}

func runSplitCommand(cmd *cobra.Command, args []string) error {
	cfg, err := configpkg.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg).WithComponent("split")

	profile, err := splitProfile(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	s, err := profile.Build()
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	return forEachLine(cmd.InOrStdin(), args, func(line string) error {
		result, err := s.Split(line)
		if err != nil {
			return err
		}

		logger.Debug(cmd.Context(), "split line", "terms", result.Len())

		return writeResult(out, s, result, asJSON)
	})
}

// splitProfile resolves the effective profile: the command's own flags, or
// a named profile from the configuration with explicitly-set flags
// overriding its fields.
func splitProfile(flags *pflag.FlagSet, cfg *configpkg.Config) (configpkg.Profile, error) {
	name, _ := flags.GetString("profile")

	var profile configpkg.Profile
	if name != "" {
		named, err := cfg.Profile(name)
		if err != nil {
			return configpkg.Profile{}, err
		}
		profile = named
	}

	if name == "" || flags.Changed("separators") {
		profile.Separators, _ = flags.GetString("separators")
	}
	if name == "" || flags.Changed("quotes") {
		profile.Quotes, _ = flags.GetString("quotes")
	}
	if name == "" || flags.Changed("markers") {
		profile.Markers, _ = flags.GetString("markers")
	}
	if name == "" || flags.Changed("unmarked") {
		profile.Unmarked, _ = flags.GetBool("unmarked")
	}
	if name == "" || flags.Changed("grouping") {
		profile.Grouping, _ = flags.GetString("grouping")
	}
	if name == "" || flags.Changed("normalize") {
		profile.Normalize, _ = flags.GetStringSlice("normalize")
	}
	if name == "" || flags.Changed("sort") {
		profile.Sort, _ = flags.GetBool("sort")
	}
	if name == "" || flags.Changed("unique") {
		profile.Unique, _ = flags.GetBool("unique")
	}

	return profile, nil
}

// forEachLine applies fn to the argument list, or to stdin lines when no
// arguments were given.
func forEachLine(stdin io.Reader, args []string, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}

		return nil
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func writeResult(w io.Writer, s *splitter.Splitter, result *splitter.Result, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))

		return err
	}

	switch result.Mode {
	case splitter.GroupMap:
		for _, m := range s.Markers() {
			fmt.Fprintf(w, "%s\t%s\n", markerLabel(m), strings.Join(result.Groups[m], ", "))
		}
	case splitter.GroupPairs:
		for _, p := range result.Pairs {
			fmt.Fprintf(w, "%s\t%s\n", markerLabel(p.Marker), p.Term)
		}
	case splitter.GroupBuckets:
		markers := s.Markers()
		for i, bucket := range result.Buckets {
			fmt.Fprintf(w, "%s\t%s\n", markerLabel(markers[i]), strings.Join(bucket, ", "))
		}
	default:
		for _, term := range result.Terms {
			fmt.Fprintln(w, term)
		}
	}

	return nil
}

// markerLabel renders a marker for text output; the unmarked bucket shows
// as "(none)".
func markerLabel(m rune) string {
	if m == splitter.NoMarker {
		return "(none)"
	}

	return string(m)
}
