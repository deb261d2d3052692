package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configpkg "github.com/conneroisu/termkit/internal/config"
)

// resetFlags restores every flag in the tree to its default so executions
// within one test process stay independent.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var defaults []string
			if trimmed := strings.Trim(f.DefValue, "[]"); trimmed != "" {
				defaults = strings.Split(trimmed, ",")
			}
			_ = sv.Replace(defaults)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})

	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with the given arguments and returns its
// combined stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	return buf.String(), err
}

func TestSplitCommand_Flat(t *testing.T) {
	out, err := execute(t, "split", "cat,dog panda")

	require.NoError(t, err)
	assert.Equal(t, "cat\ndog\npanda\n", out)
}

func TestSplitCommand_QuotedPhrase(t *testing.T) {
	out, err := execute(t, "split", `"high altitude" bends`)

	require.NoError(t, err)
	assert.Equal(t, "\"high altitude\"\nbends\n", out)
}

func TestSplitCommand_GroupedJSON(t *testing.T) {
	out, err := execute(t, "split",
		"--markers", "+-",
		"--grouping", "map",
		"--json",
		`animals +cat -dog`)

	require.NoError(t, err)
	assert.JSONEq(t, `{"":["animals"],"+":["cat"],"-":["dog"]}`, strings.TrimSpace(out))
}

func TestSplitCommand_Buckets(t *testing.T) {
	out, err := execute(t, "split",
		"--markers", "+-",
		"--grouping", "buckets",
		`animals +cat -dog +"medical treatment"`)

	require.NoError(t, err)
	assert.Contains(t, out, "(none)\tanimals")
	assert.Contains(t, out, "+\tcat, \"medical treatment\"")
	assert.Contains(t, out, "-\tdog")
}

func TestSplitCommand_NormalizeSortUnique(t *testing.T) {
	out, err := execute(t, "split",
		"--normalize", "lower,unquote",
		"--sort",
		"--unique",
		`Panda "High Altitude" panda bends`)

	require.NoError(t, err)
	assert.Equal(t, "bends\nhigh altitude\npanda\n", out)
}

func TestSplitCommand_BuiltinProfile(t *testing.T) {
	out, err := execute(t, "split", "--profile", "search", "--json",
		`Animals +Cat -Dog`)

	require.NoError(t, err)
	assert.JSONEq(t, `{"":["animals"],"+":["cat"],"-":["dog"]}`, strings.TrimSpace(out))
}

func TestSplitCommand_UnknownProfile(t *testing.T) {
	_, err := execute(t, "split", "--profile", "nope", "text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown split profile")
}

func TestSplitCommand_BadGrouping(t *testing.T) {
	_, err := execute(t, "split", "--grouping", "sideways", "text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown grouping mode")
}

func TestSlugCommand(t *testing.T) {
	out, err := execute(t, "slug", "Crème Brûlée 2.0", "Hello, World!")

	require.NoError(t, err)
	assert.Equal(t, "creme-brulee-2-0\nhello-world\n", out)
}

func TestNormalizeCommand(t *testing.T) {
	out, err := execute(t, "normalize", "--chain", "lower,ascii", "Crème Brûlée")

	require.NoError(t, err)
	assert.Equal(t, "creme brulee\n", out)
}

func TestNormalizeCommand_UnknownChain(t *testing.T) {
	_, err := execute(t, "normalize", "--chain", "reticulate", "text")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown normalizer")
}

func TestConfigInitCommand(t *testing.T) {
	tempDir := t.TempDir()
	output := filepath.Join(tempDir, ".termkit.yml")

	out, err := execute(t, "config", "init", "--output", output)

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	require.FileExists(t, output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "profiles:")
	assert.Contains(t, string(data), "search:")

	// A second init without --force must refuse to overwrite.
	_, err = execute(t, "config", "init", "--output", output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--output", output, "--force")
	assert.NoError(t, err)
}

func TestConfigShowCommand(t *testing.T) {
	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "profiles:")
	assert.Contains(t, out, "logging:")
}

func TestConfigValidateCommand(t *testing.T) {
	out, err := execute(t, "config", "validate")

	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "termkit")
	assert.Contains(t, out, "platform:")
}

func TestVersionCommand_JSON(t *testing.T) {
	out, err := execute(t, "version", "--format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
	assert.Contains(t, out, `"platform"`)
}

func TestSplitProfile_FlagOverridesProfile(t *testing.T) {
	viper.Reset()
	cfg := configpkg.Default()

	cmd := splitCmd
	require.NoError(t, cmd.Flags().Set("profile", "search"))
	require.NoError(t, cmd.Flags().Set("grouping", "buckets"))
	defer func() {
		_ = cmd.Flags().Set("profile", "")
		_ = cmd.Flags().Set("grouping", "")
	}()

	profile, err := splitProfile(cmd.Flags(), cfg)

	require.NoError(t, err)
	assert.Equal(t, "buckets", profile.Grouping, "explicit flag wins over profile field")
	assert.Equal(t, "+-", profile.Markers, "untouched profile fields survive")
}
