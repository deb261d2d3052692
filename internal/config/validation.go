package config

import (
	"fmt"
	"strings"

	"github.com/conneroisu/termkit/internal/normalize"
	"github.com/conneroisu/termkit/internal/splitter"
)

// ValidationError represents a configuration validation error with
// suggestions.
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// HasErrors returns true if there are any validation errors.
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// String returns a formatted string of all validation issues.
func (vr *ValidationResult) String() string {
	if !vr.HasErrors() {
		return "configuration is valid\n"
	}

	var builder strings.Builder
	builder.WriteString("Validation Errors:\n")
	for _, err := range vr.Errors {
		builder.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
		for _, suggestion := range err.Suggestions {
			builder.WriteString(fmt.Sprintf("    hint: %s\n", suggestion))
		}
	}

	return builder.String()
}

// Validate checks every profile and the logging settings, collecting all
// problems instead of stopping at the first.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for name, profile := range config.Profiles {
		validateProfile(name, profile, result)
	}

	validateLogging(&config.Logging, result)

	result.Valid = !result.HasErrors()

	return result
}

func validateProfile(name string, profile Profile, result *ValidationResult) {
	field := "profiles." + name
	before := len(result.Errors)

	if profile.Separators == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field + ".separators",
			Value:   profile.Separators,
			Message: "separator set must not be empty",
			Suggestions: []string{
				`use " \t," for whitespace and comma splitting`,
				"the first separator is used when rejoining terms",
			},
		})
	}

	if _, err := splitter.ParseGroupingMode(profile.Grouping); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field + ".grouping",
			Value:   profile.Grouping,
			Message: fmt.Sprintf("unknown grouping mode %q", profile.Grouping),
			Suggestions: []string{
				"valid modes: flat, map, pairs, buckets",
			},
		})
	}

	if _, err := normalize.ByName(profile.Normalize...); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field + ".normalize",
			Value:   profile.Normalize,
			Message: err.Error(),
			Suggestions: []string{
				"valid normalizers: identity, lower, upper, title, trim, nfc, nfd, ascii, unquote, slug",
			},
		})
	}

	// Character-role conflicts surface with the splitter's own error
	// message; building the profile is cheap enough to do eagerly here.
	// Skipped when earlier checks already flagged this profile.
	if len(result.Errors) == before {
		if _, err := profile.Build(); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Value:   profile,
				Message: err.Error(),
				Suggestions: []string{
					"a character may serve only one role: separator, quote, or marker",
				},
			})
		}
	}
}

func validateLogging(config *LoggingConfig, result *ValidationResult) {
	switch config.Level {
	case "", "debug", "info", "warn", "error":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Value:   config.Level,
			Message: fmt.Sprintf("unknown log level %q", config.Level),
			Suggestions: []string{
				"valid levels: debug, info, warn, error",
			},
		})
	}

	switch config.Format {
	case "", "text", "json":
	default:
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Value:   config.Format,
			Message: fmt.Sprintf("unknown log format %q", config.Format),
			Suggestions: []string{
				"valid formats: text, json",
			},
		})
	}
}
