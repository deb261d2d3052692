package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerrors "github.com/conneroisu/termkit/internal/errors"
	"github.com/conneroisu/termkit/internal/splitter"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name             string
		setup            func()
		expectError      bool
		expectedProfiles []string
	}{
		{
			name: "defaults when nothing is set",
			setup: func() {
				viper.Reset()
			},
			expectedProfiles: []string{"words", "search"},
		},
		{
			name: "custom profile merges with built-ins",
			setup: func() {
				viper.Reset()
				viper.Set("profiles.tags.separators", " ,")
				viper.Set("profiles.tags.normalize", []string{"lower", "slug"})
			},
			expectedProfiles: []string{"words", "search", "tags"},
		},
		{
			name: "built-in profile can be overridden",
			setup: func() {
				viper.Reset()
				viper.Set("profiles.words.separators", ";")
			},
			expectedProfiles: []string{"words", "search"},
		},
		{
			name: "invalid profile shape fails to unmarshal",
			setup: func() {
				viper.Reset()
				viper.Set("profiles.broken.sort", "not-a-bool")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			config, err := Load()

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, name := range tt.expectedProfiles {
				assert.Contains(t, config.Profiles, name)
			}
			assert.Equal(t, "info", config.Logging.Level)
			assert.Equal(t, "text", config.Logging.Format)
		})
	}
}

func TestLoad_OverrideKeepsCustomValue(t *testing.T) {
	viper.Reset()
	viper.Set("profiles.words.separators", ";")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ";", config.Profiles["words"].Separators)
}

func TestConfig_Profile(t *testing.T) {
	config := Default()

	profile, err := config.Profile("search")
	require.NoError(t, err)
	assert.Equal(t, "map", profile.Grouping)

	_, err = config.Profile("nope")
	require.Error(t, err)
	assert.True(t, tkerrors.IsConfigError(err))

	var te *tkerrors.TermkitError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, tkerrors.ErrCodeProfileUnknown, te.Code)
}

func TestProfile_Build(t *testing.T) {
	config := Default()

	profile, err := config.Profile("search")
	require.NoError(t, err)

	s, err := profile.Build()
	require.NoError(t, err)

	result, err := s.Split(`Animals +Cat -Dog +"Medical Treatment"`)
	require.NoError(t, err)

	assert.Equal(t, splitter.GroupMap, result.Mode)
	assert.Equal(t, []string{"animals"}, result.Groups[splitter.NoMarker])
	assert.Equal(t, []string{"cat", "medical treatment"}, result.Groups['+'])
	assert.Equal(t, []string{"dog"}, result.Groups['-'])
}

func TestProfile_Build_Errors(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
	}{
		{"empty separators", Profile{}},
		{"bad grouping", Profile{Separators: " ", Grouping: "sideways"}},
		{"bad normalizer", Profile{Separators: " ", Normalize: []string{"reticulate"}}},
		{"marker conflict", Profile{Separators: " -", Markers: "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.profile.Build()

			require.Error(t, err)
			assert.True(t, tkerrors.IsConfigError(err))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		result := Validate(Default())

		assert.True(t, result.Valid)
		assert.False(t, result.HasErrors())
		assert.Contains(t, result.String(), "valid")
	})

	t.Run("collects all problems", func(t *testing.T) {
		config := Default()
		config.Profiles["broken"] = Profile{
			Grouping:  "sideways",
			Normalize: []string{"reticulate"},
		}
		config.Logging.Level = "loud"
		config.Logging.Format = "xml"

		result := Validate(config)

		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 5)
		assert.Contains(t, result.String(), "profiles.broken.separators")
		assert.Contains(t, result.String(), "logging.level")
		assert.Contains(t, result.String(), "hint:")
	})

	t.Run("character role conflict", func(t *testing.T) {
		config := Default()
		config.Profiles["clash"] = Profile{Separators: " -", Markers: "-"}

		result := Validate(config)

		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "profiles.clash", result.Errors[0].Field)
	})
}
