package splitter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		grouping GroupingMode
		input    string
		expected string
	}{
		{
			name:     "flat is an array",
			grouping: GroupNone,
			input:    "cat +dog",
			expected: `["cat","dog"]`,
		},
		{
			name:     "map keys are marker strings, unmarked is empty key",
			grouping: GroupMap,
			input:    "cat +dog",
			expected: `{"":["cat"],"+":["dog"],"-":[]}`,
		},
		{
			name:     "pairs are objects",
			grouping: GroupPairs,
			input:    "cat -dog",
			expected: `[{"marker":"","term":"cat"},{"marker":"-","term":"dog"}]`,
		},
		{
			name:     "buckets are arrays of arrays",
			grouping: GroupBuckets,
			input:    "cat +dog",
			expected: `[["cat"],["dog"],[]]`,
		},
		{
			name:     "empty flat result is an empty array",
			grouping: GroupNone,
			input:    "",
			expected: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := searchBuilder().WithGrouping(tt.grouping).Build()
			require.NoError(t, err)

			result, err := s.Split(tt.input)
			require.NoError(t, err)

			data, err := json.Marshal(result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestResult_EmptyAndLen(t *testing.T) {
	for _, mode := range []GroupingMode{GroupNone, GroupMap, GroupPairs, GroupBuckets} {
		s, err := searchBuilder().WithGrouping(mode).Build()
		require.NoError(t, err)

		empty, err := s.Split("  ")
		require.NoError(t, err)
		assert.True(t, empty.Empty(), "mode %s", mode)
		assert.Zero(t, empty.Len(), "mode %s", mode)

		full, err := s.Split("cat +dog -fish")
		require.NoError(t, err)
		assert.False(t, full.Empty(), "mode %s", mode)
		assert.Equal(t, 3, full.Len(), "mode %s", mode)
	}
}
