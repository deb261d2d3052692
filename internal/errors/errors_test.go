package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermkitError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TermkitError
		expected string
	}{
		{
			name:     "code and message",
			err:      NewConfigError(ErrCodeEmptySeparators, "separator set must not be empty"),
			expected: "[ERR_EMPTY_SEPARATORS] separator set must not be empty",
		},
		{
			name:     "message only",
			err:      &TermkitError{Type: ErrorTypeInternal, Message: "boom"},
			expected: "boom",
		},
		{
			name:     "with cause",
			err:      NewNormalizeError("normalizer failed", stderrors.New("bad rune")),
			expected: "[ERR_NORMALIZE_FAILED] normalizer failed: bad rune",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestTermkitError_Unwrap(t *testing.T) {
	cause := stderrors.New("original")
	err := NewNormalizeError("wrapped", cause)

	require.ErrorIs(t, err, cause, "cause must stay reachable through Unwrap")
}

func TestTermkitError_Is(t *testing.T) {
	err := ErrEmptySeparators()

	assert.ErrorIs(t, err, NewConfigError(ErrCodeEmptySeparators, "different message"))
	assert.NotErrorIs(t, err, NewConfigError(ErrCodeMarkerConflict, ""))
	assert.NotErrorIs(t, err, stderrors.New("separator set must not be empty"))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsConfigError(ErrEmptySeparators()))
	assert.True(t, IsInputError(ErrInputType(42)))
	assert.True(t, IsNormalizeError(NewNormalizeError("x", stderrors.New("y"))))

	assert.False(t, IsConfigError(stderrors.New("plain")))
	assert.False(t, IsInputError(nil))
	assert.False(t, IsNormalizeError(ErrEmptySeparators()))
}

func TestWithContext(t *testing.T) {
	err := ErrInputType([]int{1, 2})

	require.NotNil(t, err.Context)
	assert.Contains(t, err.Context, "value")
	assert.Equal(t, "[ERR_INPUT_TYPE] expected textual input, got []int", err.Error())
}
