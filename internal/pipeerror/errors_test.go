package pipeerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "basic parse error",
			err: &ParseError{
				Source: "card",
				Field:  "Total Price",
				Value:  "abc",
				Err:    errors.New("invalid decimal"),
			},
			expected: "card: failed to parse Total Price='abc': invalid decimal",
		},
		{
			name: "parse error with empty value",
			err: &ParseError{
				Source: "marketplace",
				Field:  "Transaction Date",
				Value:  "",
				Err:    errors.New("empty date"),
			},
			expected: "marketplace: failed to parse Transaction Date='': empty date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{
		Source: "card",
		Field:  "amount",
		Value:  "invalid",
		Err:    originalErr,
	}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))
}

func TestSourceError(t *testing.T) {
	err := &SourceError{Source: "procurement", Reason: "raw file not found"}
	assert.Equal(t, "source procurement unavailable: raw file not found", err.Error())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Parameter: "interval", Value: "quarter", Msg: "must be day, week or month"}
	assert.Equal(t, "invalid configuration interval='quarter': must be day, week or month", err.Error())
}

func TestCommitError(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := &CommitError{UploadID: "u-1", BatchIndex: 3, Attempts: 4, Err: cause}
	assert.Equal(t, "commit of batch 3 for upload u-1 failed after 4 attempts: deadline exceeded", err.Error())
	assert.True(t, errors.Is(err, cause))
}
