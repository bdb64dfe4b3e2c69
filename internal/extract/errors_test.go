package extract_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/extract"
)

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 30, extract.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, extract.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, extract.ParseRetryAfterHeader("soon"))
	// HTTP-date values are not supported, only delta-seconds.
	assert.Equal(t, 0, extract.ParseRetryAfterHeader("Wed, 21 Oct 2026 07:28:00 GMT"))
}

func TestNewRateLimitError(t *testing.T) {
	cause := errors.New("429 Too Many Requests")

	err := extract.NewRateLimitError("gemini", cause, 30)
	assert.Equal(t, 30*time.Second, err.RetryAfter)
	assert.Equal(t, "gemini", err.Provider)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "gemini rate limited")

	// A missing Retry-After header defaults to a minute.
	err = extract.NewRateLimitError("openai", cause, 0)
	assert.Equal(t, time.Minute, err.RetryAfter)
}

func TestRateLimitErrorAs(t *testing.T) {
	var rl *extract.RateLimitError
	wrapped := extract.NewRateLimitError("gemini", errors.New("quota"), 5)
	require.True(t, errors.As(error(wrapped), &rl))
	assert.Equal(t, "gemini", rl.Provider)
}
