package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lcintel/internal/extract"
	"lcintel/internal/port"
	"lcintel/mocks"
)

func extractOutput(model string) *port.ExtractOutput {
	v := "LC-2025-0042"
	return &port.ExtractOutput{
		RawFields: map[string]*string{"lc_number": &v},
		ModelUsed: model,
	}
}

func TestFallbackUsesPrimary(t *testing.T) {
	primary := new(mocks.MockFieldExtractor)
	secondary := new(mocks.MockFieldExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).Return(extractOutput("gemini-2.0-flash"), nil)

	f := extract.NewFallbackExtractor(
		[]port.FieldExtractor{primary, secondary},
		[]string{"gemini", "openai"},
	)

	out, err := f.Extract(context.Background(), port.ExtractInput{})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", out.ModelUsed)
	secondary.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestFallbackFailsOver(t *testing.T) {
	primary := new(mocks.MockFieldExtractor)
	secondary := new(mocks.MockFieldExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("upstream 500"))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(extractOutput("gpt-4o"), nil)

	f := extract.NewFallbackExtractor(
		[]port.FieldExtractor{primary, secondary},
		[]string{"gemini", "openai"},
	)

	out, err := f.Extract(context.Background(), port.ExtractInput{})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", out.ModelUsed)
}

func TestFallbackCircuitSkipsRateLimitedProvider(t *testing.T) {
	primary := new(mocks.MockFieldExtractor)
	secondary := new(mocks.MockFieldExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).
		Return(nil, extract.NewRateLimitError("gemini", errors.New("429"), 60))
	secondary.On("Extract", mock.Anything, mock.Anything).Return(extractOutput("gpt-4o"), nil)

	f := extract.NewFallbackExtractor(
		[]port.FieldExtractor{primary, secondary},
		[]string{"gemini", "openai"},
	)

	// First call trips the primary's circuit.
	out, err := f.Extract(context.Background(), port.ExtractInput{})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", out.ModelUsed)

	// Second call goes straight to the secondary.
	out, err = f.Extract(context.Background(), port.ExtractInput{})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", out.ModelUsed)
	primary.AssertNumberOfCalls(t, "Extract", 1)
	secondary.AssertNumberOfCalls(t, "Extract", 2)
}

func TestFallbackAllRateLimited(t *testing.T) {
	primary := new(mocks.MockFieldExtractor)
	secondary := new(mocks.MockFieldExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).
		Return(nil, extract.NewRateLimitError("gemini", errors.New("429"), 120))
	secondary.On("Extract", mock.Anything, mock.Anything).
		Return(nil, extract.NewRateLimitError("openai", errors.New("429"), 30))

	f := extract.NewFallbackExtractor(
		[]port.FieldExtractor{primary, secondary},
		[]string{"gemini", "openai"},
	)

	_, err := f.Extract(context.Background(), port.ExtractInput{})
	require.Error(t, err)

	var rl *extract.RateLimitError
	require.True(t, errors.As(err, &rl))
	assert.Equal(t, "all", rl.Provider)
	// The caller waits for the earliest circuit to close, not the latest.
	assert.LessOrEqual(t, rl.RetryAfter.Seconds(), 30.0)
}

func TestFallbackAllFailed(t *testing.T) {
	primary := new(mocks.MockFieldExtractor)
	secondary := new(mocks.MockFieldExtractor)
	primary.On("Extract", mock.Anything, mock.Anything).Return(nil, errors.New("upstream 500"))
	cause := errors.New("bad gateway")
	secondary.On("Extract", mock.Anything, mock.Anything).Return(nil, cause)

	f := extract.NewFallbackExtractor(
		[]port.FieldExtractor{primary, secondary},
		[]string{"gemini", "openai"},
	)

	_, err := f.Extract(context.Background(), port.ExtractInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "all extractors failed")

	var rl *extract.RateLimitError
	assert.False(t, errors.As(err, &rl))
}
