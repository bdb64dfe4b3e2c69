package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lcintel/internal/chat"
	"lcintel/internal/config"
	"lcintel/internal/domain"
	"lcintel/internal/unlocode"
	"lcintel/internal/verify"
	"lcintel/mocks"
)

func newResearchService(researcher *mocks.MockResearcher) *chat.ResearchService {
	toolset := verify.NewToolset(&config.VerifyConfig{}, nil, nil, researcher, nil, unlocode.NewIndex(nil))
	dispatcher := verify.NewDispatcher(toolset, 2, 5*time.Second)
	return chat.NewResearchService(dispatcher)
}

func TestResearchCombinesDocumentAndExternal(t *testing.T) {
	researcher := new(mocks.MockResearcher)
	researcher.On("Ask", mock.Anything, mock.MatchedBy(func(q string) bool {
		// Document evidence rides along as research context.
		return strings.HasPrefix(q, "Who is the beneficiary bank?") && strings.Contains(q, "Context:")
	})).Return("The beneficiary bank is Deutsche Bank AG, Frankfurt.", nil)

	svc := newResearchService(researcher)
	snapshot := &chat.SessionSnapshot{
		Extraction: &domain.ExtractionResult{
			DocumentText: "IRREVOCABLE DOCUMENTARY CREDIT\nBeneficiary bank: DEUTDEFF\nAmount: USD 100,000.00",
		},
	}

	result, err := svc.Research(context.Background(), snapshot, "Who is the beneficiary bank?")
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.DocEvidence, 1)
	assert.Equal(t, "Beneficiary bank: DEUTDEFF", result.DocEvidence[0])

	require.NotNil(t, result.External)
	assert.True(t, result.External.Verified)
	assert.Equal(t, "The beneficiary bank is Deutsche Bank AG, Frankfurt.", result.External.Details["research"])
	researcher.AssertExpectations(t)
}

func TestResearchEvidenceCapped(t *testing.T) {
	researcher := new(mocks.MockResearcher)
	researcher.On("Ask", mock.Anything, mock.Anything).Return("done", nil)

	lines := make([]string, 8)
	for i := range lines {
		lines[i] = "container MSKU1234567 on board"
	}
	snapshot := &chat.SessionSnapshot{
		Extraction: &domain.ExtractionResult{DocumentText: strings.Join(lines, "\n")},
	}

	svc := newResearchService(researcher)
	result, err := svc.Research(context.Background(), snapshot, "where is the container")
	require.NoError(t, err)
	assert.Len(t, result.DocEvidence, 5)
}

func TestResearchShortQueryWordsSkipDocument(t *testing.T) {
	researcher := new(mocks.MockResearcher)
	researcher.On("Ask", mock.Anything, mock.Anything).Return("done", nil)

	snapshot := &chat.SessionSnapshot{
		Extraction: &domain.ExtractionResult{DocumentText: "HS code 847130 declared"},
	}

	svc := newResearchService(researcher)
	result, err := svc.Research(context.Background(), snapshot, "hs 84")
	require.NoError(t, err)
	assert.Empty(t, result.DocEvidence, "words of three characters or fewer are not significant")
	require.NotNil(t, result.External)
}

func TestResearchProviderDownDegrades(t *testing.T) {
	researcher := new(mocks.MockResearcher)
	researcher.On("Ask", mock.Anything, mock.Anything).Return("", errors.New("perplexity unavailable"))

	svc := newResearchService(researcher)
	result, err := svc.Research(context.Background(), nil, "sanctions exposure of Acme Trading")
	require.NoError(t, err)
	require.NotNil(t, result.External)
	assert.False(t, result.External.Verified)
	assert.Equal(t, "no_results", result.External.Source)
}
