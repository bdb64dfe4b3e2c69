package verify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lcintel/internal/config"
	"lcintel/internal/domain"
	"lcintel/internal/port"
	"lcintel/internal/unlocode"
	"lcintel/internal/verify"
	"lcintel/mocks"
)

func newToolset(swiftDir port.SwiftDirectory, researcher port.Researcher, searcher port.Searcher) *verify.Toolset {
	return verify.NewToolset(&config.VerifyConfig{}, swiftDir, nil, researcher, searcher, unlocode.NewIndex(nil))
}

func TestToolsetListsAllTools(t *testing.T) {
	ts := newToolset(nil, nil, nil)
	infos := ts.Tools()
	require.Len(t, infos, 8)
	assert.Equal(t, verify.ToolVerifyHSCode, infos[0].Name)
	assert.Equal(t, verify.ToolDeepResearch, infos[7].Name)
}

func TestToolsetUnknownTool(t *testing.T) {
	ts := newToolset(nil, nil, nil)
	_, err := ts.Run(context.Background(), domain.VerificationRequest{ToolName: "summon_dragon"})
	assert.ErrorIs(t, err, domain.ErrUnknownTool)
}

func TestVerifySwiftCodeDirectoryHit(t *testing.T) {
	swiftDir := new(mocks.MockSwiftDirectory)
	swiftDir.On("LookupSwift", mock.Anything, "DEUTDEFF500").
		Return(&port.SwiftRecord{Swift: "DEUTDEFF500", BankName: "Deutsche Bank", City: "Frankfurt", Country: "DE"}, nil)

	ts := newToolset(swiftDir, nil, nil)
	res, err := ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolVerifySwiftCode,
		Args:     map[string]string{"code": "DEUTDEFF500"},
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	require.NotNil(t, res.Confidence)
	assert.InDelta(t, 0.95, *res.Confidence, 0.001)
	assert.Equal(t, "api_ninjas", res.Source)
	assert.Contains(t, res.Message, "Deutsche Bank")
	swiftDir.AssertExpectations(t)
}

func TestVerifySwiftCodeCandidateRepair(t *testing.T) {
	swiftDir := new(mocks.MockSwiftDirectory)
	// The cleaned 9-char code is skipped as structurally invalid, the
	// 8-char candidate resolves.
	swiftDir.On("LookupSwift", mock.Anything, "BNPAFRPP").
		Return(&port.SwiftRecord{Swift: "BNPAFRPP", BankName: "BNP Paribas", City: "Paris", Country: "FR"}, nil)

	ts := newToolset(swiftDir, nil, nil)
	res, err := ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolVerifySwiftCode,
		Args:     map[string]string{"code": "BNPAFRPPX"},
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Contains(t, res.Message, "cleaned from")
	swiftDir.AssertExpectations(t)
}

func TestVerifySwiftCodeFormatFallback(t *testing.T) {
	ts := newToolset(nil, nil, nil)

	res, err := ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolVerifySwiftCode,
		Args:     map[string]string{"code": "BNPAFRPP"},
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	require.NotNil(t, res.Confidence)
	assert.InDelta(t, 0.3, *res.Confidence, 0.001)
	assert.Equal(t, "format_validation", res.Source)

	res, err = ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolVerifySwiftCode,
		Args:     map[string]string{"code": "NOT A BIC 123"},
	})
	require.NoError(t, err)
	assert.False(t, res.Verified)
}

func TestCheckSanctionsHit(t *testing.T) {
	researcher := new(mocks.MockResearcher)
	researcher.On("Ask", mock.Anything, mock.Anything).
		Return("This entity is sanctioned and listed on the SDN list since 2022.", nil)

	ts := newToolset(nil, researcher, nil)
	res, err := ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolCheckSanctions,
		Args:     map[string]string{"party_name": "Bad Actor Corp"},
	})
	require.NoError(t, err)
	assert.False(t, res.Verified)
	require.NotNil(t, res.Confidence)
	assert.InDelta(t, 0.8, *res.Confidence, 0.001)
	assert.Contains(t, res.Message, "POTENTIAL SANCTIONS HIT")
}

func TestCheckSanctionsClear(t *testing.T) {
	researcher := new(mocks.MockResearcher)
	researcher.On("Ask", mock.Anything, mock.Anything).
		Return("No sanctions found for this company on OFAC, EU, or UN lists.", nil)

	ts := newToolset(nil, researcher, nil)
	res, err := ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolCheckSanctions,
		Args:     map[string]string{"party_name": "Honest Trading Co"},
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	require.NotNil(t, res.Confidence)
	assert.InDelta(t, 0.7, *res.Confidence, 0.001)
}

func TestCheckSanctionsResearcherDown(t *testing.T) {
	researcher := new(mocks.MockResearcher)
	researcher.On("Ask", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

	ts := newToolset(nil, researcher, nil)
	res, err := ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolCheckSanctions,
		Args:     map[string]string{"party_name": "Acme Trading LLC"},
	})
	require.NoError(t, err)
	assert.True(t, res.Verified)
	assert.Equal(t, "no_results", res.Source)
	assert.Contains(t, res.Details, "ofac_search_url")
}

func TestCheckSanctionsShortName(t *testing.T) {
	ts := newToolset(nil, nil, nil)
	res, err := ts.Run(context.Background(), domain.VerificationRequest{
		ToolName: verify.ToolCheckSanctions,
		Args:     map[string]string{"party_name": "A"},
	})
	require.NoError(t, err)
	assert.False(t, res.Verified)
	assert.Equal(t, "input_validation", res.Source)
}
