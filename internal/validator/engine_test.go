package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcintel/internal/domain"
	"lcintel/internal/validator"
	"lcintel/internal/validator/lc"
)

func consistentDocs() *lc.Docs {
	return &lc.Docs{
		LC: map[string]string{
			"date":                 "01/10/2025",
			"expiry_date":          "31/12/2025",
			"latest_shipment_date": "15/11/2025",
			"amount_in_figures":    "USD 100,000.00",
			"percentage_tolerance": "10%",
			"beneficiary_name":     "ABC Trading Co",
			"port_loading":         "Shanghai",
			"lc_number":            "LC-2025-0042",
			"bills_of_lading":      "Yes",
			"commercial_invoice":   "Yes",
		},
		Supporting: map[string]map[string]string{
			lc.DocBillOfLading: {
				"on_board_date":   "10/11/2025",
				"port_of_loading": "Port of Shanghai",
				"lc_number":       "LC-2025-0042",
			},
			lc.DocCommercialInvoice: {
				"invoice_amount": "105,000.00",
				"seller_name":    "ABC-Trading Co.",
				"lc_number":      "LC-2025-0042",
			},
		},
	}
}

func TestEngineFullDocumentSet(t *testing.T) {
	engine := validator.NewDefaultEngine()
	report := engine.Validate(context.Background(), consistentDocs())
	require.NotNil(t, report)

	// Three date checks, two amount checks, one party, one shipment,
	// two credit number checks, two required document checks. Rules
	// whose application checkbox is absent contribute nothing.
	assert.Equal(t, 11, report.TotalChecks)
	assert.Len(t, report.Checks, report.TotalChecks)
	assert.Equal(t, 10, report.PassedChecks)
	assert.Equal(t, 0, report.Errors)

	// The invoice sits above face value inside the tolerance band.
	assert.Equal(t, 1, report.Warnings)
}

func TestEngineSurfacesErrors(t *testing.T) {
	docs := consistentDocs()
	docs.LC["expiry_date"] = "30/09/2025"
	docs.Supporting[lc.DocCommercialInvoice]["invoice_amount"] = "150,000.00"

	engine := validator.NewDefaultEngine()
	report := engine.Validate(context.Background(), docs)

	// Expiry before issue, shipment after expiry, invoice out of
	// tolerance. The face value warning rule backs off when the error
	// rule already covers the overage.
	assert.Equal(t, 3, report.Errors)
	assert.Equal(t, 0, report.Warnings)
	assert.Equal(t, report.TotalChecks, report.PassedChecks+report.Errors)
}

func TestEngineEmptyDocs(t *testing.T) {
	engine := validator.NewDefaultEngine()
	report := engine.Validate(context.Background(), &lc.Docs{})
	require.NotNil(t, report)
	assert.Zero(t, report.TotalChecks)
	assert.Empty(t, report.Checks)
}

type stubRule struct {
	key    string
	passed bool
}

func (s *stubRule) RuleKey() string                     { return s.key }
func (s *stubRule) RuleName() string                    { return "Stub " + s.key }
func (s *stubRule) Severity() domain.ValidationSeverity { return domain.SeverityError }

func (s *stubRule) Validate(_ context.Context, _ *lc.Docs) []domain.ValidationCheck {
	return []domain.ValidationCheck{{RuleName: s.RuleName(), Passed: s.passed, Severity: s.Severity()}}
}

func TestRegistryOrderAndReplacement(t *testing.T) {
	registry := validator.NewRegistry()
	registry.Register(&stubRule{key: "B_001", passed: true})
	registry.Register(&stubRule{key: "A_001", passed: true})

	all := registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, "B_001", all[0].RuleKey(), "registration order is preserved")
	assert.Equal(t, "A_001", all[1].RuleKey())

	// Re-registering a key swaps the rule in place.
	registry.Register(&stubRule{key: "B_001", passed: false})
	all = registry.All()
	require.Len(t, all, 2)
	assert.Equal(t, "B_001", all[0].RuleKey())
	checks := all[0].Validate(context.Background(), &lc.Docs{})
	require.Len(t, checks, 1)
	assert.False(t, checks[0].Passed)

	assert.Nil(t, registry.Get("ZZZ_999"))
	assert.NotNil(t, registry.Get("A_001"))
}
