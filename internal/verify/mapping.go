package verify

import (
	"sort"

	"lcintel/internal/domain"
)

// Tool names.
const (
	ToolVerifyHSCode     = "verify_hs_code"
	ToolVerifySwiftCode  = "verify_swift_code"
	ToolCheckSanctions   = "check_sanctions"
	ToolTrackShipment    = "track_shipment"
	ToolVerifyCompany    = "verify_company"
	ToolVerifyPort       = "verify_port"
	ToolVerifyBankByName = "verify_bank_by_name"
	ToolDeepResearch     = "deep_research_verify"
)

// fieldTools maps extracted field keys to the verification tool that
// handles them.
var fieldTools = map[string]string{
	"beneficiary_bank_swift":     ToolVerifySwiftCode,
	"correspondent_bank_swift":   ToolVerifySwiftCode,
	"advising_bank_swift":        ToolVerifySwiftCode,
	"available_at_correspondent": ToolVerifySwiftCode,
	"port_loading":               ToolVerifyPort,
	"port_destination":           ToolVerifyPort,
	"port_of_loading":            ToolVerifyPort,
	"port_of_destination":        ToolVerifyPort,
	"port_of_discharge":          ToolVerifyPort,
	"named_place_port":           ToolVerifyPort,
	"place_of_receipt":           ToolVerifyPort,
	"hs_code":                    ToolVerifyHSCode,
	"goods_hs_code":              ToolVerifyHSCode,
	"beneficiary_name":           ToolVerifyCompany,
	"beneficiary_bank":           ToolVerifyBankByName,
	"applicant_name":             ToolCheckSanctions,
}

// toolArgKeys maps each tool to the argument key its value travels under.
var toolArgKeys = map[string]string{
	ToolVerifySwiftCode:  "code",
	ToolVerifyHSCode:     "code",
	ToolVerifyPort:       "port_name",
	ToolCheckSanctions:   "party_name",
	ToolVerifyCompany:    "company_name",
	ToolVerifyBankByName: "bank_name",
	ToolTrackShipment:    "tracking_number",
	ToolDeepResearch:     "query",
}

// ToolForField returns the verification tool for a field key, or "".
func ToolForField(fieldKey string) string {
	return fieldTools[fieldKey]
}

// ArgKeyForTool returns the primary argument key for a tool.
func ArgKeyForTool(tool string) string {
	return toolArgKeys[tool]
}

// BuildRequests derives verification requests from extracted fields.
// Only fields with a mapped tool and a non-empty value produce a
// request. Output is ordered by field key for determinism.
func BuildRequests(extracted map[string]string) []domain.VerificationRequest {
	keys := make([]string, 0, len(extracted))
	for k := range extracted {
		if _, ok := fieldTools[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	reqs := make([]domain.VerificationRequest, 0, len(keys))
	for _, k := range keys {
		value := extracted[k]
		if value == "" {
			continue
		}
		tool := fieldTools[k]
		reqs = append(reqs, domain.VerificationRequest{
			FieldKey: k,
			ToolName: tool,
			Args:     map[string]string{toolArgKeys[tool]: value},
			Value:    value,
		})
	}
	return reqs
}
