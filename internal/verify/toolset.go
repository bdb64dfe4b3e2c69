// Package verify implements field verification against external
// intelligence sources, with cascading fallback per tool.
package verify

import (
	"context"
	"fmt"
	"net/url"

	"lcintel/internal/config"
	"lcintel/internal/domain"
	"lcintel/internal/port"
	"lcintel/internal/unlocode"
)

// Sources reported on verification results.
const (
	sourceFormatValidation = "format_validation"
	sourceInputValidation  = "input_validation"
	sourceAPINinjas        = "api_ninjas"
	sourceAPINinjasPremium = "api_ninjas_premium"
	sourceUnlocode         = "unlocode_database"
	sourceGeoapify         = "geoapify"
	sourcePerplexity       = "perplexity"
	sourceExa              = "exa_search"
	sourceNoResults        = "no_results"
)

type toolFunc func(ctx context.Context, args map[string]string) (*domain.VerificationResult, error)

// ToolInfo describes a registered verification tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Toolset holds the verification tools and the external clients they
// cascade through. Any client may be nil; tools skip unavailable tiers.
type Toolset struct {
	premium    bool
	swiftDir   port.SwiftDirectory
	geocoder   port.Geocoder
	researcher port.Researcher
	searcher   port.Searcher
	locodes    *unlocode.Index

	tools map[string]toolFunc
	infos []ToolInfo
}

// NewToolset creates the full verification toolset.
func NewToolset(
	cfg *config.VerifyConfig,
	swiftDir port.SwiftDirectory,
	geocoder port.Geocoder,
	researcher port.Researcher,
	searcher port.Searcher,
	locodes *unlocode.Index,
) *Toolset {
	t := &Toolset{
		premium:    cfg != nil && cfg.APINinjasPremium,
		swiftDir:   swiftDir,
		geocoder:   geocoder,
		researcher: researcher,
		searcher:   searcher,
		locodes:    locodes,
		tools:      make(map[string]toolFunc),
	}
	t.register(ToolVerifyHSCode, "Verify HS code format and classification", t.verifyHSCode)
	t.register(ToolVerifySwiftCode, "Verify SWIFT/BIC with candidate cleanup and directory lookup", t.verifySwiftCode)
	t.register(ToolCheckSanctions, "Screen a party against sanctions lists", t.checkSanctions)
	t.register(ToolTrackShipment, "Validate container numbers and locate shipments", t.trackShipment)
	t.register(ToolVerifyCompany, "Verify company legitimacy with cross-referenced research", t.verifyCompany)
	t.register(ToolVerifyPort, "Verify a port via UN/LOCODE with country-aware matching", t.verifyPort)
	t.register(ToolVerifyBankByName, "Search a bank by name", t.verifyBankByName)
	t.register(ToolDeepResearch, "Deep research over the live web", t.deepResearch)
	return t
}

func (t *Toolset) register(name, description string, fn toolFunc) {
	t.tools[name] = fn
	t.infos = append(t.infos, ToolInfo{Name: name, Description: description})
}

// Tools lists the registered tools in registration order.
func (t *Toolset) Tools() []ToolInfo {
	out := make([]ToolInfo, len(t.infos))
	copy(out, t.infos)
	return out
}

// Run executes a single verification request.
func (t *Toolset) Run(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	fn, ok := t.tools[req.ToolName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, req.ToolName)
	}
	return fn(ctx, req.Args)
}

func conf(v float64) *float64 {
	return &v
}

func gmapsSearch(query string) string {
	return "https://www.google.com/maps/search/" + url.QueryEscape(query)
}

func gmapsLink(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%f,%f", lat, lon)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
