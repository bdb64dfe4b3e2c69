package verify

import (
	"context"
	"fmt"
	"strings"

	"lcintel/internal/domain"
)

// trackShipment validates a container or bill of lading reference and
// collects carrier tracking links, enriched with live research when
// available.
func (t *Toolset) trackShipment(ctx context.Context, args map[string]string) (*domain.VerificationResult, error) {
	tracking := strings.ToUpper(strings.TrimSpace(args["tracking_number"]))
	if tracking == "" {
		return &domain.VerificationResult{
			Verified: false,
			Message:  "No tracking number provided.",
			Source:   sourceInputValidation,
		}, nil
	}

	validContainer := ValidContainerNumber(tracking)
	details := map[string]interface{}{
		"tracking_number":        tracking,
		"container_format_valid": validContainer,
		"tracking_urls": map[string]string{
			"shipsgo":     fmt.Sprintf("https://shipsgo.com/container-tracking/%s", tracking),
			"cma_cgm":     fmt.Sprintf("https://www.cma-cgm.com/ebusiness/tracking?SearchBy=Container&Reference=%s", tracking),
			"maersk":      fmt.Sprintf("https://www.maersk.com/tracking/%s", tracking),
			"msc":         fmt.Sprintf("https://www.msc.com/en/track-a-shipment?trackingNumber=%s", tracking),
			"hapag_lloyd": fmt.Sprintf("https://www.hapag-lloyd.com/en/online-business/track/track-by-container-solution.html?container=%s", tracking),
		},
	}

	if t.researcher != nil {
		answer, err := t.researcher.Ask(ctx, fmt.Sprintf(
			"Track container or bill of lading '%s'. Status, vessel, location, ETA?", tracking))
		if err == nil && answer != "" {
			details["live_research"] = truncate(answer, 600)
			return &domain.VerificationResult{
				Verified:   true,
				Confidence: conf(0.7),
				Message:    fmt.Sprintf("Research found for %q. See tracking links.", tracking),
				Source:     sourcePerplexity,
				Details:    details,
			}, nil
		}
	}

	c := 0.3
	msg := fmt.Sprintf("Container number %q is not a valid ISO 6346 reference. Use the tracking URLs.", tracking)
	if validContainer {
		c = 0.5
		msg = fmt.Sprintf("Container number %q is a valid ISO 6346 reference. Use the tracking URLs.", tracking)
	}
	return &domain.VerificationResult{
		Verified:   validContainer,
		Confidence: conf(c),
		Message:    msg,
		Source:     sourceFormatValidation,
		Details:    details,
	}, nil
}
