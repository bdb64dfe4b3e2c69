package lc

import (
	"fmt"
	"strings"

	"lcintel/internal/domain"
)

// ShipmentValidators returns the shipping route consistency rules.
func ShipmentValidators() []*rule {
	portOfLoading := &rule{
		ruleKey: "SHIP_001", ruleName: "Port of Loading Consistency",
		severity: domain.SeverityWarning,
	}
	portOfLoading.validate = func(d *Docs) []domain.ValidationCheck {
		lcPort, ok := d.LCField("port_loading")
		if !ok {
			return nil
		}
		blPort, ok := d.SupportingField(DocBillOfLading, "port_of_loading")
		if !ok {
			return nil
		}
		a := strings.ToLower(strings.TrimSpace(lcPort))
		b := strings.ToLower(strings.TrimSpace(blPort))
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return portOfLoading.check(true, fmt.Sprintf("Port of loading %q matches bill of lading %q", lcPort, blPort))
		}
		return portOfLoading.check(false, fmt.Sprintf("Port of loading %q does not match bill of lading %q", lcPort, blPort))
	}

	portOfDestination := &rule{
		ruleKey: "SHIP_002", ruleName: "Port of Destination Consistency",
		severity: domain.SeverityWarning,
	}
	portOfDestination.validate = func(d *Docs) []domain.ValidationCheck {
		lcPort, ok := d.LCField("port_destination")
		if !ok {
			return nil
		}
		blPort, ok := d.SupportingField(DocBillOfLading, "port_of_discharge")
		if !ok {
			blPort, ok = d.SupportingField(DocBillOfLading, "port_of_destination")
			if !ok {
				return nil
			}
		}
		a := strings.ToLower(strings.TrimSpace(lcPort))
		b := strings.ToLower(strings.TrimSpace(blPort))
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return portOfDestination.check(true, fmt.Sprintf("Port of destination %q matches bill of lading %q", lcPort, blPort))
		}
		return portOfDestination.check(false, fmt.Sprintf("Port of destination %q does not match bill of lading %q", lcPort, blPort))
	}

	return []*rule{portOfLoading, portOfDestination}
}
