package invoicing

import "strings"

// Canonical payment states stored locally. The provider vocabulary is
// wider (SETTLED vs PAID, capitalization drift across API versions), so
// everything funnels through NormalizeStatus before touching storage.
const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
	StatusFailed  = "FAILED"
	StatusExpired = "EXPIRED"
)

// NormalizeStatus maps a provider status string to the canonical set.
// Unknown values collapse to PENDING so a new provider state can never
// flip a transaction into a terminal state by accident.
func NormalizeStatus(providerStatus string) string {
	switch strings.ToUpper(strings.TrimSpace(providerStatus)) {
	case "SETTLED", "PAID":
		return StatusPaid
	case "EXPIRED":
		return StatusExpired
	case "FAILED":
		return StatusFailed
	default:
		return StatusPending
	}
}
