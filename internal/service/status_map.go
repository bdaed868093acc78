package service

import "strings"

// Provider status strings are normalized with a fixed lookup table.
// Unknown values fall back to a conservative default instead of failing
// the record, so a provider adding a status never breaks a sync.

var marketplaceStatusTable = map[string]RecordStatus{
	"not_started":      StatusActive,
	"in_progress":      StatusActive,
	"partially_funded": StatusActive,
	"fulfilled":        StatusCompleted,
	"shipped":          StatusCompleted,
	"delivered":        StatusCompleted,
	"cancelled":        StatusCancelled,
	"canceled":         StatusCancelled,
	"refunded":         StatusCancelled,
}

var invoicingStatusTable = map[string]RecordStatus{
	"draft":    StatusDraft,
	"saved":    StatusDraft,
	"sent":     StatusSent,
	"viewed":   StatusSent,
	"unpaid":   StatusSent,
	"partial":  StatusSent,
	"paid":     StatusPaid,
	"overpaid": StatusPaid,
	"overdue":  StatusOverdue,
}

// NormalizeStatus maps a raw provider status onto the internal
// vocabulary. The match is case-insensitive; hyphens and spaces are
// treated as underscores.
func NormalizeStatus(provider ProviderKind, raw string) RecordStatus {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	switch provider {
	case ProviderInvoicing:
		if status, ok := invoicingStatusTable[key]; ok {
			return status
		}
		return StatusDraft
	default:
		if status, ok := marketplaceStatusTable[key]; ok {
			return status
		}
		return StatusActive
	}
}
