// Package dto maps service results onto the wire shapes handlers write.
package dto

import (
	"fmt"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

// ConnectionStatusDTO is the wire form of a credential projection.
type ConnectionStatusDTO struct {
	Provider                string     `json:"provider"`
	Connected               bool       `json:"connected"`
	ExternalAccountID       string     `json:"external_account_id,omitempty"`
	AccountDisplayName      string     `json:"account_display_name,omitempty"`
	Scope                   string     `json:"scope,omitempty"`
	LastSyncedAt            *time.Time `json:"last_synced_at,omitempty"`
	LastSyncError           string     `json:"last_sync_error,omitempty"`
	RequiresReauthorization bool       `json:"requires_reauthorization"`
}

// ConnectionStatusFromService converts the service projection.
func ConnectionStatusFromService(s *service.ConnectionStatus) ConnectionStatusDTO {
	return ConnectionStatusDTO{
		Provider:                string(s.Provider),
		Connected:               s.Connected,
		ExternalAccountID:       s.ExternalAccountID,
		AccountDisplayName:      s.AccountDisplayName,
		Scope:                   s.Scope,
		LastSyncedAt:            s.LastSyncedAt,
		LastSyncError:           s.LastSyncError,
		RequiresReauthorization: s.RequiresReauthorization,
	}
}

// SyncResultDTO is the wire form of one sync run's outcome.
type SyncResultDTO struct {
	Provider   string    `json:"provider"`
	Success    bool      `json:"success"`
	Fetched    int       `json:"fetched"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Skipped    int       `json:"skipped"`
	Linked     int       `json:"linked"`
	Errors     []string  `json:"errors"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// SyncResultFromService converts a sync result; the errors slice is
// always non-nil so clients see [] rather than null.
func SyncResultFromService(r *service.SyncResult) SyncResultDTO {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return SyncResultDTO{
		Provider:   string(r.Provider),
		Success:    r.Success(),
		Fetched:    r.Fetched,
		Created:    r.Created,
		Updated:    r.Updated,
		Skipped:    r.Skipped,
		Linked:     r.Linked,
		Errors:     errs,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
}

// ExternalRecordDTO is the wire form of a reconciled record.
type ExternalRecordDTO struct {
	ID              int64     `json:"id"`
	Provider        string    `json:"provider"`
	RecordType      string    `json:"record_type"`
	ExternalID      string    `json:"external_id"`
	TransactionDate time.Time `json:"transaction_date"`
	Counterparty    string    `json:"counterparty,omitempty"`
	Currency        string    `json:"currency"`
	Gross           string    `json:"gross"`
	Fee             string    `json:"fee"`
	Shipping        string    `json:"shipping"`
	Net             string    `json:"net"`
	Status          string    `json:"status"`
	ItemTitle       string    `json:"item_title,omitempty"`
	ItemSKU         string    `json:"item_sku,omitempty"`
	InventoryItemID *int64    `json:"inventory_item_id,omitempty"`
}

// ExternalRecordFromService converts one record. Amounts render as
// decimal strings, the currency rides alongside.
func ExternalRecordFromService(r *service.ExternalRecord) ExternalRecordDTO {
	return ExternalRecordDTO{
		ID:              r.ID,
		Provider:        string(r.Provider),
		RecordType:      string(r.RecordType),
		ExternalID:      r.ExternalID,
		TransactionDate: r.TransactionDate,
		Counterparty:    r.Counterparty,
		Currency:        r.Gross.Currency,
		Gross:           decimalString(r.Gross),
		Fee:             decimalString(r.Fee),
		Shipping:        decimalString(r.Shipping),
		Net:             decimalString(r.Net),
		Status:          string(r.Status),
		ItemTitle:       r.ItemTitle,
		ItemSKU:         r.ItemSKU,
		InventoryItemID: r.InventoryItemID,
	}
}

// ExternalRecordsFromService converts a record page.
func ExternalRecordsFromService(records []service.ExternalRecord) []ExternalRecordDTO {
	out := make([]ExternalRecordDTO, 0, len(records))
	for i := range records {
		out = append(out, ExternalRecordFromService(&records[i]))
	}
	return out
}

func decimalString(m service.Money) string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
