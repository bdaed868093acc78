package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ReconcileOutcome classifies what one reconciliation call did.
type ReconcileOutcome string

const (
	OutcomeCreated ReconcileOutcome = "created"
	OutcomeUpdated ReconcileOutcome = "updated"
	OutcomeSkipped ReconcileOutcome = "skipped"
)

// ReconcileService applies one fetched record against local storage:
// create, update in place, or skip when the record was soft-deleted
// locally. Repeated syncs over the same data are idempotent.
type ReconcileService struct {
	records   ExternalRecordRepository
	inventory InventoryRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewReconcileService creates a reconciliation engine.
func NewReconcileService(records ExternalRecordRepository, inventory InventoryRepository, logger *zap.Logger) *ReconcileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconcileService{records: records, inventory: inventory, logger: logger, now: time.Now}
}

// Reconcile upserts one fetched record for the user. The returned linked
// flag reports whether an inventory link was set by this call.
func (s *ReconcileService) Reconcile(ctx context.Context, userID int64, provider ProviderKind, fetched FetchedRecord) (ReconcileOutcome, bool, error) {
	if fetched.ExternalID == "" {
		return "", false, fmt.Errorf("fetched record missing external id")
	}

	existing, err := s.records.GetByExternalID(ctx, userID, provider, fetched.ExternalID)
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		linked, err := s.updateInPlace(ctx, existing, provider, fetched)
		if err != nil {
			return "", false, err
		}
		return OutcomeUpdated, linked, nil
	}

	tombstoned, err := s.records.WasTombstoned(ctx, userID, provider, fetched.ExternalID)
	if err != nil {
		return "", false, err
	}
	if tombstoned {
		// The user deleted this record on purpose; never resurrect it.
		return OutcomeSkipped, false, nil
	}

	record, linked, err := s.createRecord(ctx, userID, provider, fetched)
	if err != nil {
		return "", false, err
	}
	if err := s.records.Create(ctx, record); err != nil {
		return "", false, err
	}
	return OutcomeCreated, linked, nil
}

// updateInPlace overwrites the mutable fields of an existing record.
// External id, creation timestamp and an already-set inventory link are
// never touched; a record that has no link yet gets one more chance at
// SKU matching.
func (s *ReconcileService) updateInPlace(ctx context.Context, existing *ExternalRecord, provider ProviderKind, fetched FetchedRecord) (bool, error) {
	existing.Status = NormalizeStatus(provider, fetched.RawStatus)
	existing.Gross = fetched.Gross
	existing.Fee = fetched.Fee
	existing.Shipping = fetched.Shipping
	net, err := fetched.Gross.Sub(fetched.Fee)
	if err != nil {
		return false, err
	}
	existing.Net = net
	if fetched.Counterparty != "" {
		existing.Counterparty = fetched.Counterparty
	}
	existing.LastSyncedAt = s.now()

	linked := false
	if existing.InventoryItemID == nil {
		item, err := s.findInventoryMatch(ctx, existing.UserID, fetched.ItemSKU)
		if err != nil {
			return false, err
		}
		if item != nil {
			existing.InventoryItemID = &item.ID
			linked = true
			if err := s.markSold(ctx, item, fetched.TransactionDate); err != nil {
				return false, err
			}
		}
	} else {
		// Verify the linked item still exists; a deleted item means the
		// inventory side effect is skipped, not an error.
		item, err := s.inventory.GetByID(ctx, existing.UserID, *existing.InventoryItemID)
		if err != nil {
			return false, err
		}
		if item != nil && existing.Status == StatusCompleted {
			if err := s.markSold(ctx, item, fetched.TransactionDate); err != nil {
				return false, err
			}
		}
	}

	if err := s.records.Update(ctx, existing); err != nil {
		return false, err
	}
	return linked, nil
}

func (s *ReconcileService) createRecord(ctx context.Context, userID int64, provider ProviderKind, fetched FetchedRecord) (*ExternalRecord, bool, error) {
	net, err := fetched.Gross.Sub(fetched.Fee)
	if err != nil {
		return nil, false, err
	}
	record := &ExternalRecord{
		UserID:           userID,
		Provider:         provider,
		RecordType:       fetched.RecordType,
		ExternalID:       fetched.ExternalID,
		LegacyExternalID: fetched.LegacyExternalID,
		TransactionDate:  fetched.TransactionDate,
		Counterparty:     fetched.Counterparty,
		Gross:            fetched.Gross,
		Fee:              fetched.Fee,
		Shipping:         fetched.Shipping,
		Net:              net,
		Status:           NormalizeStatus(provider, fetched.RawStatus),
		ItemTitle:        fetched.ItemTitle,
		ItemSKU:          fetched.ItemSKU,
		LastSyncedAt:     s.now(),
	}

	linked := false
	item, err := s.findInventoryMatch(ctx, userID, fetched.ItemSKU)
	if err != nil {
		return nil, false, err
	}
	if item != nil {
		record.InventoryItemID = &item.ID
		linked = true
		if err := s.markSold(ctx, item, fetched.TransactionDate); err != nil {
			return nil, false, err
		}
	}
	return record, linked, nil
}

// findInventoryMatch runs the linking fallback chain: the marketplace
// SKU field first, then the seller's internal SKU. No match is a normal
// outcome, not an error.
func (s *ReconcileService) findInventoryMatch(ctx context.Context, userID int64, sku string) (*InventoryItem, error) {
	if sku == "" {
		return nil, nil
	}
	item, err := s.inventory.FindByMarketplaceSKU(ctx, userID, sku)
	if err != nil {
		return nil, err
	}
	if item != nil {
		return item, nil
	}
	return s.inventory.FindBySKU(ctx, userID, sku)
}

// markSold transitions a linked item to sold, keeping an existing
// sold-at timestamp when one was already recorded.
func (s *ReconcileService) markSold(ctx context.Context, item *InventoryItem, soldAt time.Time) error {
	if item.Status == InventorySold {
		return nil
	}
	item.Status = InventorySold
	if item.SoldAt == nil {
		item.SoldAt = &soldAt
	}
	s.logger.Debug("inventory item marked sold",
		zap.Int64("user_id", item.UserID),
		zap.Int64("item_id", item.ID))
	return s.inventory.Update(ctx, item)
}
