//go:build unit

package service

import (
	"context"
	"testing"
	"time"
)

func testFetchedRecord() FetchedRecord {
	return FetchedRecord{
		ExternalID:      "11-22222-33333",
		RecordType:      RecordTypeOrder,
		TransactionDate: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Counterparty:    "buyer-1",
		RawStatus:       "FULFILLED",
		Gross:           NewMoney(2599, "USD"),
		Fee:             NewMoney(338, "USD"),
		Shipping:        NewMoney(450, "USD"),
		ItemTitle:       "Vintage Camera",
		ItemSKU:         "CAM-001",
	}
}

func TestReconcileCreatesRecord(t *testing.T) {
	t.Parallel()

	records := newMemoryRecordRepo()
	svc := NewReconcileService(records, &mockInventoryRepo{}, nil)

	outcome, linked, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, testFetchedRecord())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Fatalf("outcome = %q, want created", outcome)
	}
	if linked {
		t.Fatal("no inventory match, must not report linked")
	}

	stored, _ := records.GetByExternalID(context.Background(), 1, ProviderMarketplace, "11-22222-33333")
	if stored == nil {
		t.Fatal("record not stored")
	}
	if stored.Net.Cents != 2261 {
		t.Fatalf("Net = %d, want gross minus fee", stored.Net.Cents)
	}
	if stored.Status != StatusCompleted {
		t.Fatalf("Status = %q", stored.Status)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	t.Parallel()

	records := newMemoryRecordRepo()
	svc := NewReconcileService(records, &mockInventoryRepo{}, nil)
	fetched := testFetchedRecord()

	outcome, _, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, fetched)
	if err != nil || outcome != OutcomeCreated {
		t.Fatalf("first pass: outcome=%q err=%v", outcome, err)
	}

	// Second run over the same payload updates in place, never duplicates.
	outcome, _, err = svc.Reconcile(context.Background(), 1, ProviderMarketplace, fetched)
	if err != nil {
		t.Fatalf("second pass error: %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("second pass outcome = %q, want updated", outcome)
	}
	if len(records.records) != 1 {
		t.Fatalf("stored records = %d, want 1", len(records.records))
	}
}

func TestReconcileUpdateOverwritesMutableFields(t *testing.T) {
	t.Parallel()

	records := newMemoryRecordRepo()
	svc := NewReconcileService(records, &mockInventoryRepo{}, nil)
	fetched := testFetchedRecord()
	fetched.RawStatus = "IN_PROGRESS"

	if _, _, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, fetched); err != nil {
		t.Fatalf("create: %v", err)
	}

	fetched.RawStatus = "FULFILLED"
	fetched.Gross = NewMoney(2799, "USD")
	if _, _, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, fetched); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, _ := records.GetByExternalID(context.Background(), 1, ProviderMarketplace, fetched.ExternalID)
	if stored.Status != StatusCompleted {
		t.Fatalf("Status = %q, want completed after update", stored.Status)
	}
	if stored.Gross.Cents != 2799 || stored.Net.Cents != 2799-338 {
		t.Fatalf("amounts not overwritten: gross=%d net=%d", stored.Gross.Cents, stored.Net.Cents)
	}
}

func TestReconcileRespectsTombstone(t *testing.T) {
	t.Parallel()

	records := newMemoryRecordRepo()
	svc := NewReconcileService(records, &mockInventoryRepo{}, nil)
	fetched := testFetchedRecord()

	// Simulate a record the user soft-deleted.
	records.tombstones[recordKey(1, ProviderMarketplace, fetched.ExternalID)] = true

	outcome, linked, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, fetched)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if outcome != OutcomeSkipped {
		t.Fatalf("outcome = %q, want skipped", outcome)
	}
	if linked {
		t.Fatal("a skipped record must not link inventory")
	}
	if len(records.records) != 0 {
		t.Fatal("tombstoned record must not be resurrected")
	}
}

func TestReconcileLinksByMarketplaceSKU(t *testing.T) {
	t.Parallel()

	item := &InventoryItem{ID: 7, UserID: 1, SKU: "INT-001", MarketplaceSKU: "CAM-001", Status: InventoryListed}
	var updated *InventoryItem
	inventory := &mockInventoryRepo{
		findByMarketplaceSKUFunc: func(_ context.Context, _ int64, sku string) (*InventoryItem, error) {
			if sku == "CAM-001" {
				return item, nil
			}
			return nil, nil
		},
		updateFunc: func(_ context.Context, i *InventoryItem) error {
			updated = i
			return nil
		},
	}

	records := newMemoryRecordRepo()
	svc := NewReconcileService(records, inventory, nil)

	outcome, linked, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, testFetchedRecord())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if outcome != OutcomeCreated || !linked {
		t.Fatalf("outcome=%q linked=%v", outcome, linked)
	}

	stored, _ := records.GetByExternalID(context.Background(), 1, ProviderMarketplace, "11-22222-33333")
	if stored.InventoryItemID == nil || *stored.InventoryItemID != 7 {
		t.Fatalf("InventoryItemID = %v, want 7", stored.InventoryItemID)
	}
	if updated == nil || updated.Status != InventorySold {
		t.Fatal("linked item must be marked sold")
	}
	if updated.SoldAt == nil || !updated.SoldAt.Equal(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("SoldAt = %v, want the transaction date", updated.SoldAt)
	}
}

func TestReconcileFallsBackToInternalSKU(t *testing.T) {
	t.Parallel()

	item := &InventoryItem{ID: 9, UserID: 1, SKU: "CAM-001", Status: InventoryAvailable}
	inventory := &mockInventoryRepo{
		findBySKUFunc: func(_ context.Context, _ int64, sku string) (*InventoryItem, error) {
			if sku == "CAM-001" {
				return item, nil
			}
			return nil, nil
		},
	}

	records := newMemoryRecordRepo()
	svc := NewReconcileService(records, inventory, nil)

	_, linked, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, testFetchedRecord())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if !linked {
		t.Fatal("internal SKU fallback must link")
	}

	stored, _ := records.GetByExternalID(context.Background(), 1, ProviderMarketplace, "11-22222-33333")
	if stored.InventoryItemID == nil || *stored.InventoryItemID != 9 {
		t.Fatalf("InventoryItemID = %v, want 9", stored.InventoryItemID)
	}
}

func TestReconcileKeepsExistingLink(t *testing.T) {
	t.Parallel()

	records := newMemoryRecordRepo()
	linkedID := int64(42)
	existing := &ExternalRecord{
		UserID:          1,
		Provider:        ProviderMarketplace,
		RecordType:      RecordTypeOrder,
		ExternalID:      "11-22222-33333",
		Gross:           NewMoney(2599, "USD"),
		Fee:             NewMoney(338, "USD"),
		Shipping:        NewMoney(450, "USD"),
		Net:             NewMoney(2261, "USD"),
		Status:          StatusActive,
		InventoryItemID: &linkedID,
	}
	if err := records.Create(context.Background(), existing); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// GetByID returning nil means the linked item was deleted; the
	// inventory side effect is skipped, not an error.
	inventory := &mockInventoryRepo{
		getByIDFunc: func(context.Context, int64, int64) (*InventoryItem, error) {
			return nil, nil
		},
	}
	svc := NewReconcileService(records, inventory, nil)

	outcome, linked, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, testFetchedRecord())
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Fatalf("outcome = %q", outcome)
	}
	if linked {
		t.Fatal("an existing link must not be counted as newly linked")
	}

	stored, _ := records.GetByExternalID(context.Background(), 1, ProviderMarketplace, "11-22222-33333")
	if stored.InventoryItemID == nil || *stored.InventoryItemID != 42 {
		t.Fatalf("existing link was touched: %v", stored.InventoryItemID)
	}
}

func TestReconcileMarkSoldKeepsSoldAt(t *testing.T) {
	t.Parallel()

	already := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	item := &InventoryItem{ID: 3, UserID: 1, MarketplaceSKU: "CAM-001", Status: InventoryListed, SoldAt: &already}
	var updated *InventoryItem
	inventory := &mockInventoryRepo{
		findByMarketplaceSKUFunc: func(context.Context, int64, string) (*InventoryItem, error) {
			return item, nil
		},
		updateFunc: func(_ context.Context, i *InventoryItem) error {
			updated = i
			return nil
		},
	}

	svc := NewReconcileService(newMemoryRecordRepo(), inventory, nil)
	if _, _, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, testFetchedRecord()); err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if updated == nil {
		t.Fatal("item not updated")
	}
	if !updated.SoldAt.Equal(already) {
		t.Fatalf("SoldAt = %v, an existing timestamp must be kept", updated.SoldAt)
	}
}

func TestReconcileMissingExternalID(t *testing.T) {
	t.Parallel()

	svc := NewReconcileService(newMemoryRecordRepo(), &mockInventoryRepo{}, nil)
	fetched := testFetchedRecord()
	fetched.ExternalID = ""

	if _, _, err := svc.Reconcile(context.Background(), 1, ProviderMarketplace, fetched); err == nil {
		t.Fatal("expected error for missing external id")
	}
}
