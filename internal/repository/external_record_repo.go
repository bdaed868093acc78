package repository

import (
	"context"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/ent"
	dbrecord "github.com/aaron-lee-hebert/seller-metrics/ent/externalrecord"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/pagination"
	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

type externalRecordRepository struct {
	client *ent.Client
}

// NewExternalRecordRepository creates the reconciled-record store.
func NewExternalRecordRepository(client *ent.Client) service.ExternalRecordRepository {
	return &externalRecordRepository{client: client}
}

func (r *externalRecordRepository) GetByExternalID(ctx context.Context, userID int64, provider service.ProviderKind, externalID string) (*service.ExternalRecord, error) {
	row, err := r.client.ExternalRecord.Query().
		Where(
			dbrecord.UserIDEQ(userID),
			dbrecord.ProviderEQ(string(provider)),
			dbrecord.ExternalIDEQ(externalID),
			dbrecord.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return mapExternalRecord(row), nil
}

// WasTombstoned reports whether a soft-deleted row exists for the key.
// This is the resurrection guard: the reconciler skips such records.
func (r *externalRecordRepository) WasTombstoned(ctx context.Context, userID int64, provider service.ProviderKind, externalID string) (bool, error) {
	return r.client.ExternalRecord.Query().
		Where(
			dbrecord.UserIDEQ(userID),
			dbrecord.ProviderEQ(string(provider)),
			dbrecord.ExternalIDEQ(externalID),
			dbrecord.DeletedAtNotNil(),
		).
		Exist(ctx)
}

func (r *externalRecordRepository) Create(ctx context.Context, record *service.ExternalRecord) error {
	builder := r.client.ExternalRecord.Create().
		SetUserID(record.UserID).
		SetProvider(string(record.Provider)).
		SetRecordType(string(record.RecordType)).
		SetExternalID(record.ExternalID).
		SetNillableLegacyExternalID(nilIfEmpty(record.LegacyExternalID)).
		SetTransactionDate(record.TransactionDate).
		SetNillableCounterparty(nilIfEmpty(record.Counterparty)).
		SetCurrency(record.Gross.Currency).
		SetGrossCents(record.Gross.Cents).
		SetFeeCents(record.Fee.Cents).
		SetShippingCents(record.Shipping.Cents).
		SetNetCents(record.Net.Cents).
		SetStatus(string(record.Status)).
		SetNillableItemTitle(nilIfEmpty(record.ItemTitle)).
		SetNillableItemSku(nilIfEmpty(record.ItemSKU)).
		SetNillableInventoryItemID(record.InventoryItemID).
		SetLastSyncedAt(record.LastSyncedAt)

	row, err := builder.Save(ctx)
	if err != nil {
		return err
	}
	record.ID = int64(row.ID)
	record.CreatedAt = row.CreatedAt
	record.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *externalRecordRepository) Update(ctx context.Context, record *service.ExternalRecord) error {
	builder := r.client.ExternalRecord.UpdateOneID(int(record.ID)).
		SetCurrency(record.Gross.Currency).
		SetGrossCents(record.Gross.Cents).
		SetFeeCents(record.Fee.Cents).
		SetShippingCents(record.Shipping.Cents).
		SetNetCents(record.Net.Cents).
		SetStatus(string(record.Status)).
		SetLastSyncedAt(record.LastSyncedAt)
	if record.Counterparty != "" {
		builder.SetCounterparty(record.Counterparty)
	}
	if record.InventoryItemID != nil {
		builder.SetInventoryItemID(*record.InventoryItemID)
	}
	return builder.Exec(ctx)
}

func (r *externalRecordRepository) List(ctx context.Context, userID int64, recordType string, params pagination.PaginationParams) ([]service.ExternalRecord, *pagination.PaginationResult, error) {
	query := r.client.ExternalRecord.Query().
		Where(
			dbrecord.UserIDEQ(userID),
			dbrecord.DeletedAtIsNil(),
		)
	if recordType != "" {
		query = query.Where(dbrecord.RecordTypeEQ(recordType))
	}
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, nil, err
	}
	rows, err := query.
		Order(ent.Desc(dbrecord.FieldTransactionDate)).
		Limit(params.Limit()).
		Offset(params.Offset()).
		All(ctx)
	if err != nil {
		return nil, nil, err
	}
	records := make([]service.ExternalRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, *mapExternalRecord(row))
	}
	return records, pagination.NewResult(int64(total), params), nil
}

// SoftDelete tombstones a record. Returns false when the record does not
// exist or is already deleted.
func (r *externalRecordRepository) SoftDelete(ctx context.Context, userID, id int64) (bool, error) {
	n, err := r.client.ExternalRecord.Update().
		Where(
			dbrecord.IDEQ(int(id)),
			dbrecord.UserIDEQ(userID),
			dbrecord.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func mapExternalRecord(row *ent.ExternalRecord) *service.ExternalRecord {
	if row == nil {
		return nil
	}
	rec := &service.ExternalRecord{
		ID:               int64(row.ID),
		UserID:           row.UserID,
		Provider:         service.ProviderKind(row.Provider),
		RecordType:       service.RecordType(row.RecordType),
		ExternalID:       row.ExternalID,
		LegacyExternalID: derefString(row.LegacyExternalID),
		TransactionDate:  row.TransactionDate,
		Counterparty:     derefString(row.Counterparty),
		Gross:            service.NewMoney(row.GrossCents, row.Currency),
		Fee:              service.NewMoney(row.FeeCents, row.Currency),
		Shipping:         service.NewMoney(row.ShippingCents, row.Currency),
		Net:              service.NewMoney(row.NetCents, row.Currency),
		Status:           service.RecordStatus(row.Status),
		ItemTitle:        derefString(row.ItemTitle),
		ItemSKU:          derefString(row.ItemSku),
		LastSyncedAt:     row.LastSyncedAt,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if row.InventoryItemID != nil {
		id := *row.InventoryItemID
		rec.InventoryItemID = &id
	}
	return rec
}
