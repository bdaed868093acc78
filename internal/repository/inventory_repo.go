package repository

import (
	"context"

	"github.com/aaron-lee-hebert/seller-metrics/ent"
	dbitem "github.com/aaron-lee-hebert/seller-metrics/ent/inventoryitem"
	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

type inventoryRepository struct {
	client *ent.Client
}

// NewInventoryRepository creates the inventory lookup store.
func NewInventoryRepository(client *ent.Client) service.InventoryRepository {
	return &inventoryRepository{client: client}
}

func (r *inventoryRepository) GetByID(ctx context.Context, userID, id int64) (*service.InventoryItem, error) {
	row, err := r.client.InventoryItem.Query().
		Where(
			dbitem.IDEQ(int(id)),
			dbitem.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return mapInventoryItem(row), nil
}

func (r *inventoryRepository) FindByMarketplaceSKU(ctx context.Context, userID int64, sku string) (*service.InventoryItem, error) {
	row, err := r.client.InventoryItem.Query().
		Where(
			dbitem.UserIDEQ(userID),
			dbitem.MarketplaceSkuEQ(sku),
		).
		Order(ent.Asc(dbitem.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return mapInventoryItem(row), nil
}

func (r *inventoryRepository) FindBySKU(ctx context.Context, userID int64, sku string) (*service.InventoryItem, error) {
	row, err := r.client.InventoryItem.Query().
		Where(
			dbitem.UserIDEQ(userID),
			dbitem.SkuEQ(sku),
		).
		Order(ent.Asc(dbitem.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return mapInventoryItem(row), nil
}

func (r *inventoryRepository) Update(ctx context.Context, item *service.InventoryItem) error {
	builder := r.client.InventoryItem.UpdateOneID(int(item.ID)).
		SetName(item.Name).
		SetStatus(item.Status).
		SetCurrency(item.PurchasePrice.Currency).
		SetPurchaseCents(item.PurchasePrice.Cents).
		SetNillableSku(nilIfEmpty(item.SKU)).
		SetNillableMarketplaceSku(nilIfEmpty(item.MarketplaceSKU)).
		SetNillableSoldAt(item.SoldAt)
	return builder.Exec(ctx)
}

func mapInventoryItem(row *ent.InventoryItem) *service.InventoryItem {
	if row == nil {
		return nil
	}
	return &service.InventoryItem{
		ID:             int64(row.ID),
		UserID:         row.UserID,
		Name:           row.Name,
		SKU:            derefString(row.Sku),
		MarketplaceSKU: derefString(row.MarketplaceSku),
		Status:         row.Status,
		PurchasePrice:  service.NewMoney(row.PurchaseCents, row.Currency),
		SoldAt:         copyTimePtr(row.SoldAt),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
