// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aaron-lee-hebert/seller-metrics/ent/inventoryitem"
	"github.com/aaron-lee-hebert/seller-metrics/ent/predicate"
)

// InventoryItemUpdate is the builder for updating InventoryItem entities.
type InventoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryItemMutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdate) Where(ps ...predicate.InventoryItem) *InventoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdate) SetUpdatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InventoryItemUpdate) SetUserID(v int64) *InventoryItemUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableUserID(v *int64) *InventoryItemUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InventoryItemUpdate) AddUserID(v int64) *InventoryItemUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdate) SetName(v string) *InventoryItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableName(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *InventoryItemUpdate) SetSku(v string) *InventoryItemUpdate {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableSku(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *InventoryItemUpdate) ClearSku() *InventoryItemUpdate {
	_u.mutation.ClearSku()
	return _u
}

// SetMarketplaceSku sets the "marketplace_sku" field.
func (_u *InventoryItemUpdate) SetMarketplaceSku(v string) *InventoryItemUpdate {
	_u.mutation.SetMarketplaceSku(v)
	return _u
}

// SetNillableMarketplaceSku sets the "marketplace_sku" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableMarketplaceSku(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetMarketplaceSku(*v)
	}
	return _u
}

// ClearMarketplaceSku clears the value of the "marketplace_sku" field.
func (_u *InventoryItemUpdate) ClearMarketplaceSku() *InventoryItemUpdate {
	_u.mutation.ClearMarketplaceSku()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InventoryItemUpdate) SetStatus(v string) *InventoryItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableStatus(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InventoryItemUpdate) SetCurrency(v string) *InventoryItemUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableCurrency(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPurchaseCents sets the "purchase_cents" field.
func (_u *InventoryItemUpdate) SetPurchaseCents(v int64) *InventoryItemUpdate {
	_u.mutation.ResetPurchaseCents()
	_u.mutation.SetPurchaseCents(v)
	return _u
}

// SetNillablePurchaseCents sets the "purchase_cents" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillablePurchaseCents(v *int64) *InventoryItemUpdate {
	if v != nil {
		_u.SetPurchaseCents(*v)
	}
	return _u
}

// AddPurchaseCents adds value to the "purchase_cents" field.
func (_u *InventoryItemUpdate) AddPurchaseCents(v int64) *InventoryItemUpdate {
	_u.mutation.AddPurchaseCents(v)
	return _u
}

// SetSoldAt sets the "sold_at" field.
func (_u *InventoryItemUpdate) SetSoldAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetSoldAt(v)
	return _u
}

// SetNillableSoldAt sets the "sold_at" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableSoldAt(v *time.Time) *InventoryItemUpdate {
	if v != nil {
		_u.SetSoldAt(*v)
	}
	return _u
}

// ClearSoldAt clears the value of the "sold_at" field.
func (_u *InventoryItemUpdate) ClearSoldAt() *InventoryItemUpdate {
	_u.mutation.ClearSoldAt()
	return _u
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdate) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *InventoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(inventoryitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(inventoryitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(inventoryitem.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(inventoryitem.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.MarketplaceSku(); ok {
		_spec.SetField(inventoryitem.FieldMarketplaceSku, field.TypeString, value)
	}
	if _u.mutation.MarketplaceSkuCleared() {
		_spec.ClearField(inventoryitem.FieldMarketplaceSku, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inventoryitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(inventoryitem.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PurchaseCents(); ok {
		_spec.SetField(inventoryitem.FieldPurchaseCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPurchaseCents(); ok {
		_spec.AddField(inventoryitem.FieldPurchaseCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SoldAt(); ok {
		_spec.SetField(inventoryitem.FieldSoldAt, field.TypeTime, value)
	}
	if _u.mutation.SoldAtCleared() {
		_spec.ClearField(inventoryitem.FieldSoldAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryItemUpdateOne is the builder for updating a single InventoryItem entity.
type InventoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdateOne) SetUpdatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InventoryItemUpdateOne) SetUserID(v int64) *InventoryItemUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableUserID(v *int64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *InventoryItemUpdateOne) AddUserID(v int64) *InventoryItemUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetName sets the "name" field.
func (_u *InventoryItemUpdateOne) SetName(v string) *InventoryItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableName(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSku sets the "sku" field.
func (_u *InventoryItemUpdateOne) SetSku(v string) *InventoryItemUpdateOne {
	_u.mutation.SetSku(v)
	return _u
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableSku(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetSku(*v)
	}
	return _u
}

// ClearSku clears the value of the "sku" field.
func (_u *InventoryItemUpdateOne) ClearSku() *InventoryItemUpdateOne {
	_u.mutation.ClearSku()
	return _u
}

// SetMarketplaceSku sets the "marketplace_sku" field.
func (_u *InventoryItemUpdateOne) SetMarketplaceSku(v string) *InventoryItemUpdateOne {
	_u.mutation.SetMarketplaceSku(v)
	return _u
}

// SetNillableMarketplaceSku sets the "marketplace_sku" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableMarketplaceSku(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetMarketplaceSku(*v)
	}
	return _u
}

// ClearMarketplaceSku clears the value of the "marketplace_sku" field.
func (_u *InventoryItemUpdateOne) ClearMarketplaceSku() *InventoryItemUpdateOne {
	_u.mutation.ClearMarketplaceSku()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InventoryItemUpdateOne) SetStatus(v string) *InventoryItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableStatus(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InventoryItemUpdateOne) SetCurrency(v string) *InventoryItemUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableCurrency(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetPurchaseCents sets the "purchase_cents" field.
func (_u *InventoryItemUpdateOne) SetPurchaseCents(v int64) *InventoryItemUpdateOne {
	_u.mutation.ResetPurchaseCents()
	_u.mutation.SetPurchaseCents(v)
	return _u
}

// SetNillablePurchaseCents sets the "purchase_cents" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillablePurchaseCents(v *int64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetPurchaseCents(*v)
	}
	return _u
}

// AddPurchaseCents adds value to the "purchase_cents" field.
func (_u *InventoryItemUpdateOne) AddPurchaseCents(v int64) *InventoryItemUpdateOne {
	_u.mutation.AddPurchaseCents(v)
	return _u
}

// SetSoldAt sets the "sold_at" field.
func (_u *InventoryItemUpdateOne) SetSoldAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetSoldAt(v)
	return _u
}

// SetNillableSoldAt sets the "sold_at" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableSoldAt(v *time.Time) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetSoldAt(*v)
	}
	return _u
}

// ClearSoldAt clears the value of the "sold_at" field.
func (_u *InventoryItemUpdateOne) ClearSoldAt() *InventoryItemUpdateOne {
	_u.mutation.ClearSoldAt()
	return _u
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdateOne) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdateOne) Where(ps ...predicate.InventoryItem) *InventoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryItemUpdateOne) Select(field string, fields ...string) *InventoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryItem entity.
func (_u *InventoryItemUpdateOne) Save(ctx context.Context) (*InventoryItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) SaveX(ctx context.Context) *InventoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *InventoryItemUpdateOne) sqlSave(ctx context.Context) (_node *InventoryItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InventoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for _, f := range fields {
			if !inventoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inventoryitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(inventoryitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(inventoryitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sku(); ok {
		_spec.SetField(inventoryitem.FieldSku, field.TypeString, value)
	}
	if _u.mutation.SkuCleared() {
		_spec.ClearField(inventoryitem.FieldSku, field.TypeString)
	}
	if value, ok := _u.mutation.MarketplaceSku(); ok {
		_spec.SetField(inventoryitem.FieldMarketplaceSku, field.TypeString, value)
	}
	if _u.mutation.MarketplaceSkuCleared() {
		_spec.ClearField(inventoryitem.FieldMarketplaceSku, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inventoryitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(inventoryitem.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.PurchaseCents(); ok {
		_spec.SetField(inventoryitem.FieldPurchaseCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPurchaseCents(); ok {
		_spec.AddField(inventoryitem.FieldPurchaseCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SoldAt(); ok {
		_spec.SetField(inventoryitem.FieldSoldAt, field.TypeTime, value)
	}
	if _u.mutation.SoldAtCleared() {
		_spec.ClearField(inventoryitem.FieldSoldAt, field.TypeTime)
	}
	_node = &InventoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
