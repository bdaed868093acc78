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
)

// InventoryItemCreate is the builder for creating a InventoryItem entity.
type InventoryItemCreate struct {
	config
	mutation *InventoryItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InventoryItemCreate) SetCreatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCreatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InventoryItemCreate) SetUpdatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUpdatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InventoryItemCreate) SetUserID(v int64) *InventoryItemCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *InventoryItemCreate) SetName(v string) *InventoryItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSku sets the "sku" field.
func (_c *InventoryItemCreate) SetSku(v string) *InventoryItemCreate {
	_c.mutation.SetSku(v)
	return _c
}

// SetNillableSku sets the "sku" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableSku(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetSku(*v)
	}
	return _c
}

// SetMarketplaceSku sets the "marketplace_sku" field.
func (_c *InventoryItemCreate) SetMarketplaceSku(v string) *InventoryItemCreate {
	_c.mutation.SetMarketplaceSku(v)
	return _c
}

// SetNillableMarketplaceSku sets the "marketplace_sku" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableMarketplaceSku(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetMarketplaceSku(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InventoryItemCreate) SetStatus(v string) *InventoryItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableStatus(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *InventoryItemCreate) SetCurrency(v string) *InventoryItemCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCurrency(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetPurchaseCents sets the "purchase_cents" field.
func (_c *InventoryItemCreate) SetPurchaseCents(v int64) *InventoryItemCreate {
	_c.mutation.SetPurchaseCents(v)
	return _c
}

// SetNillablePurchaseCents sets the "purchase_cents" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillablePurchaseCents(v *int64) *InventoryItemCreate {
	if v != nil {
		_c.SetPurchaseCents(*v)
	}
	return _c
}

// SetSoldAt sets the "sold_at" field.
func (_c *InventoryItemCreate) SetSoldAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetSoldAt(v)
	return _c
}

// SetNillableSoldAt sets the "sold_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableSoldAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetSoldAt(*v)
	}
	return _c
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_c *InventoryItemCreate) Mutation() *InventoryItemMutation {
	return _c.mutation
}

// Save creates the InventoryItem in the database.
func (_c *InventoryItemCreate) Save(ctx context.Context) (*InventoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InventoryItemCreate) SaveX(ctx context.Context) *InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InventoryItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inventoryitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := inventoryitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := inventoryitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := inventoryitem.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.PurchaseCents(); !ok {
		v := inventoryitem.DefaultPurchaseCents
		_c.mutation.SetPurchaseCents(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InventoryItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InventoryItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InventoryItem.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InventoryItem.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "InventoryItem.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InventoryItem.status"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "InventoryItem.currency"`)}
	}
	if _, ok := _c.mutation.PurchaseCents(); !ok {
		return &ValidationError{Name: "purchase_cents", err: errors.New(`ent: missing required field "InventoryItem.purchase_cents"`)}
	}
	return nil
}

func (_c *InventoryItemCreate) sqlSave(ctx context.Context) (*InventoryItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InventoryItemCreate) createSpec() (*InventoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InventoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inventoryitem.Table, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inventoryitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(inventoryitem.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(inventoryitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Sku(); ok {
		_spec.SetField(inventoryitem.FieldSku, field.TypeString, value)
		_node.Sku = &value
	}
	if value, ok := _c.mutation.MarketplaceSku(); ok {
		_spec.SetField(inventoryitem.FieldMarketplaceSku, field.TypeString, value)
		_node.MarketplaceSku = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(inventoryitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(inventoryitem.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.PurchaseCents(); ok {
		_spec.SetField(inventoryitem.FieldPurchaseCents, field.TypeInt64, value)
		_node.PurchaseCents = value
	}
	if value, ok := _c.mutation.SoldAt(); ok {
		_spec.SetField(inventoryitem.FieldSoldAt, field.TypeTime, value)
		_node.SoldAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InventoryItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InventoryItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InventoryItemCreate) OnConflict(opts ...sql.ConflictOption) *InventoryItemUpsertOne {
	_c.conflict = opts
	return &InventoryItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InventoryItemCreate) OnConflictColumns(columns ...string) *InventoryItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InventoryItemUpsertOne{
		create: _c,
	}
}

type (
	// InventoryItemUpsertOne is the builder for "upsert"-ing
	//  one InventoryItem node.
	InventoryItemUpsertOne struct {
		create *InventoryItemCreate
	}

	// InventoryItemUpsert is the "OnConflict" setter.
	InventoryItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsert) SetUpdatedAt(v time.Time) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateUpdatedAt() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *InventoryItemUpsert) SetUserID(v int64) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateUserID() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *InventoryItemUpsert) AddUserID(v int64) *InventoryItemUpsert {
	u.Add(inventoryitem.FieldUserID, v)
	return u
}

// SetName sets the "name" field.
func (u *InventoryItemUpsert) SetName(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateName() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldName)
	return u
}

// SetSku sets the "sku" field.
func (u *InventoryItemUpsert) SetSku(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldSku, v)
	return u
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateSku() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldSku)
	return u
}

// ClearSku clears the value of the "sku" field.
func (u *InventoryItemUpsert) ClearSku() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldSku)
	return u
}

// SetMarketplaceSku sets the "marketplace_sku" field.
func (u *InventoryItemUpsert) SetMarketplaceSku(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldMarketplaceSku, v)
	return u
}

// UpdateMarketplaceSku sets the "marketplace_sku" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateMarketplaceSku() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldMarketplaceSku)
	return u
}

// ClearMarketplaceSku clears the value of the "marketplace_sku" field.
func (u *InventoryItemUpsert) ClearMarketplaceSku() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldMarketplaceSku)
	return u
}

// SetStatus sets the "status" field.
func (u *InventoryItemUpsert) SetStatus(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateStatus() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldStatus)
	return u
}

// SetCurrency sets the "currency" field.
func (u *InventoryItemUpsert) SetCurrency(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateCurrency() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldCurrency)
	return u
}

// SetPurchaseCents sets the "purchase_cents" field.
func (u *InventoryItemUpsert) SetPurchaseCents(v int64) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldPurchaseCents, v)
	return u
}

// UpdatePurchaseCents sets the "purchase_cents" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdatePurchaseCents() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldPurchaseCents)
	return u
}

// AddPurchaseCents adds v to the "purchase_cents" field.
func (u *InventoryItemUpsert) AddPurchaseCents(v int64) *InventoryItemUpsert {
	u.Add(inventoryitem.FieldPurchaseCents, v)
	return u
}

// SetSoldAt sets the "sold_at" field.
func (u *InventoryItemUpsert) SetSoldAt(v time.Time) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldSoldAt, v)
	return u
}

// UpdateSoldAt sets the "sold_at" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateSoldAt() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldSoldAt)
	return u
}

// ClearSoldAt clears the value of the "sold_at" field.
func (u *InventoryItemUpsert) ClearSoldAt() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldSoldAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *InventoryItemUpsertOne) UpdateNewValues() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(inventoryitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InventoryItemUpsertOne) Ignore() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InventoryItemUpsertOne) DoNothing() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InventoryItemCreate.OnConflict
// documentation for more info.
func (u *InventoryItemUpsertOne) Update(set func(*InventoryItemUpsert)) *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InventoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsertOne) SetUpdatedAt(v time.Time) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateUpdatedAt() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *InventoryItemUpsertOne) SetUserID(v int64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *InventoryItemUpsertOne) AddUserID(v int64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateUserID() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *InventoryItemUpsertOne) SetName(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateName() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateName()
	})
}

// SetSku sets the "sku" field.
func (u *InventoryItemUpsertOne) SetSku(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateSku() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateSku()
	})
}

// ClearSku clears the value of the "sku" field.
func (u *InventoryItemUpsertOne) ClearSku() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearSku()
	})
}

// SetMarketplaceSku sets the "marketplace_sku" field.
func (u *InventoryItemUpsertOne) SetMarketplaceSku(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetMarketplaceSku(v)
	})
}

// UpdateMarketplaceSku sets the "marketplace_sku" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateMarketplaceSku() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateMarketplaceSku()
	})
}

// ClearMarketplaceSku clears the value of the "marketplace_sku" field.
func (u *InventoryItemUpsertOne) ClearMarketplaceSku() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearMarketplaceSku()
	})
}

// SetStatus sets the "status" field.
func (u *InventoryItemUpsertOne) SetStatus(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateStatus() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrency sets the "currency" field.
func (u *InventoryItemUpsertOne) SetCurrency(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateCurrency() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateCurrency()
	})
}

// SetPurchaseCents sets the "purchase_cents" field.
func (u *InventoryItemUpsertOne) SetPurchaseCents(v int64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetPurchaseCents(v)
	})
}

// AddPurchaseCents adds v to the "purchase_cents" field.
func (u *InventoryItemUpsertOne) AddPurchaseCents(v int64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddPurchaseCents(v)
	})
}

// UpdatePurchaseCents sets the "purchase_cents" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdatePurchaseCents() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdatePurchaseCents()
	})
}

// SetSoldAt sets the "sold_at" field.
func (u *InventoryItemUpsertOne) SetSoldAt(v time.Time) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetSoldAt(v)
	})
}

// UpdateSoldAt sets the "sold_at" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateSoldAt() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateSoldAt()
	})
}

// ClearSoldAt clears the value of the "sold_at" field.
func (u *InventoryItemUpsertOne) ClearSoldAt() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearSoldAt()
	})
}

// Exec executes the query.
func (u *InventoryItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InventoryItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InventoryItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InventoryItemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InventoryItemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InventoryItemCreateBulk is the builder for creating many InventoryItem entities in bulk.
type InventoryItemCreateBulk struct {
	config
	err      error
	builders []*InventoryItemCreate
	conflict []sql.ConflictOption
}

// Save creates the InventoryItem entities in the database.
func (_c *InventoryItemCreateBulk) Save(ctx context.Context) ([]*InventoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InventoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InventoryItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InventoryItemCreateBulk) SaveX(ctx context.Context) []*InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InventoryItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InventoryItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InventoryItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *InventoryItemUpsertBulk {
	_c.conflict = opts
	return &InventoryItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InventoryItemCreateBulk) OnConflictColumns(columns ...string) *InventoryItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InventoryItemUpsertBulk{
		create: _c,
	}
}

// InventoryItemUpsertBulk is the builder for "upsert"-ing
// a bulk of InventoryItem nodes.
type InventoryItemUpsertBulk struct {
	create *InventoryItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *InventoryItemUpsertBulk) UpdateNewValues() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(inventoryitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InventoryItemUpsertBulk) Ignore() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InventoryItemUpsertBulk) DoNothing() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InventoryItemCreateBulk.OnConflict
// documentation for more info.
func (u *InventoryItemUpsertBulk) Update(set func(*InventoryItemUpsert)) *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InventoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsertBulk) SetUpdatedAt(v time.Time) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateUpdatedAt() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *InventoryItemUpsertBulk) SetUserID(v int64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *InventoryItemUpsertBulk) AddUserID(v int64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateUserID() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUserID()
	})
}

// SetName sets the "name" field.
func (u *InventoryItemUpsertBulk) SetName(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateName() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateName()
	})
}

// SetSku sets the "sku" field.
func (u *InventoryItemUpsertBulk) SetSku(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetSku(v)
	})
}

// UpdateSku sets the "sku" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateSku() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateSku()
	})
}

// ClearSku clears the value of the "sku" field.
func (u *InventoryItemUpsertBulk) ClearSku() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearSku()
	})
}

// SetMarketplaceSku sets the "marketplace_sku" field.
func (u *InventoryItemUpsertBulk) SetMarketplaceSku(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetMarketplaceSku(v)
	})
}

// UpdateMarketplaceSku sets the "marketplace_sku" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateMarketplaceSku() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateMarketplaceSku()
	})
}

// ClearMarketplaceSku clears the value of the "marketplace_sku" field.
func (u *InventoryItemUpsertBulk) ClearMarketplaceSku() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearMarketplaceSku()
	})
}

// SetStatus sets the "status" field.
func (u *InventoryItemUpsertBulk) SetStatus(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateStatus() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrency sets the "currency" field.
func (u *InventoryItemUpsertBulk) SetCurrency(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateCurrency() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateCurrency()
	})
}

// SetPurchaseCents sets the "purchase_cents" field.
func (u *InventoryItemUpsertBulk) SetPurchaseCents(v int64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetPurchaseCents(v)
	})
}

// AddPurchaseCents adds v to the "purchase_cents" field.
func (u *InventoryItemUpsertBulk) AddPurchaseCents(v int64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddPurchaseCents(v)
	})
}

// UpdatePurchaseCents sets the "purchase_cents" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdatePurchaseCents() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdatePurchaseCents()
	})
}

// SetSoldAt sets the "sold_at" field.
func (u *InventoryItemUpsertBulk) SetSoldAt(v time.Time) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetSoldAt(v)
	})
}

// UpdateSoldAt sets the "sold_at" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateSoldAt() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateSoldAt()
	})
}

// ClearSoldAt clears the value of the "sold_at" field.
func (u *InventoryItemUpsertBulk) ClearSoldAt() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearSoldAt()
	})
}

// Exec executes the query.
func (u *InventoryItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InventoryItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InventoryItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InventoryItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
