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
	"github.com/aaron-lee-hebert/seller-metrics/ent/marketplacecredential"
)

// MarketplaceCredentialCreate is the builder for creating a MarketplaceCredential entity.
type MarketplaceCredentialCreate struct {
	config
	mutation *MarketplaceCredentialMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MarketplaceCredentialCreate) SetCreatedAt(v time.Time) *MarketplaceCredentialCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableCreatedAt(v *time.Time) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MarketplaceCredentialCreate) SetUpdatedAt(v time.Time) *MarketplaceCredentialCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableUpdatedAt(v *time.Time) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MarketplaceCredentialCreate) SetUserID(v int64) *MarketplaceCredentialCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *MarketplaceCredentialCreate) SetProvider(v string) *MarketplaceCredentialCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAccessTokenCipher sets the "access_token_cipher" field.
func (_c *MarketplaceCredentialCreate) SetAccessTokenCipher(v string) *MarketplaceCredentialCreate {
	_c.mutation.SetAccessTokenCipher(v)
	return _c
}

// SetNillableAccessTokenCipher sets the "access_token_cipher" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableAccessTokenCipher(v *string) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetAccessTokenCipher(*v)
	}
	return _c
}

// SetRefreshTokenCipher sets the "refresh_token_cipher" field.
func (_c *MarketplaceCredentialCreate) SetRefreshTokenCipher(v string) *MarketplaceCredentialCreate {
	_c.mutation.SetRefreshTokenCipher(v)
	return _c
}

// SetNillableRefreshTokenCipher sets the "refresh_token_cipher" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableRefreshTokenCipher(v *string) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetRefreshTokenCipher(*v)
	}
	return _c
}

// SetAccessTokenExpiresAt sets the "access_token_expires_at" field.
func (_c *MarketplaceCredentialCreate) SetAccessTokenExpiresAt(v time.Time) *MarketplaceCredentialCreate {
	_c.mutation.SetAccessTokenExpiresAt(v)
	return _c
}

// SetNillableAccessTokenExpiresAt sets the "access_token_expires_at" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableAccessTokenExpiresAt(v *time.Time) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetAccessTokenExpiresAt(*v)
	}
	return _c
}

// SetRefreshTokenExpiresAt sets the "refresh_token_expires_at" field.
func (_c *MarketplaceCredentialCreate) SetRefreshTokenExpiresAt(v time.Time) *MarketplaceCredentialCreate {
	_c.mutation.SetRefreshTokenExpiresAt(v)
	return _c
}

// SetNillableRefreshTokenExpiresAt sets the "refresh_token_expires_at" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableRefreshTokenExpiresAt(v *time.Time) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetRefreshTokenExpiresAt(*v)
	}
	return _c
}

// SetConnected sets the "connected" field.
func (_c *MarketplaceCredentialCreate) SetConnected(v bool) *MarketplaceCredentialCreate {
	_c.mutation.SetConnected(v)
	return _c
}

// SetNillableConnected sets the "connected" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableConnected(v *bool) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetConnected(*v)
	}
	return _c
}

// SetExternalAccountID sets the "external_account_id" field.
func (_c *MarketplaceCredentialCreate) SetExternalAccountID(v string) *MarketplaceCredentialCreate {
	_c.mutation.SetExternalAccountID(v)
	return _c
}

// SetNillableExternalAccountID sets the "external_account_id" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableExternalAccountID(v *string) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetExternalAccountID(*v)
	}
	return _c
}

// SetAccountDisplayName sets the "account_display_name" field.
func (_c *MarketplaceCredentialCreate) SetAccountDisplayName(v string) *MarketplaceCredentialCreate {
	_c.mutation.SetAccountDisplayName(v)
	return _c
}

// SetNillableAccountDisplayName sets the "account_display_name" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableAccountDisplayName(v *string) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetAccountDisplayName(*v)
	}
	return _c
}

// SetScope sets the "scope" field.
func (_c *MarketplaceCredentialCreate) SetScope(v string) *MarketplaceCredentialCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableScope(v *string) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_c *MarketplaceCredentialCreate) SetLastSyncedAt(v time.Time) *MarketplaceCredentialCreate {
	_c.mutation.SetLastSyncedAt(v)
	return _c
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableLastSyncedAt(v *time.Time) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetLastSyncedAt(*v)
	}
	return _c
}

// SetLastSyncError sets the "last_sync_error" field.
func (_c *MarketplaceCredentialCreate) SetLastSyncError(v string) *MarketplaceCredentialCreate {
	_c.mutation.SetLastSyncError(v)
	return _c
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableLastSyncError(v *string) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetLastSyncError(*v)
	}
	return _c
}

// SetSyncVersion sets the "sync_version" field.
func (_c *MarketplaceCredentialCreate) SetSyncVersion(v int64) *MarketplaceCredentialCreate {
	_c.mutation.SetSyncVersion(v)
	return _c
}

// SetNillableSyncVersion sets the "sync_version" field if the given value is not nil.
func (_c *MarketplaceCredentialCreate) SetNillableSyncVersion(v *int64) *MarketplaceCredentialCreate {
	if v != nil {
		_c.SetSyncVersion(*v)
	}
	return _c
}

// Mutation returns the MarketplaceCredentialMutation object of the builder.
func (_c *MarketplaceCredentialCreate) Mutation() *MarketplaceCredentialMutation {
	return _c.mutation
}

// Save creates the MarketplaceCredential in the database.
func (_c *MarketplaceCredentialCreate) Save(ctx context.Context) (*MarketplaceCredential, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MarketplaceCredentialCreate) SaveX(ctx context.Context) *MarketplaceCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketplaceCredentialCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketplaceCredentialCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MarketplaceCredentialCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := marketplacecredential.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := marketplacecredential.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Connected(); !ok {
		v := marketplacecredential.DefaultConnected
		_c.mutation.SetConnected(v)
	}
	if _, ok := _c.mutation.SyncVersion(); !ok {
		v := marketplacecredential.DefaultSyncVersion
		_c.mutation.SetSyncVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MarketplaceCredentialCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MarketplaceCredential.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MarketplaceCredential.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MarketplaceCredential.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "MarketplaceCredential.provider"`)}
	}
	if _, ok := _c.mutation.Connected(); !ok {
		return &ValidationError{Name: "connected", err: errors.New(`ent: missing required field "MarketplaceCredential.connected"`)}
	}
	if _, ok := _c.mutation.SyncVersion(); !ok {
		return &ValidationError{Name: "sync_version", err: errors.New(`ent: missing required field "MarketplaceCredential.sync_version"`)}
	}
	return nil
}

func (_c *MarketplaceCredentialCreate) sqlSave(ctx context.Context) (*MarketplaceCredential, error) {
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

func (_c *MarketplaceCredentialCreate) createSpec() (*MarketplaceCredential, *sqlgraph.CreateSpec) {
	var (
		_node = &MarketplaceCredential{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(marketplacecredential.Table, sqlgraph.NewFieldSpec(marketplacecredential.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(marketplacecredential.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(marketplacecredential.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(marketplacecredential.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(marketplacecredential.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.AccessTokenCipher(); ok {
		_spec.SetField(marketplacecredential.FieldAccessTokenCipher, field.TypeString, value)
		_node.AccessTokenCipher = &value
	}
	if value, ok := _c.mutation.RefreshTokenCipher(); ok {
		_spec.SetField(marketplacecredential.FieldRefreshTokenCipher, field.TypeString, value)
		_node.RefreshTokenCipher = &value
	}
	if value, ok := _c.mutation.AccessTokenExpiresAt(); ok {
		_spec.SetField(marketplacecredential.FieldAccessTokenExpiresAt, field.TypeTime, value)
		_node.AccessTokenExpiresAt = &value
	}
	if value, ok := _c.mutation.RefreshTokenExpiresAt(); ok {
		_spec.SetField(marketplacecredential.FieldRefreshTokenExpiresAt, field.TypeTime, value)
		_node.RefreshTokenExpiresAt = &value
	}
	if value, ok := _c.mutation.Connected(); ok {
		_spec.SetField(marketplacecredential.FieldConnected, field.TypeBool, value)
		_node.Connected = value
	}
	if value, ok := _c.mutation.ExternalAccountID(); ok {
		_spec.SetField(marketplacecredential.FieldExternalAccountID, field.TypeString, value)
		_node.ExternalAccountID = &value
	}
	if value, ok := _c.mutation.AccountDisplayName(); ok {
		_spec.SetField(marketplacecredential.FieldAccountDisplayName, field.TypeString, value)
		_node.AccountDisplayName = &value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(marketplacecredential.FieldScope, field.TypeString, value)
		_node.Scope = &value
	}
	if value, ok := _c.mutation.LastSyncedAt(); ok {
		_spec.SetField(marketplacecredential.FieldLastSyncedAt, field.TypeTime, value)
		_node.LastSyncedAt = &value
	}
	if value, ok := _c.mutation.LastSyncError(); ok {
		_spec.SetField(marketplacecredential.FieldLastSyncError, field.TypeString, value)
		_node.LastSyncError = &value
	}
	if value, ok := _c.mutation.SyncVersion(); ok {
		_spec.SetField(marketplacecredential.FieldSyncVersion, field.TypeInt64, value)
		_node.SyncVersion = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MarketplaceCredential.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MarketplaceCredentialUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MarketplaceCredentialCreate) OnConflict(opts ...sql.ConflictOption) *MarketplaceCredentialUpsertOne {
	_c.conflict = opts
	return &MarketplaceCredentialUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MarketplaceCredential.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MarketplaceCredentialCreate) OnConflictColumns(columns ...string) *MarketplaceCredentialUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MarketplaceCredentialUpsertOne{
		create: _c,
	}
}

type (
	// MarketplaceCredentialUpsertOne is the builder for "upsert"-ing
	//  one MarketplaceCredential node.
	MarketplaceCredentialUpsertOne struct {
		create *MarketplaceCredentialCreate
	}

	// MarketplaceCredentialUpsert is the "OnConflict" setter.
	MarketplaceCredentialUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MarketplaceCredentialUpsert) SetUpdatedAt(v time.Time) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateUpdatedAt() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *MarketplaceCredentialUpsert) SetUserID(v int64) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateUserID() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *MarketplaceCredentialUpsert) AddUserID(v int64) *MarketplaceCredentialUpsert {
	u.Add(marketplacecredential.FieldUserID, v)
	return u
}

// SetProvider sets the "provider" field.
func (u *MarketplaceCredentialUpsert) SetProvider(v string) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateProvider() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldProvider)
	return u
}

// SetAccessTokenCipher sets the "access_token_cipher" field.
func (u *MarketplaceCredentialUpsert) SetAccessTokenCipher(v string) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldAccessTokenCipher, v)
	return u
}

// UpdateAccessTokenCipher sets the "access_token_cipher" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateAccessTokenCipher() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldAccessTokenCipher)
	return u
}

// ClearAccessTokenCipher clears the value of the "access_token_cipher" field.
func (u *MarketplaceCredentialUpsert) ClearAccessTokenCipher() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldAccessTokenCipher)
	return u
}

// SetRefreshTokenCipher sets the "refresh_token_cipher" field.
func (u *MarketplaceCredentialUpsert) SetRefreshTokenCipher(v string) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldRefreshTokenCipher, v)
	return u
}

// UpdateRefreshTokenCipher sets the "refresh_token_cipher" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateRefreshTokenCipher() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldRefreshTokenCipher)
	return u
}

// ClearRefreshTokenCipher clears the value of the "refresh_token_cipher" field.
func (u *MarketplaceCredentialUpsert) ClearRefreshTokenCipher() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldRefreshTokenCipher)
	return u
}

// SetAccessTokenExpiresAt sets the "access_token_expires_at" field.
func (u *MarketplaceCredentialUpsert) SetAccessTokenExpiresAt(v time.Time) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldAccessTokenExpiresAt, v)
	return u
}

// UpdateAccessTokenExpiresAt sets the "access_token_expires_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateAccessTokenExpiresAt() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldAccessTokenExpiresAt)
	return u
}

// ClearAccessTokenExpiresAt clears the value of the "access_token_expires_at" field.
func (u *MarketplaceCredentialUpsert) ClearAccessTokenExpiresAt() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldAccessTokenExpiresAt)
	return u
}

// SetRefreshTokenExpiresAt sets the "refresh_token_expires_at" field.
func (u *MarketplaceCredentialUpsert) SetRefreshTokenExpiresAt(v time.Time) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldRefreshTokenExpiresAt, v)
	return u
}

// UpdateRefreshTokenExpiresAt sets the "refresh_token_expires_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateRefreshTokenExpiresAt() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldRefreshTokenExpiresAt)
	return u
}

// ClearRefreshTokenExpiresAt clears the value of the "refresh_token_expires_at" field.
func (u *MarketplaceCredentialUpsert) ClearRefreshTokenExpiresAt() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldRefreshTokenExpiresAt)
	return u
}

// SetConnected sets the "connected" field.
func (u *MarketplaceCredentialUpsert) SetConnected(v bool) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldConnected, v)
	return u
}

// UpdateConnected sets the "connected" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateConnected() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldConnected)
	return u
}

// SetExternalAccountID sets the "external_account_id" field.
func (u *MarketplaceCredentialUpsert) SetExternalAccountID(v string) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldExternalAccountID, v)
	return u
}

// UpdateExternalAccountID sets the "external_account_id" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateExternalAccountID() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldExternalAccountID)
	return u
}

// ClearExternalAccountID clears the value of the "external_account_id" field.
func (u *MarketplaceCredentialUpsert) ClearExternalAccountID() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldExternalAccountID)
	return u
}

// SetAccountDisplayName sets the "account_display_name" field.
func (u *MarketplaceCredentialUpsert) SetAccountDisplayName(v string) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldAccountDisplayName, v)
	return u
}

// UpdateAccountDisplayName sets the "account_display_name" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateAccountDisplayName() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldAccountDisplayName)
	return u
}

// ClearAccountDisplayName clears the value of the "account_display_name" field.
func (u *MarketplaceCredentialUpsert) ClearAccountDisplayName() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldAccountDisplayName)
	return u
}

// SetScope sets the "scope" field.
func (u *MarketplaceCredentialUpsert) SetScope(v string) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldScope, v)
	return u
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateScope() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldScope)
	return u
}

// ClearScope clears the value of the "scope" field.
func (u *MarketplaceCredentialUpsert) ClearScope() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldScope)
	return u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *MarketplaceCredentialUpsert) SetLastSyncedAt(v time.Time) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldLastSyncedAt, v)
	return u
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateLastSyncedAt() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldLastSyncedAt)
	return u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *MarketplaceCredentialUpsert) ClearLastSyncedAt() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldLastSyncedAt)
	return u
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *MarketplaceCredentialUpsert) SetLastSyncError(v string) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldLastSyncError, v)
	return u
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateLastSyncError() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldLastSyncError)
	return u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *MarketplaceCredentialUpsert) ClearLastSyncError() *MarketplaceCredentialUpsert {
	u.SetNull(marketplacecredential.FieldLastSyncError)
	return u
}

// SetSyncVersion sets the "sync_version" field.
func (u *MarketplaceCredentialUpsert) SetSyncVersion(v int64) *MarketplaceCredentialUpsert {
	u.Set(marketplacecredential.FieldSyncVersion, v)
	return u
}

// UpdateSyncVersion sets the "sync_version" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsert) UpdateSyncVersion() *MarketplaceCredentialUpsert {
	u.SetExcluded(marketplacecredential.FieldSyncVersion)
	return u
}

// AddSyncVersion adds v to the "sync_version" field.
func (u *MarketplaceCredentialUpsert) AddSyncVersion(v int64) *MarketplaceCredentialUpsert {
	u.Add(marketplacecredential.FieldSyncVersion, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MarketplaceCredential.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MarketplaceCredentialUpsertOne) UpdateNewValues() *MarketplaceCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(marketplacecredential.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MarketplaceCredential.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MarketplaceCredentialUpsertOne) Ignore() *MarketplaceCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MarketplaceCredentialUpsertOne) DoNothing() *MarketplaceCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MarketplaceCredentialCreate.OnConflict
// documentation for more info.
func (u *MarketplaceCredentialUpsertOne) Update(set func(*MarketplaceCredentialUpsert)) *MarketplaceCredentialUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MarketplaceCredentialUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MarketplaceCredentialUpsertOne) SetUpdatedAt(v time.Time) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateUpdatedAt() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *MarketplaceCredentialUpsertOne) SetUserID(v int64) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *MarketplaceCredentialUpsertOne) AddUserID(v int64) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateUserID() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateUserID()
	})
}

// SetProvider sets the "provider" field.
func (u *MarketplaceCredentialUpsertOne) SetProvider(v string) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateProvider() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateProvider()
	})
}

// SetAccessTokenCipher sets the "access_token_cipher" field.
func (u *MarketplaceCredentialUpsertOne) SetAccessTokenCipher(v string) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetAccessTokenCipher(v)
	})
}

// UpdateAccessTokenCipher sets the "access_token_cipher" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateAccessTokenCipher() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateAccessTokenCipher()
	})
}

// ClearAccessTokenCipher clears the value of the "access_token_cipher" field.
func (u *MarketplaceCredentialUpsertOne) ClearAccessTokenCipher() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearAccessTokenCipher()
	})
}

// SetRefreshTokenCipher sets the "refresh_token_cipher" field.
func (u *MarketplaceCredentialUpsertOne) SetRefreshTokenCipher(v string) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetRefreshTokenCipher(v)
	})
}

// UpdateRefreshTokenCipher sets the "refresh_token_cipher" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateRefreshTokenCipher() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateRefreshTokenCipher()
	})
}

// ClearRefreshTokenCipher clears the value of the "refresh_token_cipher" field.
func (u *MarketplaceCredentialUpsertOne) ClearRefreshTokenCipher() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearRefreshTokenCipher()
	})
}

// SetAccessTokenExpiresAt sets the "access_token_expires_at" field.
func (u *MarketplaceCredentialUpsertOne) SetAccessTokenExpiresAt(v time.Time) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetAccessTokenExpiresAt(v)
	})
}

// UpdateAccessTokenExpiresAt sets the "access_token_expires_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateAccessTokenExpiresAt() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateAccessTokenExpiresAt()
	})
}

// ClearAccessTokenExpiresAt clears the value of the "access_token_expires_at" field.
func (u *MarketplaceCredentialUpsertOne) ClearAccessTokenExpiresAt() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearAccessTokenExpiresAt()
	})
}

// SetRefreshTokenExpiresAt sets the "refresh_token_expires_at" field.
func (u *MarketplaceCredentialUpsertOne) SetRefreshTokenExpiresAt(v time.Time) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetRefreshTokenExpiresAt(v)
	})
}

// UpdateRefreshTokenExpiresAt sets the "refresh_token_expires_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateRefreshTokenExpiresAt() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateRefreshTokenExpiresAt()
	})
}

// ClearRefreshTokenExpiresAt clears the value of the "refresh_token_expires_at" field.
func (u *MarketplaceCredentialUpsertOne) ClearRefreshTokenExpiresAt() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearRefreshTokenExpiresAt()
	})
}

// SetConnected sets the "connected" field.
func (u *MarketplaceCredentialUpsertOne) SetConnected(v bool) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetConnected(v)
	})
}

// UpdateConnected sets the "connected" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateConnected() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateConnected()
	})
}

// SetExternalAccountID sets the "external_account_id" field.
func (u *MarketplaceCredentialUpsertOne) SetExternalAccountID(v string) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetExternalAccountID(v)
	})
}

// UpdateExternalAccountID sets the "external_account_id" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateExternalAccountID() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateExternalAccountID()
	})
}

// ClearExternalAccountID clears the value of the "external_account_id" field.
func (u *MarketplaceCredentialUpsertOne) ClearExternalAccountID() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearExternalAccountID()
	})
}

// SetAccountDisplayName sets the "account_display_name" field.
func (u *MarketplaceCredentialUpsertOne) SetAccountDisplayName(v string) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetAccountDisplayName(v)
	})
}

// UpdateAccountDisplayName sets the "account_display_name" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateAccountDisplayName() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateAccountDisplayName()
	})
}

// ClearAccountDisplayName clears the value of the "account_display_name" field.
func (u *MarketplaceCredentialUpsertOne) ClearAccountDisplayName() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearAccountDisplayName()
	})
}

// SetScope sets the "scope" field.
func (u *MarketplaceCredentialUpsertOne) SetScope(v string) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateScope() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateScope()
	})
}

// ClearScope clears the value of the "scope" field.
func (u *MarketplaceCredentialUpsertOne) ClearScope() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearScope()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *MarketplaceCredentialUpsertOne) SetLastSyncedAt(v time.Time) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateLastSyncedAt() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *MarketplaceCredentialUpsertOne) ClearLastSyncedAt() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *MarketplaceCredentialUpsertOne) SetLastSyncError(v string) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetLastSyncError(v)
	})
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateLastSyncError() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateLastSyncError()
	})
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *MarketplaceCredentialUpsertOne) ClearLastSyncError() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearLastSyncError()
	})
}

// SetSyncVersion sets the "sync_version" field.
func (u *MarketplaceCredentialUpsertOne) SetSyncVersion(v int64) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetSyncVersion(v)
	})
}

// AddSyncVersion adds v to the "sync_version" field.
func (u *MarketplaceCredentialUpsertOne) AddSyncVersion(v int64) *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.AddSyncVersion(v)
	})
}

// UpdateSyncVersion sets the "sync_version" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertOne) UpdateSyncVersion() *MarketplaceCredentialUpsertOne {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateSyncVersion()
	})
}

// Exec executes the query.
func (u *MarketplaceCredentialUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MarketplaceCredentialCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MarketplaceCredentialUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MarketplaceCredentialUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MarketplaceCredentialUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MarketplaceCredentialCreateBulk is the builder for creating many MarketplaceCredential entities in bulk.
type MarketplaceCredentialCreateBulk struct {
	config
	err      error
	builders []*MarketplaceCredentialCreate
	conflict []sql.ConflictOption
}

// Save creates the MarketplaceCredential entities in the database.
func (_c *MarketplaceCredentialCreateBulk) Save(ctx context.Context) ([]*MarketplaceCredential, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MarketplaceCredential, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MarketplaceCredentialMutation)
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
func (_c *MarketplaceCredentialCreateBulk) SaveX(ctx context.Context) []*MarketplaceCredential {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketplaceCredentialCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketplaceCredentialCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MarketplaceCredential.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MarketplaceCredentialUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MarketplaceCredentialCreateBulk) OnConflict(opts ...sql.ConflictOption) *MarketplaceCredentialUpsertBulk {
	_c.conflict = opts
	return &MarketplaceCredentialUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MarketplaceCredential.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MarketplaceCredentialCreateBulk) OnConflictColumns(columns ...string) *MarketplaceCredentialUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MarketplaceCredentialUpsertBulk{
		create: _c,
	}
}

// MarketplaceCredentialUpsertBulk is the builder for "upsert"-ing
// a bulk of MarketplaceCredential nodes.
type MarketplaceCredentialUpsertBulk struct {
	create *MarketplaceCredentialCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MarketplaceCredential.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MarketplaceCredentialUpsertBulk) UpdateNewValues() *MarketplaceCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(marketplacecredential.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MarketplaceCredential.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MarketplaceCredentialUpsertBulk) Ignore() *MarketplaceCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MarketplaceCredentialUpsertBulk) DoNothing() *MarketplaceCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MarketplaceCredentialCreateBulk.OnConflict
// documentation for more info.
func (u *MarketplaceCredentialUpsertBulk) Update(set func(*MarketplaceCredentialUpsert)) *MarketplaceCredentialUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MarketplaceCredentialUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MarketplaceCredentialUpsertBulk) SetUpdatedAt(v time.Time) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateUpdatedAt() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *MarketplaceCredentialUpsertBulk) SetUserID(v int64) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *MarketplaceCredentialUpsertBulk) AddUserID(v int64) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateUserID() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateUserID()
	})
}

// SetProvider sets the "provider" field.
func (u *MarketplaceCredentialUpsertBulk) SetProvider(v string) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateProvider() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateProvider()
	})
}

// SetAccessTokenCipher sets the "access_token_cipher" field.
func (u *MarketplaceCredentialUpsertBulk) SetAccessTokenCipher(v string) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetAccessTokenCipher(v)
	})
}

// UpdateAccessTokenCipher sets the "access_token_cipher" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateAccessTokenCipher() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateAccessTokenCipher()
	})
}

// ClearAccessTokenCipher clears the value of the "access_token_cipher" field.
func (u *MarketplaceCredentialUpsertBulk) ClearAccessTokenCipher() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearAccessTokenCipher()
	})
}

// SetRefreshTokenCipher sets the "refresh_token_cipher" field.
func (u *MarketplaceCredentialUpsertBulk) SetRefreshTokenCipher(v string) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetRefreshTokenCipher(v)
	})
}

// UpdateRefreshTokenCipher sets the "refresh_token_cipher" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateRefreshTokenCipher() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateRefreshTokenCipher()
	})
}

// ClearRefreshTokenCipher clears the value of the "refresh_token_cipher" field.
func (u *MarketplaceCredentialUpsertBulk) ClearRefreshTokenCipher() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearRefreshTokenCipher()
	})
}

// SetAccessTokenExpiresAt sets the "access_token_expires_at" field.
func (u *MarketplaceCredentialUpsertBulk) SetAccessTokenExpiresAt(v time.Time) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetAccessTokenExpiresAt(v)
	})
}

// UpdateAccessTokenExpiresAt sets the "access_token_expires_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateAccessTokenExpiresAt() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateAccessTokenExpiresAt()
	})
}

// ClearAccessTokenExpiresAt clears the value of the "access_token_expires_at" field.
func (u *MarketplaceCredentialUpsertBulk) ClearAccessTokenExpiresAt() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearAccessTokenExpiresAt()
	})
}

// SetRefreshTokenExpiresAt sets the "refresh_token_expires_at" field.
func (u *MarketplaceCredentialUpsertBulk) SetRefreshTokenExpiresAt(v time.Time) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetRefreshTokenExpiresAt(v)
	})
}

// UpdateRefreshTokenExpiresAt sets the "refresh_token_expires_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateRefreshTokenExpiresAt() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateRefreshTokenExpiresAt()
	})
}

// ClearRefreshTokenExpiresAt clears the value of the "refresh_token_expires_at" field.
func (u *MarketplaceCredentialUpsertBulk) ClearRefreshTokenExpiresAt() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearRefreshTokenExpiresAt()
	})
}

// SetConnected sets the "connected" field.
func (u *MarketplaceCredentialUpsertBulk) SetConnected(v bool) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetConnected(v)
	})
}

// UpdateConnected sets the "connected" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateConnected() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateConnected()
	})
}

// SetExternalAccountID sets the "external_account_id" field.
func (u *MarketplaceCredentialUpsertBulk) SetExternalAccountID(v string) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetExternalAccountID(v)
	})
}

// UpdateExternalAccountID sets the "external_account_id" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateExternalAccountID() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateExternalAccountID()
	})
}

// ClearExternalAccountID clears the value of the "external_account_id" field.
func (u *MarketplaceCredentialUpsertBulk) ClearExternalAccountID() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearExternalAccountID()
	})
}

// SetAccountDisplayName sets the "account_display_name" field.
func (u *MarketplaceCredentialUpsertBulk) SetAccountDisplayName(v string) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetAccountDisplayName(v)
	})
}

// UpdateAccountDisplayName sets the "account_display_name" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateAccountDisplayName() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateAccountDisplayName()
	})
}

// ClearAccountDisplayName clears the value of the "account_display_name" field.
func (u *MarketplaceCredentialUpsertBulk) ClearAccountDisplayName() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearAccountDisplayName()
	})
}

// SetScope sets the "scope" field.
func (u *MarketplaceCredentialUpsertBulk) SetScope(v string) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetScope(v)
	})
}

// UpdateScope sets the "scope" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateScope() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateScope()
	})
}

// ClearScope clears the value of the "scope" field.
func (u *MarketplaceCredentialUpsertBulk) ClearScope() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearScope()
	})
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (u *MarketplaceCredentialUpsertBulk) SetLastSyncedAt(v time.Time) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetLastSyncedAt(v)
	})
}

// UpdateLastSyncedAt sets the "last_synced_at" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateLastSyncedAt() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateLastSyncedAt()
	})
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (u *MarketplaceCredentialUpsertBulk) ClearLastSyncedAt() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearLastSyncedAt()
	})
}

// SetLastSyncError sets the "last_sync_error" field.
func (u *MarketplaceCredentialUpsertBulk) SetLastSyncError(v string) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetLastSyncError(v)
	})
}

// UpdateLastSyncError sets the "last_sync_error" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateLastSyncError() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateLastSyncError()
	})
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (u *MarketplaceCredentialUpsertBulk) ClearLastSyncError() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.ClearLastSyncError()
	})
}

// SetSyncVersion sets the "sync_version" field.
func (u *MarketplaceCredentialUpsertBulk) SetSyncVersion(v int64) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.SetSyncVersion(v)
	})
}

// AddSyncVersion adds v to the "sync_version" field.
func (u *MarketplaceCredentialUpsertBulk) AddSyncVersion(v int64) *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.AddSyncVersion(v)
	})
}

// UpdateSyncVersion sets the "sync_version" field to the value that was provided on create.
func (u *MarketplaceCredentialUpsertBulk) UpdateSyncVersion() *MarketplaceCredentialUpsertBulk {
	return u.Update(func(s *MarketplaceCredentialUpsert) {
		s.UpdateSyncVersion()
	})
}

// Exec executes the query.
func (u *MarketplaceCredentialUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MarketplaceCredentialCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MarketplaceCredentialCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MarketplaceCredentialUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
