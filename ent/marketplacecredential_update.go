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
	"github.com/aaron-lee-hebert/seller-metrics/ent/predicate"
)

// MarketplaceCredentialUpdate is the builder for updating MarketplaceCredential entities.
type MarketplaceCredentialUpdate struct {
	config
	hooks    []Hook
	mutation *MarketplaceCredentialMutation
}

// Where appends a list predicates to the MarketplaceCredentialUpdate builder.
func (_u *MarketplaceCredentialUpdate) Where(ps ...predicate.MarketplaceCredential) *MarketplaceCredentialUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MarketplaceCredentialUpdate) SetUpdatedAt(v time.Time) *MarketplaceCredentialUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MarketplaceCredentialUpdate) SetUserID(v int64) *MarketplaceCredentialUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableUserID(v *int64) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *MarketplaceCredentialUpdate) AddUserID(v int64) *MarketplaceCredentialUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MarketplaceCredentialUpdate) SetProvider(v string) *MarketplaceCredentialUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableProvider(v *string) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccessTokenCipher sets the "access_token_cipher" field.
func (_u *MarketplaceCredentialUpdate) SetAccessTokenCipher(v string) *MarketplaceCredentialUpdate {
	_u.mutation.SetAccessTokenCipher(v)
	return _u
}

// SetNillableAccessTokenCipher sets the "access_token_cipher" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableAccessTokenCipher(v *string) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetAccessTokenCipher(*v)
	}
	return _u
}

// ClearAccessTokenCipher clears the value of the "access_token_cipher" field.
func (_u *MarketplaceCredentialUpdate) ClearAccessTokenCipher() *MarketplaceCredentialUpdate {
	_u.mutation.ClearAccessTokenCipher()
	return _u
}

// SetRefreshTokenCipher sets the "refresh_token_cipher" field.
func (_u *MarketplaceCredentialUpdate) SetRefreshTokenCipher(v string) *MarketplaceCredentialUpdate {
	_u.mutation.SetRefreshTokenCipher(v)
	return _u
}

// SetNillableRefreshTokenCipher sets the "refresh_token_cipher" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableRefreshTokenCipher(v *string) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetRefreshTokenCipher(*v)
	}
	return _u
}

// ClearRefreshTokenCipher clears the value of the "refresh_token_cipher" field.
func (_u *MarketplaceCredentialUpdate) ClearRefreshTokenCipher() *MarketplaceCredentialUpdate {
	_u.mutation.ClearRefreshTokenCipher()
	return _u
}

// SetAccessTokenExpiresAt sets the "access_token_expires_at" field.
func (_u *MarketplaceCredentialUpdate) SetAccessTokenExpiresAt(v time.Time) *MarketplaceCredentialUpdate {
	_u.mutation.SetAccessTokenExpiresAt(v)
	return _u
}

// SetNillableAccessTokenExpiresAt sets the "access_token_expires_at" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableAccessTokenExpiresAt(v *time.Time) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetAccessTokenExpiresAt(*v)
	}
	return _u
}

// ClearAccessTokenExpiresAt clears the value of the "access_token_expires_at" field.
func (_u *MarketplaceCredentialUpdate) ClearAccessTokenExpiresAt() *MarketplaceCredentialUpdate {
	_u.mutation.ClearAccessTokenExpiresAt()
	return _u
}

// SetRefreshTokenExpiresAt sets the "refresh_token_expires_at" field.
func (_u *MarketplaceCredentialUpdate) SetRefreshTokenExpiresAt(v time.Time) *MarketplaceCredentialUpdate {
	_u.mutation.SetRefreshTokenExpiresAt(v)
	return _u
}

// SetNillableRefreshTokenExpiresAt sets the "refresh_token_expires_at" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableRefreshTokenExpiresAt(v *time.Time) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetRefreshTokenExpiresAt(*v)
	}
	return _u
}

// ClearRefreshTokenExpiresAt clears the value of the "refresh_token_expires_at" field.
func (_u *MarketplaceCredentialUpdate) ClearRefreshTokenExpiresAt() *MarketplaceCredentialUpdate {
	_u.mutation.ClearRefreshTokenExpiresAt()
	return _u
}

// SetConnected sets the "connected" field.
func (_u *MarketplaceCredentialUpdate) SetConnected(v bool) *MarketplaceCredentialUpdate {
	_u.mutation.SetConnected(v)
	return _u
}

// SetNillableConnected sets the "connected" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableConnected(v *bool) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetConnected(*v)
	}
	return _u
}

// SetExternalAccountID sets the "external_account_id" field.
func (_u *MarketplaceCredentialUpdate) SetExternalAccountID(v string) *MarketplaceCredentialUpdate {
	_u.mutation.SetExternalAccountID(v)
	return _u
}

// SetNillableExternalAccountID sets the "external_account_id" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableExternalAccountID(v *string) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetExternalAccountID(*v)
	}
	return _u
}

// ClearExternalAccountID clears the value of the "external_account_id" field.
func (_u *MarketplaceCredentialUpdate) ClearExternalAccountID() *MarketplaceCredentialUpdate {
	_u.mutation.ClearExternalAccountID()
	return _u
}

// SetAccountDisplayName sets the "account_display_name" field.
func (_u *MarketplaceCredentialUpdate) SetAccountDisplayName(v string) *MarketplaceCredentialUpdate {
	_u.mutation.SetAccountDisplayName(v)
	return _u
}

// SetNillableAccountDisplayName sets the "account_display_name" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableAccountDisplayName(v *string) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetAccountDisplayName(*v)
	}
	return _u
}

// ClearAccountDisplayName clears the value of the "account_display_name" field.
func (_u *MarketplaceCredentialUpdate) ClearAccountDisplayName() *MarketplaceCredentialUpdate {
	_u.mutation.ClearAccountDisplayName()
	return _u
}

// SetScope sets the "scope" field.
func (_u *MarketplaceCredentialUpdate) SetScope(v string) *MarketplaceCredentialUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableScope(v *string) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *MarketplaceCredentialUpdate) ClearScope() *MarketplaceCredentialUpdate {
	_u.mutation.ClearScope()
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *MarketplaceCredentialUpdate) SetLastSyncedAt(v time.Time) *MarketplaceCredentialUpdate {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableLastSyncedAt(v *time.Time) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *MarketplaceCredentialUpdate) ClearLastSyncedAt() *MarketplaceCredentialUpdate {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetLastSyncError sets the "last_sync_error" field.
func (_u *MarketplaceCredentialUpdate) SetLastSyncError(v string) *MarketplaceCredentialUpdate {
	_u.mutation.SetLastSyncError(v)
	return _u
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableLastSyncError(v *string) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetLastSyncError(*v)
	}
	return _u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (_u *MarketplaceCredentialUpdate) ClearLastSyncError() *MarketplaceCredentialUpdate {
	_u.mutation.ClearLastSyncError()
	return _u
}

// SetSyncVersion sets the "sync_version" field.
func (_u *MarketplaceCredentialUpdate) SetSyncVersion(v int64) *MarketplaceCredentialUpdate {
	_u.mutation.ResetSyncVersion()
	_u.mutation.SetSyncVersion(v)
	return _u
}

// SetNillableSyncVersion sets the "sync_version" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdate) SetNillableSyncVersion(v *int64) *MarketplaceCredentialUpdate {
	if v != nil {
		_u.SetSyncVersion(*v)
	}
	return _u
}

// AddSyncVersion adds value to the "sync_version" field.
func (_u *MarketplaceCredentialUpdate) AddSyncVersion(v int64) *MarketplaceCredentialUpdate {
	_u.mutation.AddSyncVersion(v)
	return _u
}

// Mutation returns the MarketplaceCredentialMutation object of the builder.
func (_u *MarketplaceCredentialUpdate) Mutation() *MarketplaceCredentialMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketplaceCredentialUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketplaceCredentialUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketplaceCredentialUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketplaceCredentialUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MarketplaceCredentialUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := marketplacecredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MarketplaceCredentialUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(marketplacecredential.Table, marketplacecredential.Columns, sqlgraph.NewFieldSpec(marketplacecredential.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(marketplacecredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(marketplacecredential.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(marketplacecredential.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(marketplacecredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenCipher(); ok {
		_spec.SetField(marketplacecredential.FieldAccessTokenCipher, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCipherCleared() {
		_spec.ClearField(marketplacecredential.FieldAccessTokenCipher, field.TypeString)
	}
	if value, ok := _u.mutation.RefreshTokenCipher(); ok {
		_spec.SetField(marketplacecredential.FieldRefreshTokenCipher, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCipherCleared() {
		_spec.ClearField(marketplacecredential.FieldRefreshTokenCipher, field.TypeString)
	}
	if value, ok := _u.mutation.AccessTokenExpiresAt(); ok {
		_spec.SetField(marketplacecredential.FieldAccessTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.AccessTokenExpiresAtCleared() {
		_spec.ClearField(marketplacecredential.FieldAccessTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RefreshTokenExpiresAt(); ok {
		_spec.SetField(marketplacecredential.FieldRefreshTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.RefreshTokenExpiresAtCleared() {
		_spec.ClearField(marketplacecredential.FieldRefreshTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Connected(); ok {
		_spec.SetField(marketplacecredential.FieldConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExternalAccountID(); ok {
		_spec.SetField(marketplacecredential.FieldExternalAccountID, field.TypeString, value)
	}
	if _u.mutation.ExternalAccountIDCleared() {
		_spec.ClearField(marketplacecredential.FieldExternalAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.AccountDisplayName(); ok {
		_spec.SetField(marketplacecredential.FieldAccountDisplayName, field.TypeString, value)
	}
	if _u.mutation.AccountDisplayNameCleared() {
		_spec.ClearField(marketplacecredential.FieldAccountDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(marketplacecredential.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(marketplacecredential.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(marketplacecredential.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(marketplacecredential.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncError(); ok {
		_spec.SetField(marketplacecredential.FieldLastSyncError, field.TypeString, value)
	}
	if _u.mutation.LastSyncErrorCleared() {
		_spec.ClearField(marketplacecredential.FieldLastSyncError, field.TypeString)
	}
	if value, ok := _u.mutation.SyncVersion(); ok {
		_spec.SetField(marketplacecredential.FieldSyncVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSyncVersion(); ok {
		_spec.AddField(marketplacecredential.FieldSyncVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketplacecredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketplaceCredentialUpdateOne is the builder for updating a single MarketplaceCredential entity.
type MarketplaceCredentialUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketplaceCredentialMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MarketplaceCredentialUpdateOne) SetUpdatedAt(v time.Time) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MarketplaceCredentialUpdateOne) SetUserID(v int64) *MarketplaceCredentialUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableUserID(v *int64) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *MarketplaceCredentialUpdateOne) AddUserID(v int64) *MarketplaceCredentialUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MarketplaceCredentialUpdateOne) SetProvider(v string) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableProvider(v *string) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAccessTokenCipher sets the "access_token_cipher" field.
func (_u *MarketplaceCredentialUpdateOne) SetAccessTokenCipher(v string) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetAccessTokenCipher(v)
	return _u
}

// SetNillableAccessTokenCipher sets the "access_token_cipher" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableAccessTokenCipher(v *string) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetAccessTokenCipher(*v)
	}
	return _u
}

// ClearAccessTokenCipher clears the value of the "access_token_cipher" field.
func (_u *MarketplaceCredentialUpdateOne) ClearAccessTokenCipher() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearAccessTokenCipher()
	return _u
}

// SetRefreshTokenCipher sets the "refresh_token_cipher" field.
func (_u *MarketplaceCredentialUpdateOne) SetRefreshTokenCipher(v string) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetRefreshTokenCipher(v)
	return _u
}

// SetNillableRefreshTokenCipher sets the "refresh_token_cipher" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableRefreshTokenCipher(v *string) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetRefreshTokenCipher(*v)
	}
	return _u
}

// ClearRefreshTokenCipher clears the value of the "refresh_token_cipher" field.
func (_u *MarketplaceCredentialUpdateOne) ClearRefreshTokenCipher() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearRefreshTokenCipher()
	return _u
}

// SetAccessTokenExpiresAt sets the "access_token_expires_at" field.
func (_u *MarketplaceCredentialUpdateOne) SetAccessTokenExpiresAt(v time.Time) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetAccessTokenExpiresAt(v)
	return _u
}

// SetNillableAccessTokenExpiresAt sets the "access_token_expires_at" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableAccessTokenExpiresAt(v *time.Time) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetAccessTokenExpiresAt(*v)
	}
	return _u
}

// ClearAccessTokenExpiresAt clears the value of the "access_token_expires_at" field.
func (_u *MarketplaceCredentialUpdateOne) ClearAccessTokenExpiresAt() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearAccessTokenExpiresAt()
	return _u
}

// SetRefreshTokenExpiresAt sets the "refresh_token_expires_at" field.
func (_u *MarketplaceCredentialUpdateOne) SetRefreshTokenExpiresAt(v time.Time) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetRefreshTokenExpiresAt(v)
	return _u
}

// SetNillableRefreshTokenExpiresAt sets the "refresh_token_expires_at" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableRefreshTokenExpiresAt(v *time.Time) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetRefreshTokenExpiresAt(*v)
	}
	return _u
}

// ClearRefreshTokenExpiresAt clears the value of the "refresh_token_expires_at" field.
func (_u *MarketplaceCredentialUpdateOne) ClearRefreshTokenExpiresAt() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearRefreshTokenExpiresAt()
	return _u
}

// SetConnected sets the "connected" field.
func (_u *MarketplaceCredentialUpdateOne) SetConnected(v bool) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetConnected(v)
	return _u
}

// SetNillableConnected sets the "connected" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableConnected(v *bool) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetConnected(*v)
	}
	return _u
}

// SetExternalAccountID sets the "external_account_id" field.
func (_u *MarketplaceCredentialUpdateOne) SetExternalAccountID(v string) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetExternalAccountID(v)
	return _u
}

// SetNillableExternalAccountID sets the "external_account_id" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableExternalAccountID(v *string) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetExternalAccountID(*v)
	}
	return _u
}

// ClearExternalAccountID clears the value of the "external_account_id" field.
func (_u *MarketplaceCredentialUpdateOne) ClearExternalAccountID() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearExternalAccountID()
	return _u
}

// SetAccountDisplayName sets the "account_display_name" field.
func (_u *MarketplaceCredentialUpdateOne) SetAccountDisplayName(v string) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetAccountDisplayName(v)
	return _u
}

// SetNillableAccountDisplayName sets the "account_display_name" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableAccountDisplayName(v *string) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetAccountDisplayName(*v)
	}
	return _u
}

// ClearAccountDisplayName clears the value of the "account_display_name" field.
func (_u *MarketplaceCredentialUpdateOne) ClearAccountDisplayName() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearAccountDisplayName()
	return _u
}

// SetScope sets the "scope" field.
func (_u *MarketplaceCredentialUpdateOne) SetScope(v string) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableScope(v *string) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *MarketplaceCredentialUpdateOne) ClearScope() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearScope()
	return _u
}

// SetLastSyncedAt sets the "last_synced_at" field.
func (_u *MarketplaceCredentialUpdateOne) SetLastSyncedAt(v time.Time) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetLastSyncedAt(v)
	return _u
}

// SetNillableLastSyncedAt sets the "last_synced_at" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableLastSyncedAt(v *time.Time) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetLastSyncedAt(*v)
	}
	return _u
}

// ClearLastSyncedAt clears the value of the "last_synced_at" field.
func (_u *MarketplaceCredentialUpdateOne) ClearLastSyncedAt() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearLastSyncedAt()
	return _u
}

// SetLastSyncError sets the "last_sync_error" field.
func (_u *MarketplaceCredentialUpdateOne) SetLastSyncError(v string) *MarketplaceCredentialUpdateOne {
	_u.mutation.SetLastSyncError(v)
	return _u
}

// SetNillableLastSyncError sets the "last_sync_error" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableLastSyncError(v *string) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetLastSyncError(*v)
	}
	return _u
}

// ClearLastSyncError clears the value of the "last_sync_error" field.
func (_u *MarketplaceCredentialUpdateOne) ClearLastSyncError() *MarketplaceCredentialUpdateOne {
	_u.mutation.ClearLastSyncError()
	return _u
}

// SetSyncVersion sets the "sync_version" field.
func (_u *MarketplaceCredentialUpdateOne) SetSyncVersion(v int64) *MarketplaceCredentialUpdateOne {
	_u.mutation.ResetSyncVersion()
	_u.mutation.SetSyncVersion(v)
	return _u
}

// SetNillableSyncVersion sets the "sync_version" field if the given value is not nil.
func (_u *MarketplaceCredentialUpdateOne) SetNillableSyncVersion(v *int64) *MarketplaceCredentialUpdateOne {
	if v != nil {
		_u.SetSyncVersion(*v)
	}
	return _u
}

// AddSyncVersion adds value to the "sync_version" field.
func (_u *MarketplaceCredentialUpdateOne) AddSyncVersion(v int64) *MarketplaceCredentialUpdateOne {
	_u.mutation.AddSyncVersion(v)
	return _u
}

// Mutation returns the MarketplaceCredentialMutation object of the builder.
func (_u *MarketplaceCredentialUpdateOne) Mutation() *MarketplaceCredentialMutation {
	return _u.mutation
}

// Where appends a list predicates to the MarketplaceCredentialUpdate builder.
func (_u *MarketplaceCredentialUpdateOne) Where(ps ...predicate.MarketplaceCredential) *MarketplaceCredentialUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketplaceCredentialUpdateOne) Select(field string, fields ...string) *MarketplaceCredentialUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MarketplaceCredential entity.
func (_u *MarketplaceCredentialUpdateOne) Save(ctx context.Context) (*MarketplaceCredential, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketplaceCredentialUpdateOne) SaveX(ctx context.Context) *MarketplaceCredential {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketplaceCredentialUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketplaceCredentialUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MarketplaceCredentialUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := marketplacecredential.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MarketplaceCredentialUpdateOne) sqlSave(ctx context.Context) (_node *MarketplaceCredential, err error) {
	_spec := sqlgraph.NewUpdateSpec(marketplacecredential.Table, marketplacecredential.Columns, sqlgraph.NewFieldSpec(marketplacecredential.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MarketplaceCredential.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, marketplacecredential.FieldID)
		for _, f := range fields {
			if !marketplacecredential.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != marketplacecredential.FieldID {
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
		_spec.SetField(marketplacecredential.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(marketplacecredential.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(marketplacecredential.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(marketplacecredential.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessTokenCipher(); ok {
		_spec.SetField(marketplacecredential.FieldAccessTokenCipher, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCipherCleared() {
		_spec.ClearField(marketplacecredential.FieldAccessTokenCipher, field.TypeString)
	}
	if value, ok := _u.mutation.RefreshTokenCipher(); ok {
		_spec.SetField(marketplacecredential.FieldRefreshTokenCipher, field.TypeString, value)
	}
	if _u.mutation.RefreshTokenCipherCleared() {
		_spec.ClearField(marketplacecredential.FieldRefreshTokenCipher, field.TypeString)
	}
	if value, ok := _u.mutation.AccessTokenExpiresAt(); ok {
		_spec.SetField(marketplacecredential.FieldAccessTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.AccessTokenExpiresAtCleared() {
		_spec.ClearField(marketplacecredential.FieldAccessTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RefreshTokenExpiresAt(); ok {
		_spec.SetField(marketplacecredential.FieldRefreshTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.RefreshTokenExpiresAtCleared() {
		_spec.ClearField(marketplacecredential.FieldRefreshTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Connected(); ok {
		_spec.SetField(marketplacecredential.FieldConnected, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExternalAccountID(); ok {
		_spec.SetField(marketplacecredential.FieldExternalAccountID, field.TypeString, value)
	}
	if _u.mutation.ExternalAccountIDCleared() {
		_spec.ClearField(marketplacecredential.FieldExternalAccountID, field.TypeString)
	}
	if value, ok := _u.mutation.AccountDisplayName(); ok {
		_spec.SetField(marketplacecredential.FieldAccountDisplayName, field.TypeString, value)
	}
	if _u.mutation.AccountDisplayNameCleared() {
		_spec.ClearField(marketplacecredential.FieldAccountDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(marketplacecredential.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(marketplacecredential.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.LastSyncedAt(); ok {
		_spec.SetField(marketplacecredential.FieldLastSyncedAt, field.TypeTime, value)
	}
	if _u.mutation.LastSyncedAtCleared() {
		_spec.ClearField(marketplacecredential.FieldLastSyncedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSyncError(); ok {
		_spec.SetField(marketplacecredential.FieldLastSyncError, field.TypeString, value)
	}
	if _u.mutation.LastSyncErrorCleared() {
		_spec.ClearField(marketplacecredential.FieldLastSyncError, field.TypeString)
	}
	if value, ok := _u.mutation.SyncVersion(); ok {
		_spec.SetField(marketplacecredential.FieldSyncVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSyncVersion(); ok {
		_spec.AddField(marketplacecredential.FieldSyncVersion, field.TypeInt64, value)
	}
	_node = &MarketplaceCredential{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketplacecredential.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
