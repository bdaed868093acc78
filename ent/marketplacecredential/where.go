// Code generated by ent, DO NOT EDIT.

package marketplacecredential

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/aaron-lee-hebert/seller-metrics/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldUserID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldProvider, v))
}

// AccessTokenCipher applies equality check predicate on the "access_token_cipher" field. It's identical to AccessTokenCipherEQ.
func AccessTokenCipher(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldAccessTokenCipher, v))
}

// RefreshTokenCipher applies equality check predicate on the "refresh_token_cipher" field. It's identical to RefreshTokenCipherEQ.
func RefreshTokenCipher(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldRefreshTokenCipher, v))
}

// AccessTokenExpiresAt applies equality check predicate on the "access_token_expires_at" field. It's identical to AccessTokenExpiresAtEQ.
func AccessTokenExpiresAt(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldAccessTokenExpiresAt, v))
}

// RefreshTokenExpiresAt applies equality check predicate on the "refresh_token_expires_at" field. It's identical to RefreshTokenExpiresAtEQ.
func RefreshTokenExpiresAt(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldRefreshTokenExpiresAt, v))
}

// Connected applies equality check predicate on the "connected" field. It's identical to ConnectedEQ.
func Connected(v bool) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldConnected, v))
}

// ExternalAccountID applies equality check predicate on the "external_account_id" field. It's identical to ExternalAccountIDEQ.
func ExternalAccountID(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldExternalAccountID, v))
}

// AccountDisplayName applies equality check predicate on the "account_display_name" field. It's identical to AccountDisplayNameEQ.
func AccountDisplayName(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldAccountDisplayName, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldScope, v))
}

// LastSyncedAt applies equality check predicate on the "last_synced_at" field. It's identical to LastSyncedAtEQ.
func LastSyncedAt(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldLastSyncedAt, v))
}

// LastSyncError applies equality check predicate on the "last_sync_error" field. It's identical to LastSyncErrorEQ.
func LastSyncError(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldLastSyncError, v))
}

// SyncVersion applies equality check predicate on the "sync_version" field. It's identical to SyncVersionEQ.
func SyncVersion(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldSyncVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldUserID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContainsFold(FieldProvider, v))
}

// AccessTokenCipherEQ applies the EQ predicate on the "access_token_cipher" field.
func AccessTokenCipherEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldAccessTokenCipher, v))
}

// AccessTokenCipherNEQ applies the NEQ predicate on the "access_token_cipher" field.
func AccessTokenCipherNEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldAccessTokenCipher, v))
}

// AccessTokenCipherIn applies the In predicate on the "access_token_cipher" field.
func AccessTokenCipherIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldAccessTokenCipher, vs...))
}

// AccessTokenCipherNotIn applies the NotIn predicate on the "access_token_cipher" field.
func AccessTokenCipherNotIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldAccessTokenCipher, vs...))
}

// AccessTokenCipherGT applies the GT predicate on the "access_token_cipher" field.
func AccessTokenCipherGT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldAccessTokenCipher, v))
}

// AccessTokenCipherGTE applies the GTE predicate on the "access_token_cipher" field.
func AccessTokenCipherGTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldAccessTokenCipher, v))
}

// AccessTokenCipherLT applies the LT predicate on the "access_token_cipher" field.
func AccessTokenCipherLT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldAccessTokenCipher, v))
}

// AccessTokenCipherLTE applies the LTE predicate on the "access_token_cipher" field.
func AccessTokenCipherLTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldAccessTokenCipher, v))
}

// AccessTokenCipherContains applies the Contains predicate on the "access_token_cipher" field.
func AccessTokenCipherContains(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContains(FieldAccessTokenCipher, v))
}

// AccessTokenCipherHasPrefix applies the HasPrefix predicate on the "access_token_cipher" field.
func AccessTokenCipherHasPrefix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasPrefix(FieldAccessTokenCipher, v))
}

// AccessTokenCipherHasSuffix applies the HasSuffix predicate on the "access_token_cipher" field.
func AccessTokenCipherHasSuffix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasSuffix(FieldAccessTokenCipher, v))
}

// AccessTokenCipherIsNil applies the IsNil predicate on the "access_token_cipher" field.
func AccessTokenCipherIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldAccessTokenCipher))
}

// AccessTokenCipherNotNil applies the NotNil predicate on the "access_token_cipher" field.
func AccessTokenCipherNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldAccessTokenCipher))
}

// AccessTokenCipherEqualFold applies the EqualFold predicate on the "access_token_cipher" field.
func AccessTokenCipherEqualFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEqualFold(FieldAccessTokenCipher, v))
}

// AccessTokenCipherContainsFold applies the ContainsFold predicate on the "access_token_cipher" field.
func AccessTokenCipherContainsFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContainsFold(FieldAccessTokenCipher, v))
}

// RefreshTokenCipherEQ applies the EQ predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherNEQ applies the NEQ predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherNEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherIn applies the In predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldRefreshTokenCipher, vs...))
}

// RefreshTokenCipherNotIn applies the NotIn predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherNotIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldRefreshTokenCipher, vs...))
}

// RefreshTokenCipherGT applies the GT predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherGT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherGTE applies the GTE predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherGTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherLT applies the LT predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherLT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherLTE applies the LTE predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherLTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherContains applies the Contains predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherContains(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContains(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherHasPrefix applies the HasPrefix predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherHasPrefix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasPrefix(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherHasSuffix applies the HasSuffix predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherHasSuffix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasSuffix(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherIsNil applies the IsNil predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldRefreshTokenCipher))
}

// RefreshTokenCipherNotNil applies the NotNil predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldRefreshTokenCipher))
}

// RefreshTokenCipherEqualFold applies the EqualFold predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherEqualFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEqualFold(FieldRefreshTokenCipher, v))
}

// RefreshTokenCipherContainsFold applies the ContainsFold predicate on the "refresh_token_cipher" field.
func RefreshTokenCipherContainsFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContainsFold(FieldRefreshTokenCipher, v))
}

// AccessTokenExpiresAtEQ applies the EQ predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldAccessTokenExpiresAt, v))
}

// AccessTokenExpiresAtNEQ applies the NEQ predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtNEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldAccessTokenExpiresAt, v))
}

// AccessTokenExpiresAtIn applies the In predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldAccessTokenExpiresAt, vs...))
}

// AccessTokenExpiresAtNotIn applies the NotIn predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtNotIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldAccessTokenExpiresAt, vs...))
}

// AccessTokenExpiresAtGT applies the GT predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtGT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldAccessTokenExpiresAt, v))
}

// AccessTokenExpiresAtGTE applies the GTE predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtGTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldAccessTokenExpiresAt, v))
}

// AccessTokenExpiresAtLT applies the LT predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtLT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldAccessTokenExpiresAt, v))
}

// AccessTokenExpiresAtLTE applies the LTE predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtLTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldAccessTokenExpiresAt, v))
}

// AccessTokenExpiresAtIsNil applies the IsNil predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldAccessTokenExpiresAt))
}

// AccessTokenExpiresAtNotNil applies the NotNil predicate on the "access_token_expires_at" field.
func AccessTokenExpiresAtNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldAccessTokenExpiresAt))
}

// RefreshTokenExpiresAtEQ applies the EQ predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldRefreshTokenExpiresAt, v))
}

// RefreshTokenExpiresAtNEQ applies the NEQ predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtNEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldRefreshTokenExpiresAt, v))
}

// RefreshTokenExpiresAtIn applies the In predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldRefreshTokenExpiresAt, vs...))
}

// RefreshTokenExpiresAtNotIn applies the NotIn predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtNotIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldRefreshTokenExpiresAt, vs...))
}

// RefreshTokenExpiresAtGT applies the GT predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtGT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldRefreshTokenExpiresAt, v))
}

// RefreshTokenExpiresAtGTE applies the GTE predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtGTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldRefreshTokenExpiresAt, v))
}

// RefreshTokenExpiresAtLT applies the LT predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtLT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldRefreshTokenExpiresAt, v))
}

// RefreshTokenExpiresAtLTE applies the LTE predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtLTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldRefreshTokenExpiresAt, v))
}

// RefreshTokenExpiresAtIsNil applies the IsNil predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldRefreshTokenExpiresAt))
}

// RefreshTokenExpiresAtNotNil applies the NotNil predicate on the "refresh_token_expires_at" field.
func RefreshTokenExpiresAtNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldRefreshTokenExpiresAt))
}

// ConnectedEQ applies the EQ predicate on the "connected" field.
func ConnectedEQ(v bool) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldConnected, v))
}

// ConnectedNEQ applies the NEQ predicate on the "connected" field.
func ConnectedNEQ(v bool) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldConnected, v))
}

// ExternalAccountIDEQ applies the EQ predicate on the "external_account_id" field.
func ExternalAccountIDEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldExternalAccountID, v))
}

// ExternalAccountIDNEQ applies the NEQ predicate on the "external_account_id" field.
func ExternalAccountIDNEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldExternalAccountID, v))
}

// ExternalAccountIDIn applies the In predicate on the "external_account_id" field.
func ExternalAccountIDIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldExternalAccountID, vs...))
}

// ExternalAccountIDNotIn applies the NotIn predicate on the "external_account_id" field.
func ExternalAccountIDNotIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldExternalAccountID, vs...))
}

// ExternalAccountIDGT applies the GT predicate on the "external_account_id" field.
func ExternalAccountIDGT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldExternalAccountID, v))
}

// ExternalAccountIDGTE applies the GTE predicate on the "external_account_id" field.
func ExternalAccountIDGTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldExternalAccountID, v))
}

// ExternalAccountIDLT applies the LT predicate on the "external_account_id" field.
func ExternalAccountIDLT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldExternalAccountID, v))
}

// ExternalAccountIDLTE applies the LTE predicate on the "external_account_id" field.
func ExternalAccountIDLTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldExternalAccountID, v))
}

// ExternalAccountIDContains applies the Contains predicate on the "external_account_id" field.
func ExternalAccountIDContains(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContains(FieldExternalAccountID, v))
}

// ExternalAccountIDHasPrefix applies the HasPrefix predicate on the "external_account_id" field.
func ExternalAccountIDHasPrefix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasPrefix(FieldExternalAccountID, v))
}

// ExternalAccountIDHasSuffix applies the HasSuffix predicate on the "external_account_id" field.
func ExternalAccountIDHasSuffix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasSuffix(FieldExternalAccountID, v))
}

// ExternalAccountIDIsNil applies the IsNil predicate on the "external_account_id" field.
func ExternalAccountIDIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldExternalAccountID))
}

// ExternalAccountIDNotNil applies the NotNil predicate on the "external_account_id" field.
func ExternalAccountIDNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldExternalAccountID))
}

// ExternalAccountIDEqualFold applies the EqualFold predicate on the "external_account_id" field.
func ExternalAccountIDEqualFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEqualFold(FieldExternalAccountID, v))
}

// ExternalAccountIDContainsFold applies the ContainsFold predicate on the "external_account_id" field.
func ExternalAccountIDContainsFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContainsFold(FieldExternalAccountID, v))
}

// AccountDisplayNameEQ applies the EQ predicate on the "account_display_name" field.
func AccountDisplayNameEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldAccountDisplayName, v))
}

// AccountDisplayNameNEQ applies the NEQ predicate on the "account_display_name" field.
func AccountDisplayNameNEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldAccountDisplayName, v))
}

// AccountDisplayNameIn applies the In predicate on the "account_display_name" field.
func AccountDisplayNameIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldAccountDisplayName, vs...))
}

// AccountDisplayNameNotIn applies the NotIn predicate on the "account_display_name" field.
func AccountDisplayNameNotIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldAccountDisplayName, vs...))
}

// AccountDisplayNameGT applies the GT predicate on the "account_display_name" field.
func AccountDisplayNameGT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldAccountDisplayName, v))
}

// AccountDisplayNameGTE applies the GTE predicate on the "account_display_name" field.
func AccountDisplayNameGTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldAccountDisplayName, v))
}

// AccountDisplayNameLT applies the LT predicate on the "account_display_name" field.
func AccountDisplayNameLT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldAccountDisplayName, v))
}

// AccountDisplayNameLTE applies the LTE predicate on the "account_display_name" field.
func AccountDisplayNameLTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldAccountDisplayName, v))
}

// AccountDisplayNameContains applies the Contains predicate on the "account_display_name" field.
func AccountDisplayNameContains(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContains(FieldAccountDisplayName, v))
}

// AccountDisplayNameHasPrefix applies the HasPrefix predicate on the "account_display_name" field.
func AccountDisplayNameHasPrefix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasPrefix(FieldAccountDisplayName, v))
}

// AccountDisplayNameHasSuffix applies the HasSuffix predicate on the "account_display_name" field.
func AccountDisplayNameHasSuffix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasSuffix(FieldAccountDisplayName, v))
}

// AccountDisplayNameIsNil applies the IsNil predicate on the "account_display_name" field.
func AccountDisplayNameIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldAccountDisplayName))
}

// AccountDisplayNameNotNil applies the NotNil predicate on the "account_display_name" field.
func AccountDisplayNameNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldAccountDisplayName))
}

// AccountDisplayNameEqualFold applies the EqualFold predicate on the "account_display_name" field.
func AccountDisplayNameEqualFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEqualFold(FieldAccountDisplayName, v))
}

// AccountDisplayNameContainsFold applies the ContainsFold predicate on the "account_display_name" field.
func AccountDisplayNameContainsFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContainsFold(FieldAccountDisplayName, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeIsNil applies the IsNil predicate on the "scope" field.
func ScopeIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldScope))
}

// ScopeNotNil applies the NotNil predicate on the "scope" field.
func ScopeNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldScope))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContainsFold(FieldScope, v))
}

// LastSyncedAtEQ applies the EQ predicate on the "last_synced_at" field.
func LastSyncedAtEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtNEQ applies the NEQ predicate on the "last_synced_at" field.
func LastSyncedAtNEQ(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldLastSyncedAt, v))
}

// LastSyncedAtIn applies the In predicate on the "last_synced_at" field.
func LastSyncedAtIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtNotIn applies the NotIn predicate on the "last_synced_at" field.
func LastSyncedAtNotIn(vs ...time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldLastSyncedAt, vs...))
}

// LastSyncedAtGT applies the GT predicate on the "last_synced_at" field.
func LastSyncedAtGT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldLastSyncedAt, v))
}

// LastSyncedAtGTE applies the GTE predicate on the "last_synced_at" field.
func LastSyncedAtGTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldLastSyncedAt, v))
}

// LastSyncedAtLT applies the LT predicate on the "last_synced_at" field.
func LastSyncedAtLT(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldLastSyncedAt, v))
}

// LastSyncedAtLTE applies the LTE predicate on the "last_synced_at" field.
func LastSyncedAtLTE(v time.Time) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldLastSyncedAt, v))
}

// LastSyncedAtIsNil applies the IsNil predicate on the "last_synced_at" field.
func LastSyncedAtIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldLastSyncedAt))
}

// LastSyncedAtNotNil applies the NotNil predicate on the "last_synced_at" field.
func LastSyncedAtNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldLastSyncedAt))
}

// LastSyncErrorEQ applies the EQ predicate on the "last_sync_error" field.
func LastSyncErrorEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldLastSyncError, v))
}

// LastSyncErrorNEQ applies the NEQ predicate on the "last_sync_error" field.
func LastSyncErrorNEQ(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldLastSyncError, v))
}

// LastSyncErrorIn applies the In predicate on the "last_sync_error" field.
func LastSyncErrorIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldLastSyncError, vs...))
}

// LastSyncErrorNotIn applies the NotIn predicate on the "last_sync_error" field.
func LastSyncErrorNotIn(vs ...string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldLastSyncError, vs...))
}

// LastSyncErrorGT applies the GT predicate on the "last_sync_error" field.
func LastSyncErrorGT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldLastSyncError, v))
}

// LastSyncErrorGTE applies the GTE predicate on the "last_sync_error" field.
func LastSyncErrorGTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldLastSyncError, v))
}

// LastSyncErrorLT applies the LT predicate on the "last_sync_error" field.
func LastSyncErrorLT(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldLastSyncError, v))
}

// LastSyncErrorLTE applies the LTE predicate on the "last_sync_error" field.
func LastSyncErrorLTE(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldLastSyncError, v))
}

// LastSyncErrorContains applies the Contains predicate on the "last_sync_error" field.
func LastSyncErrorContains(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContains(FieldLastSyncError, v))
}

// LastSyncErrorHasPrefix applies the HasPrefix predicate on the "last_sync_error" field.
func LastSyncErrorHasPrefix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasPrefix(FieldLastSyncError, v))
}

// LastSyncErrorHasSuffix applies the HasSuffix predicate on the "last_sync_error" field.
func LastSyncErrorHasSuffix(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldHasSuffix(FieldLastSyncError, v))
}

// LastSyncErrorIsNil applies the IsNil predicate on the "last_sync_error" field.
func LastSyncErrorIsNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIsNull(FieldLastSyncError))
}

// LastSyncErrorNotNil applies the NotNil predicate on the "last_sync_error" field.
func LastSyncErrorNotNil() predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotNull(FieldLastSyncError))
}

// LastSyncErrorEqualFold applies the EqualFold predicate on the "last_sync_error" field.
func LastSyncErrorEqualFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEqualFold(FieldLastSyncError, v))
}

// LastSyncErrorContainsFold applies the ContainsFold predicate on the "last_sync_error" field.
func LastSyncErrorContainsFold(v string) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldContainsFold(FieldLastSyncError, v))
}

// SyncVersionEQ applies the EQ predicate on the "sync_version" field.
func SyncVersionEQ(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldEQ(FieldSyncVersion, v))
}

// SyncVersionNEQ applies the NEQ predicate on the "sync_version" field.
func SyncVersionNEQ(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNEQ(FieldSyncVersion, v))
}

// SyncVersionIn applies the In predicate on the "sync_version" field.
func SyncVersionIn(vs ...int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldIn(FieldSyncVersion, vs...))
}

// SyncVersionNotIn applies the NotIn predicate on the "sync_version" field.
func SyncVersionNotIn(vs ...int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldNotIn(FieldSyncVersion, vs...))
}

// SyncVersionGT applies the GT predicate on the "sync_version" field.
func SyncVersionGT(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGT(FieldSyncVersion, v))
}

// SyncVersionGTE applies the GTE predicate on the "sync_version" field.
func SyncVersionGTE(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldGTE(FieldSyncVersion, v))
}

// SyncVersionLT applies the LT predicate on the "sync_version" field.
func SyncVersionLT(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLT(FieldSyncVersion, v))
}

// SyncVersionLTE applies the LTE predicate on the "sync_version" field.
func SyncVersionLTE(v int64) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.FieldLTE(FieldSyncVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MarketplaceCredential) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MarketplaceCredential) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MarketplaceCredential) predicate.MarketplaceCredential {
	return predicate.MarketplaceCredential(sql.NotPredicates(p))
}
