// Code generated by ent, DO NOT EDIT.

package marketplacecredential

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the marketplacecredential type in the database.
	Label = "marketplace_credential"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldAccessTokenCipher holds the string denoting the access_token_cipher field in the database.
	FieldAccessTokenCipher = "access_token_cipher"
	// FieldRefreshTokenCipher holds the string denoting the refresh_token_cipher field in the database.
	FieldRefreshTokenCipher = "refresh_token_cipher"
	// FieldAccessTokenExpiresAt holds the string denoting the access_token_expires_at field in the database.
	FieldAccessTokenExpiresAt = "access_token_expires_at"
	// FieldRefreshTokenExpiresAt holds the string denoting the refresh_token_expires_at field in the database.
	FieldRefreshTokenExpiresAt = "refresh_token_expires_at"
	// FieldConnected holds the string denoting the connected field in the database.
	FieldConnected = "connected"
	// FieldExternalAccountID holds the string denoting the external_account_id field in the database.
	FieldExternalAccountID = "external_account_id"
	// FieldAccountDisplayName holds the string denoting the account_display_name field in the database.
	FieldAccountDisplayName = "account_display_name"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldLastSyncedAt holds the string denoting the last_synced_at field in the database.
	FieldLastSyncedAt = "last_synced_at"
	// FieldLastSyncError holds the string denoting the last_sync_error field in the database.
	FieldLastSyncError = "last_sync_error"
	// FieldSyncVersion holds the string denoting the sync_version field in the database.
	FieldSyncVersion = "sync_version"
	// Table holds the table name of the marketplacecredential in the database.
	Table = "marketplace_credentials"
)

// Columns holds all SQL columns for marketplacecredential fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldProvider,
	FieldAccessTokenCipher,
	FieldRefreshTokenCipher,
	FieldAccessTokenExpiresAt,
	FieldRefreshTokenExpiresAt,
	FieldConnected,
	FieldExternalAccountID,
	FieldAccountDisplayName,
	FieldScope,
	FieldLastSyncedAt,
	FieldLastSyncError,
	FieldSyncVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultConnected holds the default value on creation for the "connected" field.
	DefaultConnected bool
	// DefaultSyncVersion holds the default value on creation for the "sync_version" field.
	DefaultSyncVersion int64
)

// OrderOption defines the ordering options for the MarketplaceCredential queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByAccessTokenCipher orders the results by the access_token_cipher field.
func ByAccessTokenCipher(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessTokenCipher, opts...).ToFunc()
}

// ByRefreshTokenCipher orders the results by the refresh_token_cipher field.
func ByRefreshTokenCipher(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefreshTokenCipher, opts...).ToFunc()
}

// ByAccessTokenExpiresAt orders the results by the access_token_expires_at field.
func ByAccessTokenExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessTokenExpiresAt, opts...).ToFunc()
}

// ByRefreshTokenExpiresAt orders the results by the refresh_token_expires_at field.
func ByRefreshTokenExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefreshTokenExpiresAt, opts...).ToFunc()
}

// ByConnected orders the results by the connected field.
func ByConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnected, opts...).ToFunc()
}

// ByExternalAccountID orders the results by the external_account_id field.
func ByExternalAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalAccountID, opts...).ToFunc()
}

// ByAccountDisplayName orders the results by the account_display_name field.
func ByAccountDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountDisplayName, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByLastSyncedAt orders the results by the last_synced_at field.
func ByLastSyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncedAt, opts...).ToFunc()
}

// ByLastSyncError orders the results by the last_sync_error field.
func ByLastSyncError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncError, opts...).ToFunc()
}

// BySyncVersion orders the results by the sync_version field.
func BySyncVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncVersion, opts...).ToFunc()
}
