// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aaron-lee-hebert/seller-metrics/ent/marketplacecredential"
)

// MarketplaceCredential is the model entity for the MarketplaceCredential schema.
type MarketplaceCredential struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// provider kind: marketplace | invoicing
	Provider string `json:"provider,omitempty"`
	// AccessTokenCipher holds the value of the "access_token_cipher" field.
	AccessTokenCipher *string `json:"access_token_cipher,omitempty"`
	// RefreshTokenCipher holds the value of the "refresh_token_cipher" field.
	RefreshTokenCipher *string `json:"refresh_token_cipher,omitempty"`
	// AccessTokenExpiresAt holds the value of the "access_token_expires_at" field.
	AccessTokenExpiresAt *time.Time `json:"access_token_expires_at,omitempty"`
	// RefreshTokenExpiresAt holds the value of the "refresh_token_expires_at" field.
	RefreshTokenExpiresAt *time.Time `json:"refresh_token_expires_at,omitempty"`
	// Connected holds the value of the "connected" field.
	Connected bool `json:"connected,omitempty"`
	// ExternalAccountID holds the value of the "external_account_id" field.
	ExternalAccountID *string `json:"external_account_id,omitempty"`
	// AccountDisplayName holds the value of the "account_display_name" field.
	AccountDisplayName *string `json:"account_display_name,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope *string `json:"scope,omitempty"`
	// LastSyncedAt holds the value of the "last_synced_at" field.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	// LastSyncError holds the value of the "last_sync_error" field.
	LastSyncError *string `json:"last_sync_error,omitempty"`
	// optimistic concurrency token, bumped on every credential write
	SyncVersion  int64 `json:"sync_version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MarketplaceCredential) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case marketplacecredential.FieldConnected:
			values[i] = new(sql.NullBool)
		case marketplacecredential.FieldID, marketplacecredential.FieldUserID, marketplacecredential.FieldSyncVersion:
			values[i] = new(sql.NullInt64)
		case marketplacecredential.FieldProvider, marketplacecredential.FieldAccessTokenCipher, marketplacecredential.FieldRefreshTokenCipher, marketplacecredential.FieldExternalAccountID, marketplacecredential.FieldAccountDisplayName, marketplacecredential.FieldScope, marketplacecredential.FieldLastSyncError:
			values[i] = new(sql.NullString)
		case marketplacecredential.FieldCreatedAt, marketplacecredential.FieldUpdatedAt, marketplacecredential.FieldAccessTokenExpiresAt, marketplacecredential.FieldRefreshTokenExpiresAt, marketplacecredential.FieldLastSyncedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MarketplaceCredential fields.
func (_m *MarketplaceCredential) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case marketplacecredential.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case marketplacecredential.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case marketplacecredential.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case marketplacecredential.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case marketplacecredential.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case marketplacecredential.FieldAccessTokenCipher:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_token_cipher", values[i])
			} else if value.Valid {
				_m.AccessTokenCipher = new(string)
				*_m.AccessTokenCipher = value.String
			}
		case marketplacecredential.FieldRefreshTokenCipher:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token_cipher", values[i])
			} else if value.Valid {
				_m.RefreshTokenCipher = new(string)
				*_m.RefreshTokenCipher = value.String
			}
		case marketplacecredential.FieldAccessTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field access_token_expires_at", values[i])
			} else if value.Valid {
				_m.AccessTokenExpiresAt = new(time.Time)
				*_m.AccessTokenExpiresAt = value.Time
			}
		case marketplacecredential.FieldRefreshTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field refresh_token_expires_at", values[i])
			} else if value.Valid {
				_m.RefreshTokenExpiresAt = new(time.Time)
				*_m.RefreshTokenExpiresAt = value.Time
			}
		case marketplacecredential.FieldConnected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field connected", values[i])
			} else if value.Valid {
				_m.Connected = value.Bool
			}
		case marketplacecredential.FieldExternalAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_account_id", values[i])
			} else if value.Valid {
				_m.ExternalAccountID = new(string)
				*_m.ExternalAccountID = value.String
			}
		case marketplacecredential.FieldAccountDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_display_name", values[i])
			} else if value.Valid {
				_m.AccountDisplayName = new(string)
				*_m.AccountDisplayName = value.String
			}
		case marketplacecredential.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = new(string)
				*_m.Scope = value.String
			}
		case marketplacecredential.FieldLastSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_synced_at", values[i])
			} else if value.Valid {
				_m.LastSyncedAt = new(time.Time)
				*_m.LastSyncedAt = value.Time
			}
		case marketplacecredential.FieldLastSyncError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_sync_error", values[i])
			} else if value.Valid {
				_m.LastSyncError = new(string)
				*_m.LastSyncError = value.String
			}
		case marketplacecredential.FieldSyncVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sync_version", values[i])
			} else if value.Valid {
				_m.SyncVersion = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MarketplaceCredential.
// This includes values selected through modifiers, order, etc.
func (_m *MarketplaceCredential) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MarketplaceCredential.
// Note that you need to call MarketplaceCredential.Unwrap() before calling this method if this MarketplaceCredential
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MarketplaceCredential) Update() *MarketplaceCredentialUpdateOne {
	return NewMarketplaceCredentialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MarketplaceCredential entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MarketplaceCredential) Unwrap() *MarketplaceCredential {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MarketplaceCredential is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MarketplaceCredential) String() string {
	var builder strings.Builder
	builder.WriteString("MarketplaceCredential(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	if v := _m.AccessTokenCipher; v != nil {
		builder.WriteString("access_token_cipher=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RefreshTokenCipher; v != nil {
		builder.WriteString("refresh_token_cipher=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AccessTokenExpiresAt; v != nil {
		builder.WriteString("access_token_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RefreshTokenExpiresAt; v != nil {
		builder.WriteString("refresh_token_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("connected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Connected))
	builder.WriteString(", ")
	if v := _m.ExternalAccountID; v != nil {
		builder.WriteString("external_account_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AccountDisplayName; v != nil {
		builder.WriteString("account_display_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Scope; v != nil {
		builder.WriteString("scope=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastSyncedAt; v != nil {
		builder.WriteString("last_synced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastSyncError; v != nil {
		builder.WriteString("last_sync_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("sync_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.SyncVersion))
	builder.WriteByte(')')
	return builder.String()
}

// MarketplaceCredentials is a parsable slice of MarketplaceCredential.
type MarketplaceCredentials []*MarketplaceCredential
