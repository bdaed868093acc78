// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aaron-lee-hebert/seller-metrics/ent/externalrecord"
)

// ExternalRecord is the model entity for the ExternalRecord schema.
type ExternalRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// order | invoice
	RecordType string `json:"record_type,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// secondary provider identifier kept for backward-compat matching
	LegacyExternalID *string `json:"legacy_external_id,omitempty"`
	// TransactionDate holds the value of the "transaction_date" field.
	TransactionDate time.Time `json:"transaction_date,omitempty"`
	// Counterparty holds the value of the "counterparty" field.
	Counterparty *string `json:"counterparty,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// GrossCents holds the value of the "gross_cents" field.
	GrossCents int64 `json:"gross_cents,omitempty"`
	// FeeCents holds the value of the "fee_cents" field.
	FeeCents int64 `json:"fee_cents,omitempty"`
	// ShippingCents holds the value of the "shipping_cents" field.
	ShippingCents int64 `json:"shipping_cents,omitempty"`
	// NetCents holds the value of the "net_cents" field.
	NetCents int64 `json:"net_cents,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ItemTitle holds the value of the "item_title" field.
	ItemTitle *string `json:"item_title,omitempty"`
	// ItemSku holds the value of the "item_sku" field.
	ItemSku *string `json:"item_sku,omitempty"`
	// InventoryItemID holds the value of the "inventory_item_id" field.
	InventoryItemID *int64 `json:"inventory_item_id,omitempty"`
	// LastSyncedAt holds the value of the "last_synced_at" field.
	LastSyncedAt time.Time `json:"last_synced_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExternalRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case externalrecord.FieldID, externalrecord.FieldUserID, externalrecord.FieldGrossCents, externalrecord.FieldFeeCents, externalrecord.FieldShippingCents, externalrecord.FieldNetCents, externalrecord.FieldInventoryItemID:
			values[i] = new(sql.NullInt64)
		case externalrecord.FieldProvider, externalrecord.FieldRecordType, externalrecord.FieldExternalID, externalrecord.FieldLegacyExternalID, externalrecord.FieldCounterparty, externalrecord.FieldCurrency, externalrecord.FieldStatus, externalrecord.FieldItemTitle, externalrecord.FieldItemSku:
			values[i] = new(sql.NullString)
		case externalrecord.FieldCreatedAt, externalrecord.FieldUpdatedAt, externalrecord.FieldTransactionDate, externalrecord.FieldLastSyncedAt, externalrecord.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExternalRecord fields.
func (_m *ExternalRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case externalrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case externalrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case externalrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case externalrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case externalrecord.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case externalrecord.FieldRecordType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_type", values[i])
			} else if value.Valid {
				_m.RecordType = value.String
			}
		case externalrecord.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case externalrecord.FieldLegacyExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_external_id", values[i])
			} else if value.Valid {
				_m.LegacyExternalID = new(string)
				*_m.LegacyExternalID = value.String
			}
		case externalrecord.FieldTransactionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_date", values[i])
			} else if value.Valid {
				_m.TransactionDate = value.Time
			}
		case externalrecord.FieldCounterparty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field counterparty", values[i])
			} else if value.Valid {
				_m.Counterparty = new(string)
				*_m.Counterparty = value.String
			}
		case externalrecord.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case externalrecord.FieldGrossCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gross_cents", values[i])
			} else if value.Valid {
				_m.GrossCents = value.Int64
			}
		case externalrecord.FieldFeeCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fee_cents", values[i])
			} else if value.Valid {
				_m.FeeCents = value.Int64
			}
		case externalrecord.FieldShippingCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field shipping_cents", values[i])
			} else if value.Valid {
				_m.ShippingCents = value.Int64
			}
		case externalrecord.FieldNetCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field net_cents", values[i])
			} else if value.Valid {
				_m.NetCents = value.Int64
			}
		case externalrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case externalrecord.FieldItemTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_title", values[i])
			} else if value.Valid {
				_m.ItemTitle = new(string)
				*_m.ItemTitle = value.String
			}
		case externalrecord.FieldItemSku:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_sku", values[i])
			} else if value.Valid {
				_m.ItemSku = new(string)
				*_m.ItemSku = value.String
			}
		case externalrecord.FieldInventoryItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field inventory_item_id", values[i])
			} else if value.Valid {
				_m.InventoryItemID = new(int64)
				*_m.InventoryItemID = value.Int64
			}
		case externalrecord.FieldLastSyncedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_synced_at", values[i])
			} else if value.Valid {
				_m.LastSyncedAt = value.Time
			}
		case externalrecord.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExternalRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ExternalRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExternalRecord.
// Note that you need to call ExternalRecord.Unwrap() before calling this method if this ExternalRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExternalRecord) Update() *ExternalRecordUpdateOne {
	return NewExternalRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExternalRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExternalRecord) Unwrap() *ExternalRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExternalRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExternalRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ExternalRecord(")
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
	builder.WriteString("record_type=")
	builder.WriteString(_m.RecordType)
	builder.WriteString(", ")
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	if v := _m.LegacyExternalID; v != nil {
		builder.WriteString("legacy_external_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transaction_date=")
	builder.WriteString(_m.TransactionDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Counterparty; v != nil {
		builder.WriteString("counterparty=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("gross_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrossCents))
	builder.WriteString(", ")
	builder.WriteString("fee_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeeCents))
	builder.WriteString(", ")
	builder.WriteString("shipping_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShippingCents))
	builder.WriteString(", ")
	builder.WriteString("net_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.NetCents))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ItemTitle; v != nil {
		builder.WriteString("item_title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ItemSku; v != nil {
		builder.WriteString("item_sku=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.InventoryItemID; v != nil {
		builder.WriteString("inventory_item_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("last_synced_at=")
	builder.WriteString(_m.LastSyncedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExternalRecords is a parsable slice of ExternalRecord.
type ExternalRecords []*ExternalRecord
