//go:build unit

package service

import (
	"testing"
	"time"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/invoicing"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
)

func TestMapOrder(t *testing.T) {
	t.Parallel()

	rec, err := mapOrder(testOrder("11-22222-33333"))
	if err != nil {
		t.Fatalf("mapOrder error: %v", err)
	}
	if rec.ExternalID != "11-22222-33333" {
		t.Fatalf("ExternalID = %q", rec.ExternalID)
	}
	if rec.LegacyExternalID != "legacy-11-22222-33333" {
		t.Fatalf("LegacyExternalID = %q", rec.LegacyExternalID)
	}
	if rec.RecordType != RecordTypeOrder {
		t.Fatalf("RecordType = %q", rec.RecordType)
	}
	if rec.Gross.Cents != 2599 || rec.Fee.Cents != 338 || rec.Shipping.Cents != 450 {
		t.Fatalf("amounts = %d/%d/%d", rec.Gross.Cents, rec.Fee.Cents, rec.Shipping.Cents)
	}
	if rec.Counterparty != "buyer-1" {
		t.Fatalf("Counterparty = %q", rec.Counterparty)
	}
	if rec.ItemTitle != "Vintage Camera" || rec.ItemSKU != "CAM-001" {
		t.Fatalf("line item = %q/%q", rec.ItemTitle, rec.ItemSKU)
	}
}

func TestMapOrderFirstLineItemOnly(t *testing.T) {
	t.Parallel()

	order := testOrder("multi")
	order.LineItems = append(order.LineItems, marketplace.LineItem{SKU: "OTHER", Title: "Second Item"})

	rec, err := mapOrder(order)
	if err != nil {
		t.Fatalf("mapOrder error: %v", err)
	}
	if rec.ItemSKU != "CAM-001" {
		t.Fatalf("ItemSKU = %q, want first line item's SKU", rec.ItemSKU)
	}
}

func TestMapOrderMissingID(t *testing.T) {
	t.Parallel()

	if _, err := mapOrder(marketplace.Order{}); err == nil {
		t.Fatal("expected error for order without orderId")
	}
}

func TestMapOrderBadAmount(t *testing.T) {
	t.Parallel()

	order := testOrder("bad")
	order.PricingSummary.Total.Value = "not-a-number"
	if _, err := mapOrder(order); err == nil {
		t.Fatal("expected error for malformed total")
	}
}

func TestMapInvoice(t *testing.T) {
	t.Parallel()

	inv := invoicing.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "2024-0042",
		Status:        "paid",
		InvoiceDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Currency:      "USD",
		Total:         "150.00",
		AmountDue:     "0.00",
		Customer:      invoicing.Customer{ID: "cust-1", Name: "Acme Corp"},
		Items: []invoicing.InvoiceItem{
			{ProductSKU: "SVC-01", Description: "Consulting", Quantity: 1},
		},
	}

	rec, err := mapInvoice(inv)
	if err != nil {
		t.Fatalf("mapInvoice error: %v", err)
	}
	if rec.ExternalID != "inv-1" || rec.LegacyExternalID != "2024-0042" {
		t.Fatalf("ids = %q/%q", rec.ExternalID, rec.LegacyExternalID)
	}
	if rec.RecordType != RecordTypeInvoice {
		t.Fatalf("RecordType = %q", rec.RecordType)
	}
	if rec.Gross.Cents != 15000 {
		t.Fatalf("Gross = %d", rec.Gross.Cents)
	}
	if !rec.Fee.IsZero() {
		t.Fatalf("Fee = %d, invoices carry no fee", rec.Fee.Cents)
	}
	if rec.Counterparty != "Acme Corp" {
		t.Fatalf("Counterparty = %q", rec.Counterparty)
	}
	if rec.ItemTitle != "Consulting" || rec.ItemSKU != "SVC-01" {
		t.Fatalf("item = %q/%q", rec.ItemTitle, rec.ItemSKU)
	}
}

func TestMapInvoiceMissingID(t *testing.T) {
	t.Parallel()

	if _, err := mapInvoice(invoicing.Invoice{}); err == nil {
		t.Fatal("expected error for invoice without id")
	}
}
