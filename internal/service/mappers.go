package service

import (
	"fmt"

	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/invoicing"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
)

// grantInfoFromMarketplace converts the marketplace token response into
// the provider-agnostic grant the lifecycle manager consumes.
func grantInfoFromMarketplace(g *marketplace.TokenGrant) *TokenGrantInfo {
	return &TokenGrantInfo{
		AccessToken:      g.AccessToken,
		ExpiresIn:        g.ExpiresIn,
		RefreshToken:     g.RefreshToken,
		RefreshExpiresIn: g.RefreshTokenExpiresIn,
		Scope:            g.Scope,
	}
}

// orderItem and invoiceItem defer payload normalization into the
// reconciliation loop so one malformed record fails alone.

type orderItem struct {
	order marketplace.Order
}

func (i orderItem) externalID() string                { return i.order.OrderID }
func (i orderItem) normalize() (FetchedRecord, error) { return mapOrder(i.order) }

type invoiceItem struct {
	invoice invoicing.Invoice
}

func (i invoiceItem) externalID() string                { return i.invoice.ID }
func (i invoiceItem) normalize() (FetchedRecord, error) { return mapInvoice(i.invoice) }

// mapOrder normalizes a marketplace order for reconciliation. When the
// order has several line items only the first is mapped; the record is a
// single-item simplification.
func mapOrder(o marketplace.Order) (FetchedRecord, error) {
	if o.OrderID == "" {
		return FetchedRecord{}, fmt.Errorf("order missing orderId")
	}
	currency := o.PricingSummary.Total.Currency
	gross, err := ParseMoney(o.PricingSummary.Total.Value, currency)
	if err != nil {
		return FetchedRecord{}, fmt.Errorf("order %s: total: %w", o.OrderID, err)
	}
	fee, err := ParseMoney(o.PricingSummary.TotalFeeBasis.Value, currency)
	if err != nil {
		return FetchedRecord{}, fmt.Errorf("order %s: fee: %w", o.OrderID, err)
	}
	shipping, err := ParseMoney(o.PricingSummary.DeliveryCost.Value, currency)
	if err != nil {
		return FetchedRecord{}, fmt.Errorf("order %s: delivery cost: %w", o.OrderID, err)
	}

	rec := FetchedRecord{
		ExternalID:       o.OrderID,
		LegacyExternalID: o.LegacyOrderID,
		RecordType:       RecordTypeOrder,
		TransactionDate:  o.CreationDate,
		Counterparty:     o.Buyer.Username,
		RawStatus:        o.OrderFulfillmentStatus,
		Gross:            gross,
		Fee:              fee,
		Shipping:         shipping,
	}
	if len(o.LineItems) > 0 {
		rec.ItemTitle = o.LineItems[0].Title
		rec.ItemSKU = o.LineItems[0].SKU
	}
	return rec, nil
}

// mapInvoice normalizes an invoice. The shipping/due slot carries the
// outstanding amount; invoices have no marketplace fee.
func mapInvoice(inv invoicing.Invoice) (FetchedRecord, error) {
	if inv.ID == "" {
		return FetchedRecord{}, fmt.Errorf("invoice missing id")
	}
	gross, err := ParseMoney(inv.Total, inv.Currency)
	if err != nil {
		return FetchedRecord{}, fmt.Errorf("invoice %s: total: %w", inv.ID, err)
	}
	due, err := ParseMoney(inv.AmountDue, inv.Currency)
	if err != nil {
		return FetchedRecord{}, fmt.Errorf("invoice %s: amount due: %w", inv.ID, err)
	}

	rec := FetchedRecord{
		ExternalID:       inv.ID,
		LegacyExternalID: inv.InvoiceNumber,
		RecordType:       RecordTypeInvoice,
		TransactionDate:  inv.InvoiceDate,
		Counterparty:     inv.Customer.Name,
		RawStatus:        inv.Status,
		Gross:            gross,
		Fee:              NewMoney(0, inv.Currency),
		Shipping:         due,
	}
	if len(inv.Items) > 0 {
		rec.ItemTitle = inv.Items[0].Description
		rec.ItemSKU = inv.Items[0].ProductSKU
	}
	return rec, nil
}
