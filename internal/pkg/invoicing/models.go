package invoicing

import "time"

// Customer identifies the invoiced counterparty.
type Customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InvoiceItem is one product line on an invoice.
type InvoiceItem struct {
	ProductSKU  string `json:"productSku"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}

// Invoice is an invoice as fetched from the invoicing API.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	Status        string        `json:"status"`
	InvoiceDate   time.Time     `json:"invoiceDate"`
	Currency      string        `json:"currency"`
	Total         string        `json:"total"`
	AmountDue     string        `json:"amountDue"`
	AmountPaid    string        `json:"amountPaid"`
	Customer      Customer      `json:"customer"`
	Items         []InvoiceItem `json:"items"`
}

type invoicesPage struct {
	Invoices []Invoice `json:"invoices"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
	Total    int       `json:"total"`
}

// BusinessProfile describes the token owner's business.
type BusinessProfile struct {
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
}
