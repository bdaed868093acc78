package marketplace

import "time"

// Amount is a decimal amount as the marketplace serializes it.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Buyer identifies the purchasing counterparty on an order.
type Buyer struct {
	Username string `json:"username"`
}

// LineItem is one purchased listing line on an order.
type LineItem struct {
	LineItemID   string `json:"lineItemId"`
	SKU          string `json:"sku"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	LineItemCost Amount `json:"lineItemCost"`
}

// PricingSummary aggregates the order's monetary fields.
type PricingSummary struct {
	Total         Amount `json:"total"`
	DeliveryCost  Amount `json:"deliveryCost"`
	TotalFeeBasis Amount `json:"totalMarketplaceFee"`
}

// Order is a sales order as fetched from the marketplace API.
type Order struct {
	OrderID                string         `json:"orderId"`
	LegacyOrderID          string         `json:"legacyOrderId"`
	CreationDate           time.Time      `json:"creationDate"`
	OrderFulfillmentStatus string         `json:"orderFulfillmentStatus"`
	Buyer                  Buyer          `json:"buyer"`
	PricingSummary         PricingSummary `json:"pricingSummary"`
	LineItems              []LineItem     `json:"lineItems"`
}

type ordersPage struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
	Limit  int     `json:"limit"`
}

// TokenGrant is the provider's token-endpoint response.
type TokenGrant struct {
	AccessToken           string `json:"access_token"`
	TokenType             string `json:"token_type"`
	ExpiresIn             int64  `json:"expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
	Scope                 string `json:"scope"`
}

// AccountIdentity describes the seller account behind a token.
type AccountIdentity struct {
	AccountID string `json:"userId"`
	Username  string `json:"username"`
}
