package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an immutable amount in minor units (cents) tagged with an ISO
// 4217 currency code. Arithmetic between mismatched currencies is an
// error, never a silent conversion.
type Money struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
}

// ErrCurrencyMismatch is returned when arithmetic mixes currencies.
var ErrCurrencyMismatch = fmt.Errorf("money: currency mismatch")

// NewMoney builds a Money value. Currency is upper-cased; empty currency
// defaults to USD.
func NewMoney(cents int64, currency string) Money {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	return Money{Cents: cents, Currency: currency}
}

// ParseMoney parses a decimal string like "12.34" into minor units.
// Fractional digits beyond two are truncated, not rounded: provider
// amounts are authoritative to the cent and sub-cent precision carries
// no meaning here ("12.339" parses as 12.33).
func ParseMoney(value, currency string) (Money, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return NewMoney(0, currency), nil
	}
	neg := strings.HasPrefix(value, "-")
	if neg {
		value = value[1:]
	}
	whole, frac, _ := strings.Cut(value, ".")
	if whole == "" {
		whole = "0"
	}
	switch len(frac) {
	case 0:
		frac = "00"
	case 1:
		frac += "0"
	case 2:
	default:
		frac = frac[:2]
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("money: parse %q: %w", value, err)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("money: parse %q: %w", value, err)
	}
	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return NewMoney(cents, currency), nil
}

// Add returns m + other, failing on currency mismatch.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Cents: m.Cents + other.Cents, Currency: m.Currency}, nil
}

// Sub returns m - other, failing on currency mismatch.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Cents: m.Cents - other.Cents, Currency: m.Currency}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.Cents == 0 }

// String renders the amount as "12.34 USD".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, m.Currency)
}
