//go:build unit

package service

import (
	"errors"
	"testing"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		currency string
		want     int64
	}{
		{"12.34", "USD", 1234},
		{"12", "USD", 1200},
		{"12.3", "USD", 1230},
		{"0.05", "USD", 5},
		{"-3.50", "USD", -350},
		{".99", "USD", 99},
		{"", "USD", 0},
		{"12.349", "USD", 1234}, // extra precision is truncated
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in, tc.currency)
		if err != nil {
			t.Fatalf("ParseMoney(%q) error: %v", tc.in, err)
		}
		if got.Cents != tc.want {
			t.Fatalf("ParseMoney(%q) = %d cents, want %d", tc.in, got.Cents, tc.want)
		}
	}
}

func TestParseMoneyInvalid(t *testing.T) {
	t.Parallel()

	if _, err := ParseMoney("not-a-number", "USD"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestMoneyArithmetic(t *testing.T) {
	t.Parallel()

	a := NewMoney(2599, "USD")
	b := NewMoney(338, "usd") // currency is upper-cased on construction

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if sum.Cents != 2937 {
		t.Fatalf("Add = %d, want 2937", sum.Cents)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub error: %v", err)
	}
	if diff.Cents != 2261 {
		t.Fatalf("Sub = %d, want 2261", diff.Cents)
	}
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	t.Parallel()

	a := NewMoney(100, "USD")
	b := NewMoney(100, "CAD")

	if _, err := a.Add(b); !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("Add error = %v, want ErrCurrencyMismatch", err)
	}
	if _, err := a.Sub(b); !errors.Is(err, ErrCurrencyMismatch) {
		t.Fatalf("Sub error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestMoneyString(t *testing.T) {
	t.Parallel()

	if got := NewMoney(2599, "USD").String(); got != "25.99 USD" {
		t.Fatalf("String = %q", got)
	}
	if got := NewMoney(-5, "USD").String(); got != "-0.05 USD" {
		t.Fatalf("String = %q", got)
	}
}
