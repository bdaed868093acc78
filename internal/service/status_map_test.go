//go:build unit

package service

import "testing"

func TestNormalizeStatusMarketplace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want RecordStatus
	}{
		{"FULFILLED", StatusCompleted},
		{"fulfilled", StatusCompleted},
		{"In Progress", StatusActive},
		{"in-progress", StatusActive},
		{"NOT_STARTED", StatusActive},
		{"CANCELLED", StatusCancelled},
		{"canceled", StatusCancelled},
		{"REFUNDED", StatusCancelled},
		{"something new", StatusActive}, // unknown falls back, never fails
		{"", StatusActive},
	}
	for _, tc := range cases {
		if got := NormalizeStatus(ProviderMarketplace, tc.raw); got != tc.want {
			t.Fatalf("NormalizeStatus(marketplace, %q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeStatusInvoicing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want RecordStatus
	}{
		{"draft", StatusDraft},
		{"SAVED", StatusDraft},
		{"sent", StatusSent},
		{"Viewed", StatusSent},
		{"unpaid", StatusSent},
		{"partial", StatusSent},
		{"PAID", StatusPaid},
		{"overpaid", StatusPaid},
		{"overdue", StatusOverdue},
		{"mystery", StatusDraft},
	}
	for _, tc := range cases {
		if got := NormalizeStatus(ProviderInvoicing, tc.raw); got != tc.want {
			t.Fatalf("NormalizeStatus(invoicing, %q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
