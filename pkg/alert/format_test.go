package alert

import (
	"strings"
	"testing"

	"chequetrack/models"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"500", "$500.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.89", "$1,234,567.89"},
		{"0.99", "$0.99"},
		{"-2500", "-$2,500.00"},
	}
	for _, c := range cases {
		got := formatAmount(decimal.RequireFromString(c.in))
		if got != c.want {
			t.Fatalf("formatAmount(%s): want %s got %s", c.in, c.want, got)
		}
	}
}

func TestFormatLongDate(t *testing.T) {
	if got := formatLongDate("2025-11-21"); got != "21 November 2025" {
		t.Fatalf("want '21 November 2025' got %q", got)
	}
	// unparseable input passes through untouched
	if got := formatLongDate("not-a-date"); got != "not-a-date" {
		t.Fatalf("want passthrough got %q", got)
	}
}

func TestFormatChequeMessage(t *testing.T) {
	msg := FormatChequeMessage(models.Cheque{
		ChequeNumber: 101,
		ToPayee:      "John Smith",
		IssuedDate:   "2025-01-01",
		DueDate:      "2025-02-01",
		Amount:       decimal.RequireFromString("12500.00"),
		Status:       models.StatusUpcoming,
	})

	for _, want := range []string{
		"Cheque Number: 101",
		"Payee: John Smith",
		"Amount: $12,500.00",
		"Issue Date: 1 January 2025",
		"Due Date: 1 February 2025",
		"Status: UPCOMING",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}
