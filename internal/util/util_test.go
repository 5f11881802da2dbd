package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "zero", amount: "0", expected: "0,00 €"},
		{name: "cents only", amount: "0.99", expected: "0,99 €"},
		{name: "plain amount", amount: "45.50", expected: "45,50 €"},
		{name: "thousands grouped", amount: "1299.99", expected: "1 299,99 €"},
		{name: "millions grouped", amount: "1234567.89", expected: "1 234 567,89 €"},
		{name: "negative amount", amount: "-10.5", expected: "-10,50 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatPrice(decimal.RequireFromString(tt.amount))
			if got != tt.expected {
				t.Fatalf("FormatPrice(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

	if got := FormatDate(date); got != "14 mars 2026" {
		t.Fatalf("FormatDate() = %q, want %q", got, "14 mars 2026")
	}

	if got := FormatDateTime(date); got != "14 mars 2026 à 10:30" {
		t.Fatalf("FormatDateTime() = %q, want %q", got, "14 mars 2026 à 10:30")
	}
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{name: "international format", phone: "+33612345678", expected: "+33 6 12 34 56 78"},
		{name: "already spaced", phone: "+33 6 12 34 56 78", expected: "+33 6 12 34 56 78"},
		{name: "foreign number unchanged", phone: "+4915123456789", expected: "+4915123456789"},
		{name: "too short unchanged", phone: "+336123", expected: "+336123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPhone(tt.phone); got != tt.expected {
				t.Fatalf("FormatPhone(%q) = %q, want %q", tt.phone, got, tt.expected)
			}
		})
	}
}

func TestFormatPostalCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "75001", expected: "75001"},
		{name: "with spaces", input: "75 001", expected: "75001"},
		{name: "extra digits dropped", input: "750019999", expected: "75001"},
		{name: "letters stripped", input: "FR-75001", expected: "75001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatPostalCode(tt.input); got != tt.expected {
				t.Fatalf("FormatPostalCode(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("Robe longue fleurie", 10); got != "Robe lo..." {
		t.Fatalf("Truncate() = %q", got)
	}

	if got := Truncate("Jupe", 10); got != "Jupe" {
		t.Fatalf("Truncate() = %q", got)
	}
}

func TestFormatSKU(t *testing.T) {
	t.Parallel()

	if got := FormatSKU("rb-ml-38"); got != "RB-ML-38" {
		t.Fatalf("FormatSKU() = %q", got)
	}
}
