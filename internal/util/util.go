// Package util contains display formatting helpers shared by API responses
// and logs. All formats follow French conventions.
package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Non-breaking space used by French number and currency formats.
const nbsp = " "

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatPrice formats an amount in euros, e.g. "1 299,99 €".
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	integer, fraction := parts[0], parts[1]

	// Group the integer part by thousands.
	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteString(nbsp)
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return sign + grouped.String() + "," + fraction + nbsp + "€"
}

// FormatDate formats a date the French way, e.g. "14 mars 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

// FormatDateTime formats a date with time, e.g. "14 mars 2026 à 10:30".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s à %02d:%02d", FormatDate(t), t.Hour(), t.Minute())
}

// FormatPhone formats a French mobile number as "+33 6 12 34 56 78".
// Numbers that are not in the +33 range are returned unchanged.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if !strings.HasPrefix(cleaned, "33") || len(cleaned) < 11 {
		return phone
	}

	return fmt.Sprintf("+33 %s %s %s %s %s",
		cleaned[2:3], cleaned[3:5], cleaned[5:7], cleaned[7:9], cleaned[9:11])
}

// FormatPostalCode keeps the first five digits of a postal code.
func FormatPostalCode(postalCode string) string {
	var digits strings.Builder
	for _, r := range postalCode {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
		if digits.Len() == 5 {
			break
		}
	}

	return digits.String()
}

// FormatSKU normalizes a SKU for display.
func FormatSKU(sku string) string {
	return strings.ToUpper(sku)
}

// Truncate shortens text to maxLength runes, ellipsis included.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	return string(runes[:maxLength-3]) + "..."
}
