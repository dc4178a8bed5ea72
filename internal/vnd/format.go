// Package vnd renders Vietnamese đồng amounts for display: grouped
// digits and the spelled-out currency reading used on order documents.
package vnd

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// Format renders an amount with Vietnamese digit grouping,
// e.g. 5000000 becomes "5.000.000".
func Format(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// FormatVND appends the currency unit to a grouped amount.
func FormatVND(amount int64) string {
	return Format(amount) + " VND"
}
