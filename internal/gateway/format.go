package gateway

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount in cents as a US dollar display string,
// e.g. 1050 -> "$10.50".
func FormatCurrency(cents int64) string {
	return usd.Sprintf("$%.2f", float64(cents)/100)
}
