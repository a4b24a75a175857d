package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols covers the codes the app ships categories for; anything
// else falls back to "CODE amount".
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"KRW": "₩",
	"VND": "₫",
	"CNY": "¥",
	"INR": "₹",
}

// FormatCurrency renders an amount with exactly two fraction digits and
// locale-aware digit grouping, e.g. FormatCurrency(600, "USD", "en-US") ->
// "$600.00". Empty code and locale default to USD / en-US. This is a
// presentation helper only; no business logic depends on its output.
func FormatCurrency(amount decimal.Decimal, currencyCode, locale string) string {
	if currencyCode == "" {
		currencyCode = "USD"
	}
	if locale == "" {
		locale = "en-US"
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	printer := message.NewPrinter(tag)

	negative := amount.IsNegative()
	value, _ := amount.Abs().Round(2).Float64()
	formatted := printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	sign := ""
	if negative {
		sign = "-"
	}
	if symbol, ok := currencySymbols[currencyCode]; ok {
		return sign + symbol + formatted
	}
	return sign + currencyCode + " " + formatted
}
