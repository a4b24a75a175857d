package aggregation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmountInput normalizes free-form currency text entry ("$1,234.567",
// "12.", ".5") to a decimal amount. Everything except digits and the first
// decimal point is stripped, the fractional part is truncated to two digits,
// and anything that still fails to parse yields zero. Partial input such as
// a trailing dot is accepted because the value is re-parsed on every
// keystroke.
func ParseAmountInput(text string) decimal.Decimal {
	var b strings.Builder
	seenDot := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}

	s := b.String()
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s) > dot+3 {
		s = s[:dot+3] // truncate, not round
	}
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return decimal.Zero
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return value
}
