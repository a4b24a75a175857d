// Package sqlite implements the repository ports on an embedded SQLite
// store. Amounts are stored as decimal strings and instants as RFC 3339
// text so nothing is lost to float rounding.
package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Fixed-width RFC 3339 with nine fraction digits. RFC3339Nano trims
// trailing zeros, which breaks lexicographic range comparisons
// ("...00.5Z" < "...00Z"); padding keeps string order equal to time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t.Local(), nil
}

func encodeTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := encodeTime(*t)
	return &s
}

func decodeTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := decodeTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse stored amount %q: %w", s, err)
	}
	return d, nil
}

func encodeDecimalPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func decodeDecimalPtr(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decodeDecimal(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func encodeStringSlice(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func decodeStringSlice(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(s), &values); err != nil {
		return nil, fmt.Errorf("parse stored list %q: %w", s, err)
	}
	return values, nil
}

// nullableString maps empty strings to NULL so optional FK columns stay
// consistent with their constraints.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
