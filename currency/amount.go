// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package currency

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in LKR. It is stored and serialized with exactly
// two fractional digits ("1000.00") and never carries display formatting.
type Amount struct {
	decimal.Decimal
}

// NewAmount builds an Amount from a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MustAmount parses a canonical string and panics on failure. For tests and
// constants only.
func MustAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("currency: bad amount %q", s))
	}
	return a
}

// String returns the canonical two-decimal storage form.
func (a Amount) String() string {
	return a.Decimal.StringFixed(2)
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.StringFixed(2), nil
}

// Scan implements sql.Scanner. Drivers hand back NUMERIC as []byte
// (postgres) or as int64/float64 (sqlite affinity); all are accepted.
func (a *Amount) Scan(src any) error {
	if src == nil {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.Scan(src)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Decimal.StringFixed(2))
}

// UnmarshalJSON accepts a JSON number or a string, formatted or not.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	if len(data) == 0 || data[0] != '"' {
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return fmt.Errorf("amount %s: %w", string(data), ErrInvalidAmount)
		}
		a.Decimal = d
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseAmount(raw)
	if err != nil {
		return fmt.Errorf("amount %s: %w", string(data), err)
	}
	*a = parsed
	return nil
}
