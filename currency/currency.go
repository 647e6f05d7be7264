// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package currency

import (
	"errors"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when input holds no parseable number.
var ErrInvalidAmount = errors.New("invalid amount")

var numberPattern = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)$`)

// Parse strips display formatting ("Rs 1,000.00") and returns the canonical
// numeric string ("1000.00"). Returns "" when what remains is not a number.
// Negative values pass through; range checks belong to validation.
func Parse(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	residue := b.String()
	if !numberPattern.MatchString(residue) {
		return ""
	}
	return residue
}

// Format renders a canonical numeric string for display: grouped thousands,
// two decimals when the value has a fractional part, none otherwise.
// Empty or non-numeric input yields "".
func Format(canonical string) string {
	canonical = strings.TrimSpace(canonical)
	if canonical == "" {
		return ""
	}
	d, err := toDecimal(canonical)
	if err != nil {
		return ""
	}
	return FormatDecimal(d)
}

// FormatDecimal is Format for a decimal value.
func FormatDecimal(d decimal.Decimal) string {
	neg := d.IsNegative()
	abs := d.Abs()

	var out string
	if abs.IsInteger() {
		out = humanize.BigComma(abs.BigInt())
	} else {
		fixed := abs.StringFixed(2)
		dot := strings.IndexByte(fixed, '.')
		whole, _ := decimal.NewFromString(fixed[:dot])
		out = humanize.BigComma(whole.BigInt()) + fixed[dot:]
	}

	if neg && out != "0" {
		return "-" + out
	}
	return out
}

// FormatAmount formats an optional amount; nil formats as "".
func FormatAmount(a *Amount) string {
	if a == nil {
		return ""
	}
	return FormatDecimal(a.Decimal)
}

// Canonicalize returns the canonical string of d: integer form when whole,
// otherwise exactly two decimals. Parse(FormatDecimal(d)) == Canonicalize(d)
// for non-negative values with at most two fractional digits.
func Canonicalize(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(0)
	}
	return d.StringFixed(2)
}

// ParseAmount parses display or canonical input into an Amount.
func ParseAmount(input string) (Amount, error) {
	s := Parse(input)
	if s == "" {
		return Amount{}, ErrInvalidAmount
	}
	d, err := toDecimal(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{Decimal: d}, nil
}

// toDecimal accepts the shapes Parse lets through (".5", "5.", "-.5").
func toDecimal(s string) (decimal.Decimal, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	if neg {
		s = "-" + s
	}
	return decimal.NewFromString(s)
}
