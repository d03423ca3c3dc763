// Package money provides fixed-point currency amounts stored as integer
// minor units, so order totals never accumulate floating-point drift.
package money

import (
	"fmt"
	"strings"
)

// Cents is a currency amount in minor units.
type Cents int64

// Parse converts a decimal string such as "10", "5.5" or "4.33" to Cents.
// At most two fractional digits are accepted.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if s[0] == '+' || s[0] == '-' {
		negative = s[0] == '-'
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}
	// 12 integer digits keeps even the largest order total inside int64:
	// max amount times the per-item quantity and line-item caps stays
	// below the limit, so accumulation can never wrap.
	if len(whole) > 12 {
		return 0, fmt.Errorf("amount %q has too many digits", s)
	}
	if hasFrac && (frac == "" || len(frac) > 2) {
		return 0, fmt.Errorf("amount %q must have at most two decimal places", s)
	}

	var cents int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		cents = cents*10 + int64(r-'0')
	}
	cents *= 100

	if hasFrac {
		fracCents := int64(0)
		for _, r := range frac {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
			fracCents = fracCents*10 + int64(r-'0')
		}
		if len(frac) == 1 {
			fracCents *= 10
		}
		cents += fracCents
	}

	if negative {
		cents = -cents
	}
	return Cents(cents), nil
}

// Mul multiplies the amount by an item quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount as a decimal with two fractional digits.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a JSON number with two decimal places.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON decodes a JSON number or string token exactly, without a
// float64 round-trip.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
