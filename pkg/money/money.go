// Package money provides a fixed-point amount type for prices and pledges.
// Amounts carry exactly two fractional digits and are stored as integer
// cents, so additions and comparisons against a wish price are exact.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in cents.
type Amount int64

// maxWhole is the largest whole-unit value whose cent representation,
// including two fractional digits, still fits in an int64.
const maxWhole = (math.MaxInt64 - 99) / 100

var (
	ErrTooManyDecimals = errors.New("money: more than 2 fractional digits")
	ErrInvalidAmount   = errors.New("money: invalid amount")
)

// Parse converts a decimal string such as "100", "99.9" or "1037.55"
// into an Amount. More than two fractional digits is an error.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		s = s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, ErrTooManyDecimals
	}
	if whole == "" && frac == "" {
		return 0, ErrInvalidAmount
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if w > maxWhole {
		return 0, ErrInvalidAmount
	}
	cents := w * 100
	if frac != "" {
		for len(frac) < 2 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		cents += f
	}
	if neg {
		cents = -cents
	}
	return Amount(cents), nil
}

// String renders the amount with two fractional digits, e.g. "60.00".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number (or numeric string) with at most
// two fractional digits.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
