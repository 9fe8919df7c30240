package portfolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an exact amount of tokens.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// maxDigits bounds both the exponent and the number of significant digits
// of a parsed decimal. Beyond it, arithmetic would rescale to huge integers.
const maxDigits = 64

// parseDecimal parses s as a decimal within maxDigits, or returns an error
// wrapping ErrMalformedAmount.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", s, ErrMalformedAmount)
	}
	if e := d.Exponent(); e > maxDigits || e < -maxDigits || d.NumDigits() > maxDigits {
		return decimal.Decimal{}, fmt.Errorf("%q out of range: %w", s, ErrMalformedAmount)
	}
	return d, nil
}

// ParseQuantity parses a decimal amount like "12", "-0.5" or "1e-8".
//
// Unlike a float conversion it never yields NaN, infinities or a silently
// truncated value: anything that is not a plain decimal number, or whose
// exponent or digits exceed 64, is an error wrapping ErrMalformedAmount.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, fmt.Errorf("empty amount: %w", ErrMalformedAmount)
	}
	d, err := parseDecimal(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("amount %w", err)
	}
	return Quantity{value: d}, nil
}

func (t Quantity) Equal(p Quantity) bool          { return t.value.Equal(p.value) }
func (t Quantity) Add(p Quantity) Quantity        { return Quantity{value: t.value.Add(p.value)} }
func (t Quantity) Neg() Quantity                  { return Quantity{value: t.value.Neg()} }
func (t Quantity) IsZero() bool                   { return t.value.IsZero() }
func (t Quantity) Decimal() decimal.Decimal       { return t.value }
func (t Quantity) String() string                 { return t.value.String() }
func (t Quantity) Mul(d decimal.Decimal) Quantity { return Quantity{value: t.value.Mul(d)} }

// MarshalJSON implements the json.Marshaler interface for Quantity.
func (t Quantity) MarshalJSON() ([]byte, error) {
	return t.value.MarshalJSON()
}
