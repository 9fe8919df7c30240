package portfolio

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a value in the reference currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// CheckCurrency returns the canonical ISO code of currency, or an error
// wrapping ErrUnknownCurrency if go-money does not know it.
func CheckCurrency(currency string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("%q: %w", currency, ErrUnknownCurrency)
	}
	return code, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value rounded to the currency minor unit, with its symbol.
//
// It follows go-money's Formatter layout but works on the decimal itself, so
// amounts beyond int64 minor units are not truncated.
func (m Money) String() string {
	cur := m.currency()
	rounded := m.value.Round(int32(cur.Fraction))
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(cur.Fraction)), ".")
	if cur.Thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + cur.Thousand + whole[i:]
		}
	}
	amount := whole
	if cur.Fraction > 0 {
		amount += cur.Decimal + frac
	}
	s := strings.Replace(cur.Template, "1", amount, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if rounded.IsNegative() {
		s = "-" + s
	}
	return s
}

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
