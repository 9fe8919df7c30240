package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceSource returns the unit price of a token in a currency.
//
// A failure is always an error, never a zero or NaN price.
type PriceSource interface {
	Price(ctx context.Context, token, currency string) (decimal.Decimal, error)
}

// StaticPrices is an offline PriceSource, prices are in any currency asked.
type StaticPrices map[string]decimal.Decimal

// Price implements PriceSource.
func (s StaticPrices) Price(_ context.Context, token, _ string) (decimal.Decimal, error) {
	p, ok := s[token]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", token, ErrNoPrice)
	}
	return p, nil
}

// Set parses a "TOKEN=PRICE" pair. It implements flag.Value so that
// StaticPrices can be filled by a repeated flag.
func (s StaticPrices) Set(v string) error {
	token, price, ok := strings.Cut(v, "=")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return fmt.Errorf("invalid price %q want TOKEN=PRICE", v)
	}
	p, err := parseDecimal(strings.TrimSpace(price))
	if err != nil {
		return fmt.Errorf("invalid price for %s: %w", token, err)
	}
	s[token] = p
	return nil
}

func (s StaticPrices) String() string {
	var b strings.Builder
	for t, p := range s {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%s=%s", t, p)
	}
	return b.String()
}
