package portfolio

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/tokenledger/portfolio/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of price lookups in flight by default.
const DefaultConcurrency = 4

// TokenValue is the valuation of a single token.
//
// Either Err is nil and Price and Value are set, or the lookup failed and
// Err tells why.
type TokenValue struct {
	Token   string
	Balance Quantity
	Price   decimal.Decimal
	Value   Money
	Err     error
}

// OK reports whether the token was priced.
func (v TokenValue) OK() bool { return v.Err == nil }

// Valuation is the value of Holdings in a reference currency.
type Valuation struct {
	Currency string
	Lines    []TokenValue // in Holdings.Tokens order
}

// ValueOptions tunes Value.
type ValueOptions struct {
	Concurrency int // DefaultConcurrency if not positive
}

// Value prices every token of h in currency, one lookup per token.
//
// Lookups run concurrently. A failed lookup is kept in its TokenValue and
// does not prevent the other tokens from being valued, so the returned error
// is only about currency, which must be an ISO code.
func Value(ctx context.Context, h *Holdings, src PriceSource, currency string, opts ValueOptions) (*Valuation, error) {
	code, err := CheckCurrency(currency)
	if err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	v := &Valuation{Currency: code}
	for t, q := range h.All() {
		v.Lines = append(v.Lines, TokenValue{Token: t, Balance: q})
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i := range v.Lines {
		line := &v.Lines[i] // each goroutine owns its line
		g.Go(func() error {
			price, err := src.Price(ctx, line.Token, code)
			if err != nil {
				log.Warn().Err(err).Str("token", line.Token).Msg("price unavailable")
				line.Err = err
				return nil
			}
			line.Price = price
			line.Value = M(line.Balance.Mul(price).Decimal(), code)
			return nil
		})
	}
	_ = g.Wait() // lookups never fail the group
	return v, nil
}

// Total is the sum of the priced tokens.
func (v *Valuation) Total() Money {
	total := M(0, v.Currency)
	for _, l := range v.Lines {
		if l.OK() {
			total = total.Add(l.Value)
		}
	}
	return total
}

// Failed returns the tokens whose price could not be found.
func (v *Valuation) Failed() []string {
	var failed []string
	for _, l := range v.Lines {
		if !l.OK() {
			failed = append(failed, l.Token)
		}
	}
	return failed
}

// MarshalJSON renders the valuation with a stable field order.
func (v *Valuation) MarshalJSON() ([]byte, error) {
	lines := make([]json.RawMessage, 0, len(v.Lines))
	for _, l := range v.Lines {
		var w jsonObjectWriter
		w.Append("token", l.Token)
		w.Append("balance", l.Balance)
		if l.OK() {
			w.Append("price", l.Price)
			w.Append("value", l.Value.Decimal().Round(int32(l.Value.currency().Fraction)))
		} else {
			w.Append("error", l.Err.Error())
		}
		b, err := w.MarshalJSON()
		if err != nil {
			return nil, err
		}
		lines = append(lines, b)
	}
	var w jsonObjectWriter
	w.Append("currency", v.Currency)
	w.Append("tokens", lines)
	w.Append("total", v.Total())
	return w.MarshalJSON()
}
