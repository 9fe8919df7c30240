package portfolio

import (
	"iter"
	"maps"
	"slices"
)

// Holdings is the net balance of each token.
//
// A token is present only if at least one record contributed to it, even if
// its balance is back to zero.
type Holdings struct {
	balances map[string]Quantity
}

// NewHoldings returns empty holdings.
func NewHoldings() *Holdings {
	return &Holdings{balances: make(map[string]Quantity)}
}

// Add adds a signed quantity to the token's balance, creating it if needed.
func (h *Holdings) Add(token string, q Quantity) {
	h.balances[token] = h.balances[token].Add(q)
}

// Balance returns the balance of token and whether the token is held.
func (h *Holdings) Balance(token string) (Quantity, bool) {
	q, ok := h.balances[token]
	return q, ok
}

// Len returns the number of tokens.
func (h *Holdings) Len() int { return len(h.balances) }

// IsEmpty reports whether no record contributed to the holdings.
func (h *Holdings) IsEmpty() bool { return len(h.balances) == 0 }

// Tokens returns the tokens in lexical order.
func (h *Holdings) Tokens() []string {
	return slices.Sorted(maps.Keys(h.balances))
}

// All iterates over tokens in lexical order with their balance.
func (h *Holdings) All() iter.Seq2[string, Quantity] {
	return func(yield func(string, Quantity) bool) {
		for _, t := range h.Tokens() {
			if !yield(t, h.balances[t]) {
				return
			}
		}
	}
}

// MarshalJSON renders the holdings as an object of token to balance.
func (h *Holdings) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for t, q := range h.All() {
		w.Append(t, q)
	}
	return w.MarshalJSON()
}
