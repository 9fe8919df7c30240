package portfolio

import (
	"strings"
	"testing"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// ledger returns a reader on the given CSV lines.
func ledger(t *testing.T, lines ...string) *LedgerReader {
	t.Helper()
	l, err := NewLedgerReader(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("NewLedgerReader() error = %v", err)
	}
	return l
}

// balances flattens holdings for comparison.
func balances(h *Holdings) map[string]string {
	m := make(map[string]string)
	for t, q := range h.All() {
		m[t] = q.String()
	}
	return m
}

const header = "timestamp,transaction_type,token,amount"

func contains(s, substr string) bool { return strings.Contains(s, substr) }
