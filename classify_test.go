package portfolio

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/tokenledger/portfolio/date"
)

func TestClassify(t *testing.T) {
	day := date.New(2024, time.January, 15)
	tests := []struct {
		name     string
		criteria Criteria
		kind     DiagnosticKind
		message  string
	}{
		{"no criteria", NewCriteria("", nil, time.UTC), NoTransactions, "no transactions at all"},
		{"token", NewCriteria("DOGE", nil, time.UTC), TokenNotFound, "DOGE not found"},
		{"day", NewCriteria("", &day, time.UTC), NoActivityOnDay, "no activity on 2024-01-15"},
		{"token and day", NewCriteria("DOGE", &day, time.UTC), NoTokenActivityOnDay, "no DOGE activity in 2024-01-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Classify(NewHoldings(), tt.criteria)
			if ok {
				t.Fatal("Classify() ok = true on empty holdings")
			}
			if d.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.kind)
			}
			if got := d.String(); got != tt.message {
				t.Errorf("String() = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestClassifyResult(t *testing.T) {
	h, _, err := Aggregator{}.Aggregate(context.Background(), ledger(t, sample...))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Classify(h, Criteria{}); !ok {
		t.Error("Classify() ok = false on non empty holdings")
	}
	if _, ok := Classify(nil, Criteria{}); ok {
		t.Error("Classify() ok = true on nil holdings")
	}
}

func TestDiagnosticJSON(t *testing.T) {
	day := date.New(2024, time.January, 15)
	d, _ := Classify(NewHoldings(), NewCriteria("ETH", &day, time.UTC))
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"diagnostic":"no_token_activity_on_day","message":"no ETH activity in 2024-01-15","token":"ETH","date":"2024-01-15"}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	d, _ = Classify(NewHoldings(), Criteria{})
	got, err = json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	want = `{"diagnostic":"no_transactions","message":"no transactions at all"}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}
