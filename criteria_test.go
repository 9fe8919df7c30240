package portfolio

import (
	"testing"
	"time"

	"github.com/tokenledger/portfolio/date"
)

func TestCriteriaMatches(t *testing.T) {
	day := date.New(2024, time.January, 15)
	// 2024-01-15 00:00, 23:59:59 and 2024-01-16 00:00 UTC
	btc := Record{Token: "BTC", Timestamp: 1705276800}
	late := Record{Token: "BTC", Timestamp: 1705363199}
	nextDay := Record{Token: "BTC", Timestamp: 1705363200}
	eth := Record{Token: "ETH", Timestamp: 1705276800 + 3600}

	tests := []struct {
		name  string
		c     Criteria
		rec   Record
		match bool
	}{
		{"no criteria", NewCriteria("", nil, time.UTC), nextDay, true},
		{"token match", NewCriteria("BTC", nil, time.UTC), btc, true},
		{"token mismatch", NewCriteria("BTC", nil, time.UTC), eth, false},
		{"token is case sensitive", NewCriteria("btc", nil, time.UTC), btc, false},
		{"day start is included", NewCriteria("", &day, time.UTC), btc, true},
		{"day last second", NewCriteria("", &day, time.UTC), late, true},
		{"day end is excluded", NewCriteria("", &day, time.UTC), nextDay, false},
		{"token and day", NewCriteria("ETH", &day, time.UTC), eth, true},
		{"token and day, wrong token", NewCriteria("ETH", &day, time.UTC), btc, false},
		{"token and day, wrong day", NewCriteria("BTC", &day, time.UTC), nextDay, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Matches(tt.rec); got != tt.match {
				t.Errorf("Matches(%+v) = %v, want %v", tt.rec, got, tt.match)
			}
		})
	}
}

func TestCriteriaInLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	day := date.New(2024, time.January, 15)
	c := NewCriteria("", &day, tokyo)
	// 2024-01-14 15:00 UTC is midnight in Tokyo.
	if !c.Matches(Record{Timestamp: 1705244400}) {
		t.Error("Matches() = false for Tokyo midnight")
	}
	if c.Matches(Record{Timestamp: 1705244400 + 86400}) {
		t.Error("Matches() = true for the next Tokyo midnight")
	}
}
