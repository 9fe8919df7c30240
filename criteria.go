package portfolio

import (
	"time"

	"github.com/tokenledger/portfolio/date"
)

// Criteria selects the ledger records taken into account.
//
// The zero value selects every record.
type Criteria struct {
	Token    string        // exact token, "" for any
	Day      date.Date     // calendar day, zero for any
	Interval date.Interval // resolved Day, set by NewCriteria
}

// NewCriteria builds criteria for an optional token and an optional day.
// The day is resolved to its interval in loc.
func NewCriteria(token string, day *date.Date, loc *time.Location) Criteria {
	c := Criteria{Token: token}
	if day != nil {
		c.Day = *day
		c.Interval = day.Interval(loc)
	}
	return c
}

// HasToken reports whether the criteria constrain the token.
func (c Criteria) HasToken() bool { return c.Token != "" }

// HasDay reports whether the criteria constrain the day.
func (c Criteria) HasDay() bool { return !c.Day.IsZero() }

// Matches reports whether every active criterion is satisfied by r.
func (c Criteria) Matches(r Record) bool {
	if c.HasToken() && r.Token != c.Token {
		return false
	}
	if c.HasDay() && !c.Interval.Contains(r.Timestamp) {
		return false
	}
	return true
}
