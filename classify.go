package portfolio

import "fmt"

// DiagnosticKind tells why an aggregation has no result.
type DiagnosticKind int

const (
	NoTransactions       DiagnosticKind = iota // no criteria, empty ledger
	TokenNotFound                              // token criterion only
	NoActivityOnDay                            // day criterion only
	NoTokenActivityOnDay                       // token and day criteria
)

// Diagnostic is the classified outcome of an empty aggregation.
type Diagnostic struct {
	Kind     DiagnosticKind
	Criteria Criteria
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case NoTokenActivityOnDay:
		return fmt.Sprintf("no %s activity in %s", d.Criteria.Token, d.Criteria.Day)
	case NoActivityOnDay:
		return fmt.Sprintf("no activity on %s", d.Criteria.Day)
	case TokenNotFound:
		return fmt.Sprintf("%s not found", d.Criteria.Token)
	default:
		return "no transactions at all"
	}
}

// Classify reports whether h holds any token. If it does not, the returned
// Diagnostic explains the emptiness from the active criteria.
func Classify(h *Holdings, c Criteria) (Diagnostic, bool) {
	if h != nil && !h.IsEmpty() {
		return Diagnostic{}, true
	}
	d := Diagnostic{Criteria: c}
	switch {
	case c.HasToken() && c.HasDay():
		d.Kind = NoTokenActivityOnDay
	case c.HasDay():
		d.Kind = NoActivityOnDay
	case c.HasToken():
		d.Kind = TokenNotFound
	default:
		d.Kind = NoTransactions
	}
	return d, false
}

func (k DiagnosticKind) String() string {
	switch k {
	case TokenNotFound:
		return "token_not_found"
	case NoActivityOnDay:
		return "no_activity_on_day"
	case NoTokenActivityOnDay:
		return "no_token_activity_on_day"
	default:
		return "no_transactions"
	}
}

// MarshalJSON renders the diagnostic with its kind and message.
func (d Diagnostic) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("diagnostic", d.Kind.String())
	w.Append("message", d.String())
	w.Optional("token", d.Criteria.Token)
	if d.Criteria.HasDay() {
		w.Append("date", d.Criteria.Day)
	}
	return w.MarshalJSON()
}
