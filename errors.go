package portfolio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedAmount is reported for an amount that is not a decimal number.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrMissingField is reported for a record without a token or a valid timestamp.
	ErrMissingField = errors.New("missing field")
	// ErrMissingColumn is reported when the ledger header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrNoPrice is reported by a PriceSource that has no price for a token.
	ErrNoPrice = errors.New("no price")
	// ErrUnknownCurrency is reported for a reference currency that is not an ISO code.
	ErrUnknownCurrency = errors.New("unknown currency")
)

// RecordError locates an error on a given line of the ledger.
type RecordError struct {
	Line  int    // 1-based, the header is line 1
	Field string // offending column, if any
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
