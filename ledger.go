package portfolio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Ledger column names, as expected in the header row.
const (
	ColToken     = "token"
	ColTimestamp = "timestamp"
	ColAmount    = "amount"
	ColType      = "transaction_type"
)

var requiredColumns = []string{ColToken, ColTimestamp, ColAmount, ColType}

// LedgerReader streams records from a CSV ledger.
//
// The first row is a header naming the columns; their order does not matter
// and unknown columns are ignored. Records are decoded one at a time, the
// ledger is never loaded in memory.
type LedgerReader struct {
	csv   *csv.Reader
	index map[string]int // column name to position
	empty bool           // the ledger has no header at all
}

// NewLedgerReader reads the header from r and returns a reader positioned on
// the first record.
//
// An empty input is a valid, empty ledger. A header missing one of the
// required columns is an error wrapping ErrMissingColumn.
func NewLedgerReader(r io.Reader) (*LedgerReader, error) {
	c := csv.NewReader(bufio.NewReader(r))
	c.FieldsPerRecord = -1
	c.TrimLeadingSpace = true
	c.ReuseRecord = true

	l := &LedgerReader{csv: c, index: make(map[string]int)}
	header, err := c.Read()
	if errors.Is(err, io.EOF) {
		l.empty = true
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger header: %w", err)
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := l.index[name]; !dup {
			l.index[name] = i
		}
	}
	var errs error
	for _, col := range requiredColumns {
		if _, ok := l.index[col]; !ok {
			errs = errors.Join(errs, fmt.Errorf("%q: %w", col, ErrMissingColumn))
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid ledger header: %w", errs)
	}
	return l, nil
}

// Next returns the next record, or io.EOF at the end of the ledger.
//
// A row that cannot be decoded is reported as a *RecordError; the reader
// stays usable and the following call moves to the next row.
// The amount is not parsed here, see Record.Signed.
func (l *LedgerReader) Next() (Record, error) {
	if l.empty {
		return Record{}, io.EOF
	}
	row, err := l.csv.Read()
	if errors.Is(err, io.EOF) {
		return Record{}, io.EOF
	}
	if err != nil {
		var line int
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			line = perr.Line
		}
		return Record{}, &RecordError{Line: line, Err: err}
	}
	line, _ := l.csv.FieldPos(0)

	rec := Record{
		Token:   l.field(row, ColToken),
		Amount:  l.field(row, ColAmount),
		RawType: l.field(row, ColType),
		Line:    line,
	}
	rec.Type = ParseTransactionType(rec.RawType)
	if rec.Token == "" {
		return rec, &RecordError{Line: line, Field: ColToken, Err: ErrMissingField}
	}
	ts := l.field(row, ColTimestamp)
	rec.Timestamp, err = strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return rec, &RecordError{Line: line, Field: ColTimestamp, Err: fmt.Errorf("%q: %w", ts, ErrMissingField)}
	}
	return rec, nil
}

// All returns an iterator over the remaining records and their errors.
func (l *LedgerReader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := l.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// field returns the trimmed value of col, or "" if the row is too short.
func (l *LedgerReader) field(row []string, col string) string {
	i := l.index[col]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
