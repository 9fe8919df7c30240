package portfolio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/tokenledger/portfolio/logging"
)

// AmountPolicy decides what to do with a malformed record.
type AmountPolicy int

const (
	// SkipMalformed leaves the record out of the totals and logs a warning.
	SkipMalformed AmountPolicy = iota
	// FailOnMalformed aborts the aggregation on the first malformed record.
	FailOnMalformed
)

func (p AmountPolicy) String() string {
	switch p {
	case SkipMalformed:
		return "skip"
	case FailOnMalformed:
		return "fail"
	default:
		return "unknown"
	}
}

// RecordSource is a stream of ledger records, ended by io.EOF.
//
// A source may return a *RecordError for a single record and keep going.
type RecordSource interface {
	Next() (Record, error)
}

// AggregateStats describes a completed aggregation.
type AggregateStats struct {
	Read      int           // records read, including malformed ones
	Matched   int           // records that passed the criteria and were summed
	Malformed []error       // skipped records, as *RecordError
	Elapsed   time.Duration // time spent streaming the ledger
}

// Aggregator sums the records of a ledger into Holdings.
type Aggregator struct {
	Criteria Criteria
	Policy   AmountPolicy
}

// Aggregate consumes src until io.EOF and returns the balance of every
// token matching the criteria.
//
// Records are read one at a time. ctx is checked between records. With
// SkipMalformed a record error is recorded in the stats and the stream goes
// on; with FailOnMalformed it is returned. Any other error from src aborts.
func (a Aggregator) Aggregate(ctx context.Context, src RecordSource) (*Holdings, AggregateStats, error) {
	log := logging.FromContext(ctx)
	start := time.Now()
	h := NewHoldings()
	var stats AggregateStats

	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var rerr *RecordError
			if !errors.As(err, &rerr) {
				return nil, stats, fmt.Errorf("cannot read ledger: %w", err)
			}
			stats.Read++
			// without a timestamp only the token can still rule the record out.
			if a.Criteria.HasToken() && rec.Token != "" && rec.Token != a.Criteria.Token {
				continue
			}
			if err := a.malformed(log, &stats, err); err != nil {
				return nil, stats, err
			}
			continue
		}
		stats.Read++

		if !a.Criteria.Matches(rec) {
			continue
		}
		q, err := rec.Signed()
		if err != nil {
			if err := a.malformed(log, &stats, err); err != nil {
				return nil, stats, err
			}
			continue
		}
		h.Add(rec.Token, q)
		stats.Matched++
	}
	stats.Elapsed = time.Since(start)
	log.Debug().
		Str("token", a.Criteria.Token).
		Stringer("interval", a.Criteria.Interval).
		Int("read", stats.Read).
		Int("matched", stats.Matched).
		Int("malformed", len(stats.Malformed)).
		Dur("elapsed", stats.Elapsed).
		Msg("ledger loaded")
	return h, stats, nil
}

// malformed applies the policy to a record error.
func (a Aggregator) malformed(log *zerolog.Logger, stats *AggregateStats, err error) error {
	if a.Policy == FailOnMalformed {
		return err
	}
	log.Warn().Err(err).Msg("skipping malformed record")
	stats.Malformed = append(stats.Malformed, err)
	return nil
}
