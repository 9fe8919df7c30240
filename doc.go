// Package portfolio computes the net holding of tokens from a ledger of
// deposits and withdrawals, and values it in a reference currency.
//
// The core functionalities include:
//   - Ledger Streaming: decoding a CSV ledger one record at a time with
//     [LedgerReader], so that the ledger size is not bounded by memory.
//   - Filtering: selecting records by token and by calendar day with
//     [Criteria].
//   - Aggregation: summing signed amounts per token with exact decimal
//     arithmetic in an [Aggregator], with an explicit policy for malformed
//     records.
//   - Classification: explaining an empty result with a [Diagnostic].
//   - Valuation: pricing every token through a [PriceSource], concurrently,
//     where a failed lookup only affects its own token.
//
// This package serves as the foundational logic for the `folio` command-line
// tool.
package portfolio
