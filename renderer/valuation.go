// Package renderer turns portfolio results into markdown, HTML, terminal
// output or JSON.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/tokenledger/portfolio"
)

// ValuationMarkdown renders a valuation as a markdown table.
//
// Tokens whose price lookup failed stay in the table with a placeholder and
// are listed again, with the reason, after the total.
func ValuationMarkdown(v *portfolio.Valuation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio value in %s\n\n", v.Currency)
	fmt.Fprintln(&b, "| Token | Balance | Price | Value |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, l := range v.Lines {
		if !l.OK() {
			fmt.Fprintf(&b, "| %s | %s | n/a | price unavailable |\n", l.Token, l.Balance)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s %s | %s |\n", l.Token, l.Balance, l.Price, v.Currency, l.Value)
	}
	fmt.Fprintf(&b, "\n**Total**: %s\n", v.Total())

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Price unavailable\n\n")
		failed := false
		for _, l := range v.Lines {
			if l.OK() {
				continue
			}
			failed = true
			fmt.Fprintf(w, "- %s: %v\n", l.Token, escape(l.Err.Error()))
		}
		return failed
	})
	return b.String()
}

// DiagnosticMarkdown renders the reason of an empty portfolio.
func DiagnosticMarkdown(d portfolio.Diagnostic) string {
	return d.String() + "\n"
}

// escape neutralizes the markdown table and emphasis characters of s.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`).Replace(s)
}
