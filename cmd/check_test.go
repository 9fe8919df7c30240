package cmd

import (
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestCheck(t *testing.T) {
	useLedger(t, sampleLedger)
	out, status := run(t, &checkCmd{})
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v, want success", status)
	}
	for _, want := range []string{"3 record(s), 2 token(s)", "  BTC\t70\n", "  ETH\t5\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestCheckMalformed(t *testing.T) {
	useLedger(t, sampleLedger+",1705363200,DEPOSIT,ETH\n1705363200,DEPOSIT,ETH,five\n")
	out, status := run(t, &checkCmd{})
	if status != subcommands.ExitFailure {
		t.Fatalf("status = %v, want failure", status)
	}
	for _, want := range []string{"2 malformed record(s)", "line 5:", "line 6: amount:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestVersionAndTopic(t *testing.T) {
	if out, status := run(t, &versionCmd{}); status != subcommands.ExitSuccess || !strings.HasPrefix(out, "folio dev") {
		t.Errorf("version = %q, %v", out, status)
	}
	if out, status := run(t, &topicCmd{}, "-raw", "ledger"); status != subcommands.ExitSuccess || !strings.Contains(out, "transaction_type") {
		t.Errorf("topic ledger = %q, %v", out, status)
	}
	if _, status := run(t, &topicCmd{}, "nope"); status != subcommands.ExitUsageError {
		t.Errorf("unknown topic status = %v, want usage error", status)
	}
}
