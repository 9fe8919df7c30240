package portfolio

import (
	"errors"
	"testing"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in   string
		want TransactionType
	}{
		{"DEPOSIT", Deposit},
		{" DEPOSIT ", Deposit},
		{"WITHDRAWAL", Withdrawal},
		{"deposit", Other},
		{"TRANSFER", Other},
		{"", Other},
	}
	for _, tt := range tests {
		if got := ParseTransactionType(tt.in); got != tt.want {
			t.Errorf("ParseTransactionType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecordSigned(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want Quantity
	}{
		{"deposit", Record{Amount: "100", Type: Deposit}, Q(100)},
		{"withdrawal", Record{Amount: "30", Type: Withdrawal}, Q(-30)},
		{"other counts as withdrawal", Record{Amount: "2.5", Type: Other}, Q(-2.5)},
		{"negative deposit", Record{Amount: "-1", Type: Deposit}, Q(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rec.Signed()
			if err != nil {
				t.Fatalf("Signed() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Signed() = %s, want %s", got, tt.want)
			}
		})
	}

	t.Run("malformed", func(t *testing.T) {
		_, err := Record{Amount: "lots", Type: Deposit, Line: 7}.Signed()
		var rerr *RecordError
		if !errors.As(err, &rerr) {
			t.Fatalf("Signed() error = %v, want a *RecordError", err)
		}
		if rerr.Line != 7 || rerr.Field != ColAmount {
			t.Errorf("RecordError = %+v, want line 7 on %s", rerr, ColAmount)
		}
		if !errors.Is(err, ErrMalformedAmount) {
			t.Errorf("Signed() error = %v, want %v", err, ErrMalformedAmount)
		}
	})
}
