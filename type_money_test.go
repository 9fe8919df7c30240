package portfolio

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(3500000, "USD"), "$3,500,000.00"},
		{M(0.125, "USD"), "$0.13"},
		{M(70, "USD"), "$70.00"},
		{M(-1234.5, "USD"), "-$1,234.50"},
		{M(-0.001, "USD"), "$0.00"},
		// far beyond int64 cents
		{M(Q(int64(1e17)).Decimal(), "USD"), "$100,000,000,000,000,000.00"},
		{M(decimal.RequireFromString("123456789012345678901234567.891"), "USD"), "$123,456,789,012,345,678,901,234,567.89"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v String() = %q, want %q", tt.m.Decimal(), got, tt.want)
		}
	}
}

func TestCheckCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "USD", want: "USD"},
		{in: "eur", want: "EUR"},
		{in: " jpy ", want: "JPY"},
		{in: "XXXX", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := CheckCurrency(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("CheckCurrency(%q) error = %v, want %v", tt.in, err, ErrUnknownCurrency)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("CheckCurrency(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestMoneyAdd(t *testing.T) {
	if got := M(0, "").Add(USD(2)); !got.Equal(USD(2)) {
		t.Errorf("weak currency Add() = %v %s, want 2 USD", got.Decimal(), got.cur)
	}
	defer func() {
		if recover() == nil {
			t.Error("Add() with mismatched currencies did not panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}
