package date

import (
	"testing"
	"time"
)

func TestInterval(t *testing.T) {
	d := New(2024, time.January, 15)

	utc := d.Interval(time.UTC)
	if want := (Interval{Start: 1705276800, End: 1705363200}); utc != want {
		t.Errorf("Interval(UTC) = %v, want %v", utc, want)
	}

	tokyo := time.FixedZone("JST", 9*3600)
	if got, want := d.Interval(tokyo).Start, utc.Start-9*3600; got != want {
		t.Errorf("Interval(JST).Start = %d, want %d", got, want)
	}
}

func TestIntervalIsAlwaysOneDay(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("no tzdata: %v", err)
	}
	// clocks move forward on that day in Paris.
	r := New(2024, time.March, 31).Interval(paris)
	if r.End-r.Start != 86400 {
		t.Errorf("interval length = %d, want 86400", r.End-r.Start)
	}
}

func TestIntervalContains(t *testing.T) {
	r := Interval{Start: 100, End: 200}
	testCases := []struct {
		ts   int64
		want bool
	}{
		{99, false},
		{100, true},
		{150, true},
		{199, true},
		{200, false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.ts); got != tc.want {
			t.Errorf("%v.Contains(%d) = %v, want %v", r, tc.ts, got, tc.want)
		}
	}
}
