package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-03-01", true},
		{"2025-03-01T15:30:00Z", true},
		{"2025-03-01T15:30:00+02:00", true},
		{"2025-03-01T15:30:00", true},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := ParseDate(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseDate(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
		}
	}
}

func TestNightCount(t *testing.T) {
	d := func(day, hour int) time.Time {
		return time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC)
	}
	cases := []struct {
		in, out time.Time
		want    int
	}{
		{d(1, 0), d(3, 0), 2},
		{d(1, 0), d(2, 0), 1},
		// A partial-day tail still charges a full night.
		{d(1, 0), d(2, 12), 2},
		{d(1, 14), d(2, 10), 1},
	}
	for _, tc := range cases {
		if got := NightCount(tc.in, tc.out); got != tc.want {
			t.Errorf("NightCount(%v, %v) = %d, want %d", tc.in, tc.out, got, tc.want)
		}
	}
}
