package utils

import (
	"errors"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := TimeToMinutes(c.in)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("TimeToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTimeToMinutesRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "9", "09:60", "09:-1", "-1:00", "ab:cd", "09:00:00"} {
		_, err := TimeToMinutes(in)
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("TimeToMinutes(%q) = %v, want ErrInvalidTimeFormat", in, err)
		}
	}
}

func TestMinutesToTimePadsAndExceedsMidnight(t *testing.T) {
	if got := MinutesToTime(540); got != "09:00" {
		t.Fatalf("MinutesToTime(540) = %q, want 09:00", got)
	}
	if got := MinutesToTime(5); got != "00:05" {
		t.Fatalf("MinutesToTime(5) = %q, want 00:05", got)
	}
	// No wraparound: a duration running past midnight keeps counting hours.
	if got := MinutesToTime(1500); got != "25:00" {
		t.Fatalf("MinutesToTime(1500) = %q, want 25:00", got)
	}
}

func TestCalculateEndTime(t *testing.T) {
	got, err := CalculateEndTime("09:30", 90)
	if err != nil {
		t.Fatalf("CalculateEndTime returned error: %v", err)
	}
	if got != "11:00" {
		t.Fatalf("CalculateEndTime(09:30, 90) = %q, want 11:00", got)
	}

	if _, err := CalculateEndTime("late", 60); err == nil {
		t.Fatal("expected error for malformed start time")
	}
}
