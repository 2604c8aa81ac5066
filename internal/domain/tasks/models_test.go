package tasks

import (
	"testing"
	"time"
)

func TestDueIn(t *testing.T) {
	now := time.Date(2025, 2, 27, 10, 30, 0, 0, time.UTC)
	due := DueIn(now, 2)
	want := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	if !due.Equal(want) {
		t.Fatalf("expected %v, got %v", want, due)
	}
}

func TestDaysLeft(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		due  time.Time
		want int
	}{
		{now.AddDate(0, 0, 6), 6},
		{now.Add(47 * time.Hour), 1},
		{now.Add(-25 * time.Hour), -1},
		{now.Add(-time.Hour), 0},
	}
	for _, tc := range cases {
		if got := DaysLeft(tc.due, now); got != tc.want {
			t.Fatalf("DaysLeft(%v) = %d, want %d", tc.due, got, tc.want)
		}
	}
}
