package activities

import (
	"testing"
	"time"
)

func TestBranchDeletionBoundary(t *testing.T) {
	cases := []struct {
		days int
		want bool
	}{
		{0, false},
		{-1, false},
		{-6, false},
		{-7, true},
		{-8, true},
	}
	for _, c := range cases {
		if got := BranchEligibleForDeletion(c.days); got != c.want {
			t.Errorf("BranchEligibleForDeletion(%d) = %v, want %v", c.days, got, c.want)
		}
	}
}

func TestRowPurgeBoundary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if RowEligibleForPurge(now.AddDate(0, 0, -6), now) {
		t.Error("a row deleted 6 days ago must survive the purge")
	}
	if !RowEligibleForPurge(now.AddDate(0, 0, -8), now) {
		t.Error("a row deleted 8 days ago must be purged")
	}
}
