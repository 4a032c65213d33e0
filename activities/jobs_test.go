package activities

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/models"
)

func TestActiveBranchesDropsExpired(t *testing.T) {
	branches := []models.Branch{
		{ID: 1, Name: "running", Days: 12},
		{ID: 2, Name: "expires today", Days: 0},
		{ID: 3, Name: "expired", Days: -5},
		{ID: 4, Name: "last day", Days: 1},
	}

	active := activeBranches(branches)
	if len(active) != 2 {
		t.Fatalf("expected 2 active branches, got %d", len(active))
	}
	if active[0].ID != 1 || active[1].ID != 4 {
		t.Errorf("wrong branches kept: %d, %d", active[0].ID, active[1].ID)
	}
}

func TestExpiryReminderDue(t *testing.T) {
	cases := []struct {
		days int
		want bool
	}{
		{8, false},
		{7, true},
		{6, true},
		{4, true},
		{2, true},
		{1, true},
		{0, true},
		{-3, true},
		{-7, true},
		{30, false},
	}
	for _, c := range cases {
		if got := expiryReminderDue(c.days); got != c.want {
			t.Errorf("expiryReminderDue(%d) = %v, want %v", c.days, got, c.want)
		}
	}
}

func TestOutstandingByCustomerAggregates(t *testing.T) {
	debts := []models.Debt{
		{CustomerId: 7, TotalAmount: decimal.RequireFromString("10000"), PaidAmount: decimal.RequireFromString("2000")},
		{CustomerId: 9, TotalAmount: decimal.RequireFromString("5000"), PaidAmount: decimal.Zero},
		{CustomerId: 7, TotalAmount: decimal.RequireFromString("3000"), PaidAmount: decimal.RequireFromString("1000")},
	}

	ids, totals := outstandingByCustomer(debts)
	if len(ids) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(ids))
	}
	if ids[0] != 7 || ids[1] != 9 {
		t.Errorf("wrong customer order: %v", ids)
	}
	if !totals[7].Equal(decimal.RequireFromString("10000")) {
		t.Errorf("customer 7 total = %s, want 10000", totals[7])
	}
	if !totals[9].Equal(decimal.RequireFromString("5000")) {
		t.Errorf("customer 9 total = %s, want 5000", totals[9])
	}
}
