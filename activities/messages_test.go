package activities

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/models/reports"
)

func TestSubscriptionMessageWording(t *testing.T) {
	if msg := subscriptionMessage(1); !strings.Contains(msg, "24 hours") {
		t.Errorf("one day left should mention 24 hours, got %q", msg)
	}
	if msg := subscriptionMessage(5); !strings.Contains(msg, "siku 5") {
		t.Errorf("five days left should mention siku 5, got %q", msg)
	}
	if msg := subscriptionMessage(0); !strings.Contains(msg, "imekoma leo") {
		t.Errorf("expiry day wording wrong, got %q", msg)
	}
	// Five days past expiry leaves two days before permanent deletion.
	if msg := subscriptionMessage(-5); !strings.Contains(msg, "siku 2") {
		t.Errorf("deletion countdown wording wrong, got %q", msg)
	}
	if msg := subscriptionMessage(-6); !strings.Contains(msg, "siku 1") {
		t.Errorf("deletion countdown wording wrong, got %q", msg)
	}
}

func TestDebtReminderMessage(t *testing.T) {
	msg := debtReminderMessage("Asha", "Mwanza Hardware", "120,000")
	if !strings.Contains(msg, "Asha") || !strings.Contains(msg, "120,000") || !strings.Contains(msg, "Mwanza Hardware") {
		t.Errorf("debt reminder missing fields: %q", msg)
	}
}

func TestStockStatusMessage(t *testing.T) {
	if msg := stockStatusMessage(nil); msg != "" {
		t.Errorf("no products should yield an empty message, got %q", msg)
	}

	msg := stockStatusMessage([]string{"Cement", "Nails"})
	if !strings.Contains(msg, "bidhaa 2") || !strings.Contains(msg, "Cement, Nails") {
		t.Errorf("stock message = %q", msg)
	}

	many := make([]string, 14)
	for i := range many {
		many[i] = "P"
	}
	msg = stockStatusMessage(many)
	if !strings.Contains(msg, "bidhaa 14") || !strings.Contains(msg, "nyingine 4") {
		t.Errorf("long list should be capped with a remainder, got %q", msg)
	}
}

func TestCounterMessagesEmptyWhenNothingToReport(t *testing.T) {
	if msg := incompleteServiceMessage(0); msg != "" {
		t.Errorf("zero services should be empty, got %q", msg)
	}
	if msg := unpaidExpensePurchaseMessage(0, 0); msg != "" {
		t.Errorf("zero unpaid should be empty, got %q", msg)
	}
	if msg := unpaidDebtsMessage(0, "0", 0, "0"); msg != "" {
		t.Errorf("zero debts should be empty, got %q", msg)
	}

	if msg := unpaidExpensePurchaseMessage(2, 0); msg == "" {
		t.Error("unpaid expenses alone should still message")
	}
}

func TestUnpaidDebtsMessageSides(t *testing.T) {
	msg := unpaidDebtsMessage(3, "45,000", 1, "12,000")
	if !strings.Contains(msg, "madeni 3") || !strings.Contains(msg, "45,000") {
		t.Errorf("debtor side missing, got %q", msg)
	}
	if !strings.Contains(msg, "unadaiwa madeni 1") || !strings.Contains(msg, "12,000") {
		t.Errorf("creditor side missing, got %q", msg)
	}

	msg = unpaidDebtsMessage(2, "5,000", 0, "0")
	if strings.Contains(msg, "unadaiwa") {
		t.Errorf("creditor side should be omitted when empty, got %q", msg)
	}
}

func TestReportMessage(t *testing.T) {
	statement := &reports.IncomeStatement{
		Revenue:     decimal.RequireFromString("1480000"),
		CostOfGoods: decimal.RequireFromString("640000"),
		GrossProfit: decimal.RequireFromString("840000"),
		Expenses:    decimal.RequireFromString("245000"),
		NetIncome:   decimal.RequireFromString("595000"),
	}

	msg := reportMessage("Ripoti ya siku", "Mwanza Hardware", statement)
	for _, want := range []string{"Ripoti ya siku", "Mwanza Hardware", "1,480,000", "595,000"} {
		if !strings.Contains(msg, want) {
			t.Errorf("report message missing %q: %q", want, msg)
		}
	}
}
