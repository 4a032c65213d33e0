package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIncomeStatementFold(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	parts := IncomeStatementParts{
		Sales:             dec("1000000"),
		NonSaleDebts:      dec("50000"),
		TruckOrders:       dec("200000"),
		Cargos:            dec("30000"),
		Services:          dec("120000"),
		QuotationInvoices: dec("80000"),
		SalesCost:         dec("600000"),
		Freights:          dec("40000"),
		Expenses:          dec("150000"),
		Payments:          dec("70000"),
		CreditorDebts:     dec("25000"),
	}

	st := IncomeStatementFrom(7, from, to, parts)

	if !st.Revenue.Equal(dec("1480000")) {
		t.Fatalf("revenue = %s, want 1480000", st.Revenue)
	}
	if !st.CostOfGoods.Equal(dec("640000")) {
		t.Fatalf("cost of goods = %s, want 640000", st.CostOfGoods)
	}
	if !st.GrossProfit.Equal(dec("840000")) {
		t.Fatalf("gross profit = %s, want 840000", st.GrossProfit)
	}
	if !st.Expenses.Equal(dec("245000")) {
		t.Fatalf("expenses = %s, want 245000", st.Expenses)
	}
	if !st.NetIncome.Equal(dec("595000")) {
		t.Fatalf("net income = %s, want 595000", st.NetIncome)
	}
}

func TestIncomeStatementNegativeNetIncome(t *testing.T) {
	st := IncomeStatementFrom(1, time.Time{}, time.Time{}, IncomeStatementParts{
		Sales:    dec("100"),
		Expenses: dec("500"),
	})

	if !st.NetIncome.Equal(dec("-400")) {
		t.Fatalf("net income = %s, want -400", st.NetIncome)
	}
}

func TestIncomeStatementZeroParts(t *testing.T) {
	st := IncomeStatementFrom(1, time.Time{}, time.Time{}, IncomeStatementParts{})

	if !st.Revenue.IsZero() || !st.NetIncome.IsZero() {
		t.Fatalf("empty window should fold to zero, got revenue=%s net=%s", st.Revenue, st.NetIncome)
	}
	if !st.IsZero() {
		t.Fatal("statement over an empty window should report zero")
	}
}

func TestIncomeStatementIsZero(t *testing.T) {
	if st := IncomeStatementFrom(1, time.Time{}, time.Time{}, IncomeStatementParts{Sales: dec("100")}); st.IsZero() {
		t.Fatal("statement with revenue should not report zero")
	}
	if st := IncomeStatementFrom(1, time.Time{}, time.Time{}, IncomeStatementParts{Expenses: dec("100")}); st.IsZero() {
		t.Fatal("statement with only expenses should not report zero")
	}
	if st := IncomeStatementFrom(1, time.Time{}, time.Time{}, IncomeStatementParts{Freights: dec("100")}); st.IsZero() {
		t.Fatal("statement with only freight cost should not report zero")
	}
}
