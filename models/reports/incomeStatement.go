package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hekimalabs/smas_backend/models"
)

// IncomeStatementParts holds the raw category totals for one branch
// and window. The statement itself is a pure fold over these parts so
// the arithmetic can be checked without a database.
type IncomeStatementParts struct {
	Sales             decimal.Decimal `json:"sales"`
	NonSaleDebts      decimal.Decimal `json:"non_sale_debts"`
	TruckOrders       decimal.Decimal `json:"truck_orders"`
	Cargos            decimal.Decimal `json:"cargos"`
	Services          decimal.Decimal `json:"services"`
	QuotationInvoices decimal.Decimal `json:"quotation_invoices"`
	SalesCost         decimal.Decimal `json:"sales_cost"`
	Freights          decimal.Decimal `json:"freights"`
	Expenses          decimal.Decimal `json:"expenses"`
	Payments          decimal.Decimal `json:"payments"`
	CreditorDebts     decimal.Decimal `json:"creditor_debts"`
}

type IncomeStatement struct {
	BranchId    uint                 `json:"branch_id"`
	From        time.Time            `json:"from"`
	To          time.Time            `json:"to"`
	Parts       IncomeStatementParts `json:"parts"`
	Revenue     decimal.Decimal      `json:"revenue"`
	CostOfGoods decimal.Decimal      `json:"cost_of_goods"`
	GrossProfit decimal.Decimal      `json:"gross_profit"`
	Expenses    decimal.Decimal      `json:"expenses"`
	NetIncome   decimal.Decimal      `json:"net_income"`
}

// IncomeStatementFrom folds category totals into the statement.
// Revenue counts sales, debtor debts recorded outside a sale, truck
// orders, cargos, services and quotation invoices. Cost of goods is
// the buying cost of sold stock plus freights. Expenses combine
// operating expenses, outgoing payments and new creditor debts.
func IncomeStatementFrom(branchId uint, from, to time.Time, parts IncomeStatementParts) *IncomeStatement {
	revenue := parts.Sales.
		Add(parts.NonSaleDebts).
		Add(parts.TruckOrders).
		Add(parts.Cargos).
		Add(parts.Services).
		Add(parts.QuotationInvoices)

	costOfGoods := parts.SalesCost.Add(parts.Freights)
	grossProfit := revenue.Sub(costOfGoods)
	expenses := parts.Expenses.Add(parts.Payments).Add(parts.CreditorDebts)

	return &IncomeStatement{
		BranchId:    branchId,
		From:        from,
		To:          to,
		Parts:       parts,
		Revenue:     revenue,
		CostOfGoods: costOfGoods,
		GrossProfit: grossProfit,
		Expenses:    expenses,
		NetIncome:   grossProfit.Sub(expenses),
	}
}

// IsZero reports a window with no activity in any category. Callers
// use it to hold back an all-zeros report message.
func (s *IncomeStatement) IsZero() bool {
	return s.Revenue.IsZero() && s.CostOfGoods.IsZero() && s.Expenses.IsZero()
}

// GetIncomeStatement loads the category totals for [from, to) and
// folds them. Any category failure aborts the whole statement; a
// partial report would misstate the branch's position.
func GetIncomeStatement(ctx context.Context, branchId uint, from, to time.Time) (*IncomeStatement, error) {
	var parts IncomeStatementParts
	var err error

	if parts.Sales, err = models.SumSalesAmount(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.NonSaleDebts, err = models.SumNonSaleDebtorDebts(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.TruckOrders, err = models.SumTruckOrders(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.Cargos, err = models.SumCargos(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.Services, err = models.SumServices(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.QuotationInvoices, err = models.SumQuotationInvoices(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.SalesCost, err = models.SumSalesCost(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.Freights, err = models.SumFreights(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.Expenses, err = models.SumExpenses(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.Payments, err = models.SumPayments(ctx, branchId, from, to); err != nil {
		return nil, err
	}
	if parts.CreditorDebts, err = models.SumCreditorDebts(ctx, branchId, from, to); err != nil {
		return nil, err
	}

	return IncomeStatementFrom(branchId, from, to, parts), nil
}
