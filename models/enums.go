package models

type DebtType string

const (
	DebtTypeDebtor   DebtType = "debtor"
	DebtTypeCreditor DebtType = "creditor"
)

type SaleType string

const (
	SaleTypeCash   SaleType = "cash"
	SaleTypeCredit SaleType = "credit"
)

type ServiceStatus string

const (
	ServiceStatusIncomplete ServiceStatus = "incomplete"
	ServiceStatusComplete   ServiceStatus = "complete"
)

type AdjustmentType string

const (
	AdjustmentTypeIncrease AdjustmentType = "increase"
	AdjustmentTypeDecrease AdjustmentType = "decrease"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

type ActivityType string

const (
	ActivityTypeCreate ActivityType = "create"
	ActivityTypeUpdate ActivityType = "update"
	ActivityTypeDelete ActivityType = "delete"
	ActivityTypeSystem ActivityType = "system"
)

// Notification keys a branch can opt into via its settings. Each key
// gates one scheduled SMS category.
const (
	NotificationMonthlySubscription   = "monthly_subscription"
	NotificationCustomerDebtReminder  = "customer_debt_reminder"
	NotificationProductStock          = "product_stock"
	NotificationIncompleteService     = "incomplete_service"
	NotificationUnpaidExpensePurchase = "unpaid_expense_and_purchase"
	NotificationDailyDebtsReport      = "daily_debts_report"
	NotificationDailyReport           = "daily_report"
	NotificationWeeklyReport          = "weekly_report"
	NotificationMonthlyReport         = "monthly_report"
	NotificationAnnualReport          = "annual_report"
)
