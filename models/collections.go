package models

// Collection describes one branch-scoped table for the archive and
// purge passes. SoftDelete marks tables whose rows are hidden with
// visible=false before the sweeper removes them for good; append-only
// tables are archived and hard deleted with the branch but never
// purged row by row.
type Collection struct {
	Name       string
	Model      interface{}
	SoftDelete bool
}

// BranchCollections lists every table owned by a branch, in the order
// they appear in an archive. Users come first so a restore can remap
// foreign keys top down.
func BranchCollections() []Collection {
	return []Collection{
		{Name: "users", Model: &User{}, SoftDelete: true},
		{Name: "customers", Model: &Customer{}, SoftDelete: true},
		{Name: "products", Model: &Product{}, SoftDelete: true},
		{Name: "sales", Model: &Sale{}, SoftDelete: true},
		{Name: "purchases", Model: &Purchase{}, SoftDelete: true},
		{Name: "debts", Model: &Debt{}, SoftDelete: true},
		{Name: "expenses", Model: &Expense{}, SoftDelete: true},
		{Name: "payments", Model: &Payment{}, SoftDelete: true},
		{Name: "freights", Model: &Freight{}, SoftDelete: true},
		{Name: "quotation_invoices", Model: &QuotationInvoice{}, SoftDelete: true},
		{Name: "truck_orders", Model: &TruckOrder{}, SoftDelete: true},
		{Name: "cargos", Model: &Cargo{}, SoftDelete: true},
		{Name: "services", Model: &Service{}, SoftDelete: true},
		{Name: "adjustments", Model: &Adjustment{}, SoftDelete: true},
		{Name: "accounts", Model: &Account{}, SoftDelete: true},
		{Name: "transactions", Model: &Transaction{}, SoftDelete: true},
		{Name: "stock_snapshots", Model: &StockSnapshot{}, SoftDelete: false},
		{Name: "activities", Model: &Activity{}, SoftDelete: false},
	}
}
