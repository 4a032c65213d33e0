package models

import "github.com/hekimalabs/smas_backend/config"

func MigrateTable() error {
	db := config.GetDB()

	return db.AutoMigrate(
		&Branch{},
		&User{},
		&Customer{},
		&Product{},
		&Sale{},
		&Purchase{},
		&Debt{},
		&Expense{},
		&Payment{},
		&Freight{},
		&QuotationInvoice{},
		&TruckOrder{},
		&Cargo{},
		&Service{},
		&Adjustment{},
		&Account{},
		&Transaction{},
		&StockSnapshot{},
		&Activity{},
	)
}
