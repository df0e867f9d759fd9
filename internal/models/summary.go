package models

import "github.com/shopspring/decimal"

// Summary is the figures shown on the dashboard
type Summary struct {
	TotalExpense   decimal.Decimal `json:"total_expense"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Clients        int             `json:"clients"`
	Employees      int             `json:"employees"`
	Products       int             `json:"products"`
	Expenses       int             `json:"expenses"`
}
