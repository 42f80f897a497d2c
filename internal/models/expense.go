package models

import (
	"github.com/fintrack-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Expense represents money spent on a single occasion.
type Expense struct {
	DefaultModel
	Title       string          `json:"title" example:"Groceries"`
	Amount      decimal.Decimal `json:"amount" example:"99.90"`
	Category    ExpenseCategory `json:"category"` // A copy of the catalog entry at creation time, not a reference
	Date        types.Date      `json:"date" example:"2024-07-02"`
	Description string          `json:"description,omitempty" example:"Weekly shopping"`
	Recurring   bool            `json:"recurring" example:"false"`
}
