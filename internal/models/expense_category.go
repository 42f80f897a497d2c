package models

import (
	"github.com/shopspring/decimal"
)

// ExpenseCategory is an entry in the category catalog.
//
// Expenses embed a copy of the category they were created with, so editing
// the catalog never changes categories on historical expenses.
type ExpenseCategory struct {
	ID     string              `json:"id" example:"3"`
	Name   string              `json:"name" example:"Compras"`
	Icon   string              `json:"icon" example:"ShoppingBag"`
	Color  string              `json:"color" example:"#F59E0B"`
	Budget decimal.NullDecimal `json:"budget" swaggertype:"number"` // Optional monthly ceiling, informational only
}

// DefaultCategories returns the category catalog the store is seeded with.
func DefaultCategories() []ExpenseCategory {
	return []ExpenseCategory{
		{ID: "1", Name: "Transporte", Icon: "Car", Color: "#3B82F6"},
		{ID: "2", Name: "Casa", Icon: "Home", Color: "#10B981"},
		{ID: "3", Name: "Compras", Icon: "ShoppingBag", Color: "#F59E0B"},
		{ID: "4", Name: "Contas Fixas", Icon: "Receipt", Color: "#EF4444"},
		{ID: "5", Name: "Saúde", Icon: "Heart", Color: "#EC4899"},
		{ID: "6", Name: "Alimentação", Icon: "UtensilsCrossed", Color: "#8B5CF6"},
	}
}
