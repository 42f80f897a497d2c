package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	Title       string          `json:"title" example:"Groceries" default:""`          // Title of the expense
	Amount      decimal.Decimal `json:"amount" example:"99.90" default:"0"`            // Amount spent
	CategoryID  string          `json:"categoryId" example:"3" default:""`             // ID of the catalog entry
	Date        types.Date      `json:"date" example:"2024-07-02"`                     // Day of the expense
	Description string          `json:"description" example:"Weekly shopping" default:""` // Optional details
	Recurring   bool            `json:"recurring" example:"false" default:"false"`     // Repeats every month
}

// model returns the domain record for the API representation of the editable
// fields. The category is embedded as a copy of the catalog entry.
func (editable ExpenseEditable) model(category models.ExpenseCategory) models.Expense {
	return models.Expense{
		Title:       editable.Title,
		Amount:      editable.Amount,
		Category:    category,
		Date:        editable.Date,
		Description: editable.Description,
		Recurring:   editable.Recurring,
	}
}

func (editable ExpenseEditable) validate() error {
	if editable.Amount.IsNegative() {
		return models.ErrAmountNegative
	}

	return nil
}

type ExpensePatch struct {
	Title       *string          `json:"title" example:"Groceries"`
	Amount      *decimal.Decimal `json:"amount" example:"99.90"`
	CategoryID  *string          `json:"categoryId" example:"3"`
	Date        *types.Date      `json:"date" example:"2024-07-02"`
	Description *string          `json:"description" example:"Weekly shopping"`
	Recurring   *bool            `json:"recurring" example:"true"`
}

// apply sets the fields present in the patch on the record. The category has
// already been resolved by the controller.
func (patch ExpensePatch) apply(expense *models.Expense, category *models.ExpenseCategory) {
	if patch.Title != nil {
		expense.Title = *patch.Title
	}
	if patch.Amount != nil {
		expense.Amount = *patch.Amount
	}
	if category != nil {
		expense.Category = *category
	}
	if patch.Date != nil {
		expense.Date = *patch.Date
	}
	if patch.Description != nil {
		expense.Description = *patch.Description
	}
	if patch.Recurring != nil {
		expense.Recurring = *patch.Recurring
	}
}

func (patch ExpensePatch) validate() error {
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return models.ErrAmountNegative
	}

	return nil
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The expense itself
}

type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

// newExpense returns the API v1 representation of the record
func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/expenses/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                            // The resource
	Error *string  `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                            // List of resources
	Error *string   `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}
