package models

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// IncomeSource represents expected or received income, e.g. a salary.
type IncomeSource struct {
	DefaultModel
	Name         string          `json:"name" example:"Freelance"`
	Amount       decimal.Decimal `json:"amount" example:"500"`
	ExpectedDate types.Date      `json:"expectedDate" example:"2024-07-05"`
	Status       IncomeStatus    `json:"status" example:"pending"`
	Color        string          `json:"color" example:"#10B981"` // Display tag, has no meaning beyond presentation
}

// IncomeStatus tracks whether income has arrived.
type IncomeStatus string

const (
	IncomeReceived IncomeStatus = "received"
	IncomePending  IncomeStatus = "pending"
	IncomeOverdue  IncomeStatus = "overdue"
)

var ErrIncomeStatusInvalid = fmt.Errorf("income status must be one of %q, %q, %q", IncomeReceived, IncomePending, IncomeOverdue)

// Valid returns an error if the status is not a known value.
func (s IncomeStatus) Valid() error {
	switch s {
	case IncomeReceived, IncomePending, IncomeOverdue:
		return nil
	}

	return ErrIncomeStatusInvalid
}
