package models

import (
	"errors"
	"fmt"

	"github.com/fintrack-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal.
type Goal struct {
	DefaultModel
	Title         string          `json:"title" example:"New TV"`
	TargetAmount  decimal.Decimal `json:"targetAmount" example:"1000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" example:"350"` // May transiently exceed the target, consumers clamp
	Deadline      types.Date      `json:"deadline" example:"2024-12-31"`
	Category      string          `json:"category" example:"Eletrônicos"` // Free-text label, not a catalog reference
	Priority      GoalPriority    `json:"priority" example:"medium"`
	Color         string          `json:"color" example:"#8B5CF6"`
}

// GoalPriority orders goals by importance.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
)

var (
	ErrGoalTargetNotPositive = errors.New("goal target amounts must be larger than zero")
	ErrGoalPriorityInvalid   = fmt.Errorf("goal priority must be one of %q, %q, %q", PriorityLow, PriorityMedium, PriorityHigh)
)

// Valid returns an error if the priority is not a known value.
func (p GoalPriority) Valid() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}

	return ErrGoalPriorityInvalid
}
