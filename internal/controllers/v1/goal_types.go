package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/stats"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Title         string              `json:"title" example:"New TV" default:""`          // Title of the goal
	TargetAmount  decimal.Decimal     `json:"targetAmount" example:"1000" default:"0"`    // How much money should be saved
	CurrentAmount decimal.Decimal     `json:"currentAmount" example:"350" default:"0"`    // How much money is already saved
	Deadline      types.Date          `json:"deadline" example:"2024-12-31"`              // Day the goal should be reached
	Category      string              `json:"category" example:"Eletrônicos" default:""`  // Free-text label
	Priority      models.GoalPriority `json:"priority" example:"medium" default:"medium"` // One of "low", "medium", "high"
	Color         string              `json:"color" example:"#8B5CF6" default:""`         // Display color
}

// model returns the domain record for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	if editable.Priority == "" {
		editable.Priority = models.PriorityMedium
	}

	return models.Goal{
		Title:         editable.Title,
		TargetAmount:  editable.TargetAmount,
		CurrentAmount: editable.CurrentAmount,
		Deadline:      editable.Deadline,
		Category:      editable.Category,
		Priority:      editable.Priority,
		Color:         editable.Color,
	}
}

func (editable GoalEditable) validate() error {
	if !editable.TargetAmount.IsPositive() {
		return models.ErrGoalTargetNotPositive
	}

	if editable.CurrentAmount.IsNegative() {
		return models.ErrAmountNegative
	}

	if editable.Priority != "" {
		return editable.Priority.Valid()
	}

	return nil
}

type GoalPatch struct {
	Title         *string              `json:"title" example:"New TV"`
	TargetAmount  *decimal.Decimal     `json:"targetAmount" example:"1000"`
	CurrentAmount *decimal.Decimal     `json:"currentAmount" example:"350"`
	Deadline      *types.Date          `json:"deadline" example:"2024-12-31"`
	Category      *string              `json:"category" example:"Eletrônicos"`
	Priority      *models.GoalPriority `json:"priority" example:"high"`
	Color         *string              `json:"color" example:"#8B5CF6"`
}

// apply sets the fields present in the patch on the record.
func (patch GoalPatch) apply(goal *models.Goal) {
	if patch.Title != nil {
		goal.Title = *patch.Title
	}
	if patch.TargetAmount != nil {
		goal.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		goal.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Deadline != nil {
		goal.Deadline = *patch.Deadline
	}
	if patch.Category != nil {
		goal.Category = *patch.Category
	}
	if patch.Priority != nil {
		goal.Priority = *patch.Priority
	}
	if patch.Color != nil {
		goal.Color = *patch.Color
	}
}

func (patch GoalPatch) validate() error {
	if patch.TargetAmount != nil && !patch.TargetAmount.IsPositive() {
		return models.ErrGoalTargetNotPositive
	}

	if patch.CurrentAmount != nil && patch.CurrentAmount.IsNegative() {
		return models.ErrAmountNegative
	}

	if patch.Priority != nil {
		return patch.Priority.Valid()
	}

	return nil
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal itself
}

type Goal struct {
	models.Goal
	Progress decimal.Decimal `json:"progress" example:"35"` // Progress towards the target in percent, clamped to [0, 100]
	Links    GoalLinks       `json:"links"`
}

// newGoal returns the API v1 representation of the record
func newGoal(c *gin.Context, model models.Goal) Goal {
	return Goal{
		Goal:     model,
		Progress: stats.GoalProgress(model),
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/goals/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                            // The resource
	Error *string `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                            // List of resources
	Error *string `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}
