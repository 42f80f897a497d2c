package v1

import (
	"fmt"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/fintrack-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type IncomeSourceEditable struct {
	Name         string              `json:"name" example:"Freelance" default:""`       // Name of the income source
	Amount       decimal.Decimal     `json:"amount" example:"500" default:"0"`          // Expected amount
	ExpectedDate types.Date          `json:"expectedDate" example:"2024-07-05"`         // Day the income is expected
	Status       models.IncomeStatus `json:"status" example:"pending" default:"pending"` // One of "received", "pending", "overdue"
	Color        string              `json:"color" example:"#10B981" default:""`        // Display color
}

// model returns the domain record for the API representation of the editable fields
func (editable IncomeSourceEditable) model() models.IncomeSource {
	if editable.Status == "" {
		editable.Status = models.IncomePending
	}

	return models.IncomeSource{
		Name:         editable.Name,
		Amount:       editable.Amount,
		ExpectedDate: editable.ExpectedDate,
		Status:       editable.Status,
		Color:        editable.Color,
	}
}

func (editable IncomeSourceEditable) validate() error {
	if editable.Amount.IsNegative() {
		return models.ErrAmountNegative
	}

	if editable.Status != "" {
		return editable.Status.Valid()
	}

	return nil
}

type IncomeSourcePatch struct {
	Name         *string              `json:"name" example:"Freelance"`
	Amount       *decimal.Decimal     `json:"amount" example:"500"`
	ExpectedDate *types.Date          `json:"expectedDate" example:"2024-07-05"`
	Status       *models.IncomeStatus `json:"status" example:"received"`
	Color        *string              `json:"color" example:"#10B981"`
}

// apply sets the fields present in the patch on the record.
func (patch IncomeSourcePatch) apply(source *models.IncomeSource) {
	if patch.Name != nil {
		source.Name = *patch.Name
	}
	if patch.Amount != nil {
		source.Amount = *patch.Amount
	}
	if patch.ExpectedDate != nil {
		source.ExpectedDate = *patch.ExpectedDate
	}
	if patch.Status != nil {
		source.Status = *patch.Status
	}
	if patch.Color != nil {
		source.Color = *patch.Color
	}
}

func (patch IncomeSourcePatch) validate() error {
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return models.ErrAmountNegative
	}

	if patch.Status != nil {
		return patch.Status.Valid()
	}

	return nil
}

type IncomeSourceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/income-sources/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The income source itself
}

type IncomeSource struct {
	models.IncomeSource
	Links IncomeSourceLinks `json:"links"`
}

// newIncomeSource returns the API v1 representation of the record
func newIncomeSource(c *gin.Context, model models.IncomeSource) IncomeSource {
	return IncomeSource{
		IncomeSource: model,
		Links: IncomeSourceLinks{
			Self: fmt.Sprintf("%s/income-sources/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type IncomeSourceResponse struct {
	Data  *IncomeSource `json:"data"`                                                 // The resource
	Error *string       `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}

type IncomeSourceListResponse struct {
	Data  []IncomeSource `json:"data"`                                                 // List of resources
	Error *string        `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}
