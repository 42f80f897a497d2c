package v1

import (
	"fmt"
	"time"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/fintrack-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AppointmentEditable struct {
	Title         string                   `json:"title" example:"Car inspection" default:""`        // Title of the appointment
	Date          time.Time                `json:"date" example:"2024-07-10T14:30:00Z"`              // Date and time of the appointment
	EstimatedCost decimal.Decimal          `json:"estimatedCost" example:"150" default:"0"`          // Expected cost
	Status        models.AppointmentStatus `json:"status" example:"scheduled" default:"scheduled"`   // One of "scheduled", "in-progress", "completed"
	Category      string                   `json:"category" example:"Transporte" default:""`         // Free-text label
	Description   string                   `json:"description" example:"Annual inspection" default:""` // Optional details
}

// model returns the domain record for the API representation of the editable fields
func (editable AppointmentEditable) model() models.Appointment {
	if editable.Status == "" {
		editable.Status = models.AppointmentScheduled
	}

	return models.Appointment{
		Title:         editable.Title,
		Date:          editable.Date,
		EstimatedCost: editable.EstimatedCost,
		Status:        editable.Status,
		Category:      editable.Category,
		Description:   editable.Description,
	}
}

func (editable AppointmentEditable) validate() error {
	if editable.EstimatedCost.IsNegative() {
		return models.ErrAmountNegative
	}

	if editable.Status != "" {
		return editable.Status.Valid()
	}

	return nil
}

type AppointmentPatch struct {
	Title         *string                   `json:"title" example:"Car inspection"`
	Date          *time.Time                `json:"date" example:"2024-07-10T14:30:00Z"`
	EstimatedCost *decimal.Decimal          `json:"estimatedCost" example:"150"`
	Status        *models.AppointmentStatus `json:"status" example:"completed"`
	Category      *string                   `json:"category" example:"Transporte"`
	Description   *string                   `json:"description" example:"Annual inspection"`
}

// apply sets the fields present in the patch on the record.
func (patch AppointmentPatch) apply(appointment *models.Appointment) {
	if patch.Title != nil {
		appointment.Title = *patch.Title
	}
	if patch.Date != nil {
		appointment.Date = *patch.Date
	}
	if patch.EstimatedCost != nil {
		appointment.EstimatedCost = *patch.EstimatedCost
	}
	if patch.Status != nil {
		appointment.Status = *patch.Status
	}
	if patch.Category != nil {
		appointment.Category = *patch.Category
	}
	if patch.Description != nil {
		appointment.Description = *patch.Description
	}
}

func (patch AppointmentPatch) validate() error {
	if patch.EstimatedCost != nil && patch.EstimatedCost.IsNegative() {
		return models.ErrAmountNegative
	}

	if patch.Status != nil {
		return patch.Status.Valid()
	}

	return nil
}

type AppointmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/appointments/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The appointment itself
}

type Appointment struct {
	models.Appointment
	Links AppointmentLinks `json:"links"`
}

// newAppointment returns the API v1 representation of the record
func newAppointment(c *gin.Context, model models.Appointment) Appointment {
	return Appointment{
		Appointment: model,
		Links: AppointmentLinks{
			Self: fmt.Sprintf("%s/appointments/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type AppointmentResponse struct {
	Data  *Appointment `json:"data"`                                            // The resource
	Error *string      `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}

type AppointmentListResponse struct {
	Data  []Appointment `json:"data"`                                            // List of resources
	Error *string       `json:"error" example:"there is no record with this ID"` // The error, if any occurred
}
