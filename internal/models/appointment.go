package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Appointment represents a scheduled service with an estimated cost,
// e.g. a car inspection.
type Appointment struct {
	DefaultModel
	Title         string            `json:"title" example:"Car inspection"`
	Date          time.Time         `json:"date" example:"2024-07-10T14:30:00Z"`
	EstimatedCost decimal.Decimal   `json:"estimatedCost" example:"150"`
	Status        AppointmentStatus `json:"status" example:"scheduled"`
	Category      string            `json:"category" example:"Transporte"`
	Description   string            `json:"description,omitempty"`
}

// AppointmentStatus tracks the lifecycle of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "scheduled"
	AppointmentInProgress AppointmentStatus = "in-progress"
	AppointmentCompleted  AppointmentStatus = "completed"
)

var ErrAppointmentStatusInvalid = fmt.Errorf("appointment status must be one of %q, %q, %q", AppointmentScheduled, AppointmentInProgress, AppointmentCompleted)

// Valid returns an error if the status is not a known value.
func (s AppointmentStatus) Valid() error {
	switch s {
	case AppointmentScheduled, AppointmentInProgress, AppointmentCompleted:
		return nil
	}

	return ErrAppointmentStatusInvalid
}
