// Package models implements the domain records for the finance tracker.
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Document is implemented by every record that can be stored
// in a remote document collection.
type Document interface {
	DocumentID() uuid.UUID
}

// DefaultModel is the base model for all records.
type DefaultModel struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the record
	Timestamps
}

// Timestamps are managed by the store on every write.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the record was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the record was updated
}

// NewDefaultModel returns a DefaultModel with a fresh UUID and UTC timestamps.
func NewDefaultModel() DefaultModel {
	now := time.Now().In(time.UTC)

	return DefaultModel{
		ID: uuid.New(),
		Timestamps: Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// DocumentID implements the Document interface.
func (m DefaultModel) DocumentID() uuid.UUID {
	return m.ID
}

var ErrAmountNegative = errors.New("amounts must not be negative")
