package v1

import (
	ft_uuid "github.com/fintrack-app/backend/internal/uuid"
)

type URIID struct {
	ID ft_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// URICategoryID identifies a catalog entry. Catalog IDs are plain strings,
// not UUIDs.
type URICategoryID struct {
	ID string `uri:"id" binding:"required" example:"3"` // ID of the category
}
