package models

import (
	"tpw/src/types"

	"github.com/google/uuid"
)

// ItineraryTemplate holds reusable day-description boilerplate. A linked
// template's title becomes the day heading in the generated document.
type ItineraryTemplate struct {
	ID          uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TenantID    uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`

	types.Timestamps
}
