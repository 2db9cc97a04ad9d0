package models

import (
	"time"
	"tpw/src/types"

	"github.com/google/uuid"
)

type Lead struct {
	ID          uuid.UUID        `gorm:"primarykey;type:uuid" json:"id"`
	TenantID    uuid.UUID        `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	ClientName  string           `json:"client_name,omitempty"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	ClientEmail string           `json:"client_email,omitempty"`
	ClientState string           `json:"client_state,omitempty"`
	ClientCity  string           `json:"client_city,omitempty"`
	Address     string           `json:"address,omitempty"`
	LeadSource  types.LeadSource `gorm:"default:'Other'" json:"lead_source,omitempty"`
	Status      types.LeadStatus `gorm:"type:text;default:'New'" json:"status,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	CreatedBy   string           `json:"created_by,omitempty"`

	AssignedToUserID *uuid.UUID `gorm:"type:uuid" json:"assigned_to,omitempty"`
	AssignedToUser   *User      `gorm:"foreignKey:assigned_to_user_id" json:"-"`

	FollowUps []LeadFollowUp `gorm:"foreignKey:lead_id" json:"follow_ups,omitempty"`
	Packages  []TourPackage  `gorm:"foreignKey:lead_id" json:"-"`

	types.Timestamps
}

// LeadFollowUp is the status/notes history trail appended whenever a lead's
// pipeline state changes. Writes to it are best-effort and never fail the
// primary update.
type LeadFollowUp struct {
	ID           uuid.UUID        `gorm:"primarykey;type:uuid" json:"id"`
	TenantID     uuid.UUID        `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	LeadID       uuid.UUID        `gorm:"type:uuid;index" json:"lead_id,omitempty"`
	FollowUpDate time.Time        `json:"follow_up_date,omitempty"`
	Status       types.LeadStatus `gorm:"type:text" json:"status,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedBy    string           `json:"created_by,omitempty"`

	Lead *Lead `gorm:"foreignKey:lead_id" json:"-"`

	types.Timestamps
}
