package models

import (
	"tpw/src/types"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID            `gorm:"primarykey;type:uuid" json:"id"`
	TenantID     uuid.UUID            `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	Email        string               `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string               `json:"-"`
	Name         string               `json:"name,omitempty"`
	Role         types.UserRole       `gorm:"default:'agent'" json:"role,omitempty"`
	Department   types.UserDepartment `gorm:"default:'general'" json:"department,omitempty"`
	IsActive     bool                 `gorm:"default:true" json:"is_active,omitempty"`

	Tenant *Tenant `gorm:"foreignKey:tenant_id" json:"-"`

	types.Timestamps
}
