package models

import (
	"time"
	"tpw/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID       uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`

	Type      types.PaymentType `json:"type,omitempty"`
	Amount    decimal.Decimal   `gorm:"type:numeric(14,2)" json:"amount"`
	Date      time.Time         `json:"date,omitempty"`
	Mode      string            `json:"mode,omitempty"`
	Reference string            `json:"reference,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	CreatedBy string            `json:"created_by,omitempty"`

	LeadID    *uuid.UUID `gorm:"type:uuid" json:"lead_id,omitempty"`
	PackageID *uuid.UUID `gorm:"type:uuid" json:"package_id,omitempty"`

	Lead    *Lead        `gorm:"foreignKey:lead_id" json:"-"`
	Package *TourPackage `gorm:"foreignKey:package_id" json:"-"`

	types.Timestamps
}
