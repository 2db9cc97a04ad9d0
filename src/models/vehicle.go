package models

import (
	"tpw/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransportCompany struct {
	ID            uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TenantID      uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	Name          string    `json:"name,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`

	Vehicles []Vehicle `gorm:"foreignKey:transport_company_id" json:"vehicles,omitempty"`

	types.Timestamps
}

type Vehicle struct {
	ID       uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`

	VehicleType        types.VehicleType `gorm:"default:'Sedan'" json:"vehicle_type,omitempty"`
	VehicleModel       string            `json:"vehicle_model,omitempty"`
	RegistrationNumber string            `json:"registration_number,omitempty"`
	SeatingCapacity    int               `json:"seating_capacity,omitempty"`

	TransportCompanyID *uuid.UUID `gorm:"type:uuid" json:"transport_company_id,omitempty"`

	RateType   types.RateType  `gorm:"default:'PerDay'" json:"rate_type,omitempty"`
	RateAmount decimal.Decimal `gorm:"type:numeric(14,2)" json:"rate_amount"`

	TransportCompany *TransportCompany `gorm:"foreignKey:transport_company_id" json:"-"`

	types.Timestamps
}
