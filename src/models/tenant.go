package models

import (
	"time"
	"tpw/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Tenant struct {
	ID            uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	Name          string    `json:"name,omitempty"`
	Code          string    `gorm:"uniqueIndex" json:"code,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	LogoUrl       string    `json:"logo_url,omitempty"`
	IsActive      bool      `gorm:"default:true" json:"is_active,omitempty"`

	PlanID               *uuid.UUID               `json:"plan_id,omitempty"`
	BillingCycle         types.BillingCycle       `json:"billing_cycle,omitempty"`
	SeatsPurchased       int                      `json:"seats_purchased,omitempty"`
	SubscriptionStatus   types.SubscriptionStatus `gorm:"default:'Active'" json:"subscription_status,omitempty"`
	SubscriptionStartUtc *time.Time               `json:"subscription_start,omitempty"`
	SubscriptionEndUtc   *time.Time               `json:"subscription_end,omitempty"`

	Plan  *Plan  `gorm:"foreignKey:plan_id" json:"plan,omitempty"`
	Users []User `gorm:"foreignKey:tenant_id" json:"-"`

	types.Timestamps
}

type Plan struct {
	ID           uuid.UUID       `gorm:"primarykey;type:uuid" json:"id"`
	Name         string          `json:"name,omitempty"`
	PricePerSeat decimal.Decimal `gorm:"type:numeric(12,2)" json:"price_per_seat"`
	IsActive     bool            `gorm:"default:true" json:"is_active,omitempty"`

	types.Timestamps
}
