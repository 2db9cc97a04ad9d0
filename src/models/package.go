package models

import (
	"time"
	"tpw/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TourPackage struct {
	ID       uuid.UUID  `gorm:"primarykey;type:uuid" json:"id"`
	TenantID uuid.UUID  `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	LeadID   *uuid.UUID `gorm:"type:uuid;index" json:"lead_id,omitempty"`

	ClientName           string `json:"client_name,omitempty"`
	ClientPhone          string `json:"client_phone,omitempty"`
	ClientEmail          string `json:"client_email,omitempty"`
	ClientCity           string `json:"client_city,omitempty"`
	ClientState          string `json:"client_state,omitempty"`
	ClientPickupLocation string `json:"client_pickup_location,omitempty"`
	ClientDropLocation   string `json:"client_drop_location,omitempty"`

	PackageName      string    `json:"package_name,omitempty"`
	StartDate        time.Time `json:"start_date,omitempty"`
	EndDate          time.Time `json:"end_date,omitempty"`
	NumberOfDays     int       `json:"number_of_days,omitempty"`
	NumberOfAdults   int       `json:"number_of_adults,omitempty"`
	NumberOfChildren int       `json:"number_of_children,omitempty"`

	VehicleID *uuid.UUID `gorm:"type:uuid" json:"vehicle_id,omitempty"`

	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2)" json:"total_amount"`
	Discount      decimal.Decimal `gorm:"type:numeric(14,2)" json:"discount"`
	AdvanceAmount decimal.Decimal `gorm:"type:numeric(14,2)" json:"advance_amount"`
	BalanceAmount decimal.Decimal `gorm:"type:numeric(14,2)" json:"balance_amount"`

	Status       types.PackageStatus `gorm:"type:text;default:'New'" json:"status,omitempty"`
	InclusionIds types.StringArray   `gorm:"type:jsonb" json:"inclusion_ids,omitempty"`
	CreatedBy    string              `json:"created_by,omitempty"`

	Lead             *Lead          `gorm:"foreignKey:lead_id" json:"-"`
	Vehicle          *Vehicle       `gorm:"foreignKey:vehicle_id" json:"vehicle,omitempty"`
	DayWiseItinerary []DayItinerary `gorm:"foreignKey:package_id;constraint:OnDelete:CASCADE" json:"day_wise_itinerary,omitempty"`

	types.Timestamps
}

type DayItinerary struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	PackageID uuid.UUID `gorm:"type:uuid;index" json:"package_id,omitempty"`

	DayNumber     int            `json:"day_number,omitempty"`
	Date          time.Time      `json:"date,omitempty"`
	HotelID       *uuid.UUID     `gorm:"type:uuid" json:"hotel_id,omitempty"`
	RoomType      string         `json:"room_type,omitempty"`
	NumberOfRooms int            `json:"number_of_rooms,omitempty"`
	CheckInTime   string         `json:"check_in_time,omitempty"`
	CheckOutTime  string         `json:"check_out_time,omitempty"`
	MealPlan      types.MealPlan `gorm:"default:'MAP'" json:"meal_plan,omitempty"`
	ExtraBedCount int            `json:"extra_bed_count,omitempty"`
	CnbCount      int            `json:"cnb_count,omitempty"`

	Activities types.StringArray `gorm:"type:jsonb" json:"activities,omitempty"`
	Meals      types.StringArray `gorm:"type:jsonb" json:"meals,omitempty"`
	Notes      string            `json:"notes,omitempty"`

	ItineraryTemplateID *uuid.UUID `gorm:"type:uuid" json:"itinerary_template_id,omitempty"`

	HotelCost decimal.Decimal `gorm:"type:numeric(14,2)" json:"hotel_cost"`

	Package           *TourPackage       `gorm:"foreignKey:package_id" json:"-"`
	Hotel             *Hotel             `gorm:"foreignKey:hotel_id" json:"hotel,omitempty"`
	ItineraryTemplate *ItineraryTemplate `gorm:"foreignKey:itinerary_template_id" json:"itinerary_template,omitempty"`

	types.Timestamps
}
