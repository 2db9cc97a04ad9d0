package models

import (
	"time"
	"tpw/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Hotel struct {
	ID          uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TenantID    uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	Name        string    `json:"name,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Pincode     string    `json:"pincode,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Email       string    `json:"email,omitempty"`
	StarRating  int       `json:"star_rating,omitempty"`
	IsHouseboat bool      `json:"is_houseboat,omitempty"`

	Amenities types.StringArray `gorm:"type:jsonb" json:"amenities,omitempty"`
	ImageUrls types.StringArray `gorm:"type:jsonb" json:"image_urls,omitempty"`

	Description  string `json:"description,omitempty"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`

	Rates []AccommodationRate `gorm:"foreignKey:hotel_id;constraint:OnDelete:CASCADE" json:"rates,omitempty"`

	types.Timestamps
}

type AccommodationRate struct {
	ID       uuid.UUID `gorm:"primarykey;type:uuid" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`
	HotelID  uuid.UUID `gorm:"type:uuid;index" json:"hotel_id,omitempty"`

	FromDate     time.Time      `json:"from_date,omitempty"`
	ToDate       time.Time      `json:"to_date,omitempty"`
	RoomCategory string         `json:"room_category,omitempty"`
	MealPlan     types.MealPlan `gorm:"default:'MAP'" json:"meal_plan,omitempty"`

	CostPrice    decimal.Decimal `gorm:"type:numeric(14,2)" json:"cost_price"`
	SellingPrice decimal.Decimal `gorm:"type:numeric(14,2)" json:"selling_price"`

	ExtraBedCostPrice    *decimal.Decimal `gorm:"type:numeric(14,2)" json:"extra_bed_cost_price,omitempty"`
	ExtraBedSellingPrice *decimal.Decimal `gorm:"type:numeric(14,2)" json:"extra_bed_selling_price,omitempty"`
	CnbCostPrice         *decimal.Decimal `gorm:"type:numeric(14,2)" json:"cnb_cost_price,omitempty"`
	CnbSellingPrice      *decimal.Decimal `gorm:"type:numeric(14,2)" json:"cnb_selling_price,omitempty"`

	Hotel *Hotel `gorm:"foreignKey:hotel_id" json:"-"`

	types.Timestamps
}
