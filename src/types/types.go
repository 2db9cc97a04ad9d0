package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

// StringArray is a list-valued column stored as a serialized JSON array
// (InclusionIds, Activities, Meals, Amenities, ImageUrls).
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *StringArray) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = StringArray{}
		return nil
	}
	return errors.New("type assertion to []byte failed")
}

type Claims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	TenantID string `json:"tenant_id"`
	jwt.RegisteredClaims
}

type UserRole string

const (
	ROLE_SUPERADMIN UserRole = "superadmin"
	ROLE_ADMIN      UserRole = "admin"
	ROLE_AGENT      UserRole = "agent"
	ROLE_VIEWER     UserRole = "viewer"
)

type UserDepartment string

const (
	DEPARTMENT_GENERAL  UserDepartment = "general"
	DEPARTMENT_SALES    UserDepartment = "sales"
	DEPARTMENT_HR       UserDepartment = "hr"
	DEPARTMENT_ACCOUNTS UserDepartment = "accounts"
)

type LeadSource string

const (
	SOURCE_WEBSITE       LeadSource = "Website"
	SOURCE_REFERRAL      LeadSource = "Referral"
	SOURCE_SOCIAL_MEDIA  LeadSource = "SocialMedia"
	SOURCE_DIRECT_CALL   LeadSource = "DirectCall"
	SOURCE_EMAIL         LeadSource = "Email"
	SOURCE_WALK_IN       LeadSource = "WalkIn"
	SOURCE_ADVERTISEMENT LeadSource = "Advertisement"
	SOURCE_OTHER         LeadSource = "Other"
)

type MealPlan string

const (
	MEAL_PLAN_ROOM_ONLY      MealPlan = "RoomOnly"
	MEAL_PLAN_CP             MealPlan = "CP"
	MEAL_PLAN_MAP            MealPlan = "MAP"
	MEAL_PLAN_AP             MealPlan = "AP"
	MEAL_PLAN_BREAKFAST_ONLY MealPlan = "BreakfastOnly"
)

// Label is the client-facing meal plan name used on the generated document.
func (m MealPlan) Label() string {
	switch m {
	case MEAL_PLAN_ROOM_ONLY:
		return "EP (Room Only)"
	case MEAL_PLAN_CP:
		return "CP (Breakfast)"
	case MEAL_PLAN_MAP:
		return "MAP (Breakfast + Dinner)"
	case MEAL_PLAN_AP:
		return "AP (All Meals)"
	case MEAL_PLAN_BREAKFAST_ONLY:
		return "Breakfast Only"
	}
	return "–"
}

type VehicleType string

const (
	VEHICLE_SEDAN           VehicleType = "Sedan"
	VEHICLE_SUV             VehicleType = "SUV"
	VEHICLE_TEMPO_TRAVELLER VehicleType = "TempoTraveller"
	VEHICLE_MINI_BUS        VehicleType = "MiniBus"
	VEHICLE_BUS             VehicleType = "Bus"
	VEHICLE_LUXURY          VehicleType = "Luxury"
	VEHICLE_OTHER           VehicleType = "Other"
)

type RateType string

const (
	RATE_PER_DAY  RateType = "PerDay"
	RATE_PER_KM   RateType = "PerKm"
	RATE_PER_TRIP RateType = "PerTrip"
	RATE_FLAT     RateType = "Flat"
)

type PaymentType string

const (
	PAYMENT_RECEIVED PaymentType = "Received"
	PAYMENT_MADE     PaymentType = "Made"
)

type SubscriptionStatus string

const (
	SUBSCRIPTION_ACTIVE    SubscriptionStatus = "Active"
	SUBSCRIPTION_PAST_DUE  SubscriptionStatus = "PastDue"
	SUBSCRIPTION_EXPIRED   SubscriptionStatus = "Expired"
	SUBSCRIPTION_CANCELLED SubscriptionStatus = "Cancelled"
)

type BillingCycle string

const (
	BILLING_DAILY        BillingCycle = "Daily"
	BILLING_WEEKLY       BillingCycle = "Weekly"
	BILLING_MONTHLY      BillingCycle = "Monthly"
	BILLING_THREE_MONTHS BillingCycle = "ThreeMonths"
	BILLING_SIX_MONTHS   BillingCycle = "SixMonths"
	BILLING_YEARLY       BillingCycle = "Yearly"
)

type SimpleRequestParams struct {
	ID uuid.UUID `uri:"id" binding:"required"`
}

type PaginationQuery struct {
	PageNumber int    `form:"pageNumber,default=1"`
	PageSize   int    `form:"pageSize,default=50"`
	SearchTerm string `form:"searchTerm"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterUserRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	TenantID string `json:"tenant_id" binding:"required,uuid"`
}

type CreateLeadRequestBody struct {
	ClientName  string     `json:"client_name" binding:"required"`
	PhoneNumber string     `json:"phone_number" binding:"required"`
	ClientEmail string     `json:"client_email,omitempty"`
	ClientState string     `json:"client_state,omitempty"`
	ClientCity  string     `json:"client_city,omitempty"`
	Address     string     `json:"address,omitempty"`
	LeadSource  LeadSource `json:"lead_source,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type UpdateLeadRequestBody struct {
	CreateLeadRequestBody
	Status           string     `json:"status,omitempty"`
	AssignedToUserID *uuid.UUID `json:"assigned_to,omitempty"`
}

type CreateFollowUpRequestBody struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes,omitempty"`
}

type CreateDayItineraryRequestBody struct {
	DayNumber           int             `json:"day_number" binding:"required,min=1"`
	Date                string          `json:"date" binding:"required,tripdate"`
	HotelID             *uuid.UUID      `json:"hotel_id,omitempty"`
	RoomType            string          `json:"room_type,omitempty"`
	NumberOfRooms       int             `json:"number_of_rooms,omitempty"`
	CheckInTime         string          `json:"check_in_time,omitempty"`
	CheckOutTime        string          `json:"check_out_time,omitempty"`
	MealPlan            MealPlan        `json:"meal_plan,omitempty"`
	ExtraBedCount       int             `json:"extra_bed_count,omitempty"`
	CnbCount            int             `json:"cnb_count,omitempty"`
	Activities          []string        `json:"activities,omitempty"`
	Meals               []string        `json:"meals,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	ItineraryTemplateID *uuid.UUID      `json:"itinerary_template_id,omitempty"`
	HotelCost           decimal.Decimal `json:"hotel_cost"`
}

type CreatePackageRequestBody struct {
	LeadID               *uuid.UUID                      `json:"lead_id,omitempty"`
	ClientName           string                          `json:"client_name" binding:"required"`
	ClientPhone          string                          `json:"client_phone" binding:"required"`
	ClientEmail          string                          `json:"client_email,omitempty"`
	ClientCity           string                          `json:"client_city,omitempty"`
	ClientState          string                          `json:"client_state,omitempty"`
	ClientPickupLocation string                          `json:"client_pickup_location" binding:"required"`
	ClientDropLocation   string                          `json:"client_drop_location" binding:"required"`
	PackageName          string                          `json:"package_name" binding:"required"`
	StartDate            string                          `json:"start_date" binding:"required,tripdate"`
	EndDate              string                          `json:"end_date" binding:"required,tripdate,gtedate=StartDate"`
	NumberOfAdults       int                             `json:"number_of_adults" binding:"min=0"`
	NumberOfChildren     int                             `json:"number_of_children" binding:"min=0"`
	VehicleID            *uuid.UUID                      `json:"vehicle_id,omitempty"`
	InclusionIds         []string                        `json:"inclusion_ids,omitempty"`
	DayWiseItinerary     []CreateDayItineraryRequestBody `json:"day_wise_itinerary,omitempty" binding:"dive"`
}

type UpdatePackageRequestBody struct {
	CreatePackageRequestBody
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Discount      decimal.Decimal `json:"discount"`
	AdvanceAmount decimal.Decimal `json:"advance_amount"`
	Status        string          `json:"status,omitempty"`
}

type RateRequestBody struct {
	FromDate             string           `json:"from_date" binding:"required,tripdate"`
	ToDate               string           `json:"to_date" binding:"required,tripdate"`
	RoomCategory         string           `json:"room_category,omitempty"`
	MealPlan             MealPlan         `json:"meal_plan,omitempty"`
	CostPrice            decimal.Decimal  `json:"cost_price"`
	SellingPrice         decimal.Decimal  `json:"selling_price"`
	ExtraBedCostPrice    *decimal.Decimal `json:"extra_bed_cost_price,omitempty"`
	ExtraBedSellingPrice *decimal.Decimal `json:"extra_bed_selling_price,omitempty"`
	CnbCostPrice         *decimal.Decimal `json:"cnb_cost_price,omitempty"`
	CnbSellingPrice      *decimal.Decimal `json:"cnb_selling_price,omitempty"`
}

type CreateHotelRequestBody struct {
	Name         string            `json:"name" binding:"required"`
	Address      string            `json:"address,omitempty"`
	City         string            `json:"city,omitempty"`
	State        string            `json:"state,omitempty"`
	Pincode      string            `json:"pincode,omitempty"`
	PhoneNumber  string            `json:"phone_number,omitempty"`
	Email        string            `json:"email,omitempty"`
	StarRating   int               `json:"star_rating,omitempty" binding:"omitempty,min=0,max=5"`
	IsHouseboat  bool              `json:"is_houseboat,omitempty"`
	Amenities    []string          `json:"amenities,omitempty"`
	Description  string            `json:"description,omitempty"`
	CheckInTime  string            `json:"check_in_time,omitempty"`
	CheckOutTime string            `json:"check_out_time,omitempty"`
	ImageUrls    []string          `json:"image_urls,omitempty"`
	Rates        []RateRequestBody `json:"rates,omitempty" binding:"dive"`
}

type CreateVehicleRequestBody struct {
	VehicleType        VehicleType     `json:"vehicle_type" binding:"required"`
	VehicleModel       string          `json:"vehicle_model,omitempty"`
	RegistrationNumber string          `json:"registration_number,omitempty"`
	SeatingCapacity    int             `json:"seating_capacity,omitempty"`
	TransportCompanyID *uuid.UUID      `json:"transport_company_id,omitempty"`
	RateType           RateType        `json:"rate_type,omitempty"`
	RateAmount         decimal.Decimal `json:"rate_amount"`
}

type CreateTransportCompanyRequestBody struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
}

type CreatePaymentRequestBody struct {
	Type      PaymentType     `json:"type" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      string          `json:"date" binding:"required,tripdate"`
	Mode      string          `json:"mode,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	LeadID    *uuid.UUID      `json:"lead_id,omitempty"`
	PackageID *uuid.UUID      `json:"package_id,omitempty"`
}

type CreateItineraryTemplateRequestBody struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
}

type CreateTenantRequestBody struct {
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code,omitempty"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
}

type UpdateTenantSubscriptionRequestBody struct {
	PlanID         *uuid.UUID         `json:"plan_id,omitempty"`
	BillingCycle   BillingCycle       `json:"billing_cycle,omitempty"`
	SeatsPurchased int                `json:"seats_purchased,omitempty" binding:"omitempty,min=1"`
	Status         SubscriptionStatus `json:"status,omitempty"`
	StartDate      string             `json:"start_date,omitempty" binding:"omitempty,tripdate"`
	EndDate        string             `json:"end_date,omitempty" binding:"omitempty,tripdate,gtedate=StartDate"`
}

type CreateTenantUserRequestBody struct {
	Email      string         `json:"email" binding:"required,email"`
	Password   string         `json:"password" binding:"required,min=8"`
	Name       string         `json:"name" binding:"required"`
	Role       UserRole       `json:"role,omitempty"`
	Department UserDepartment `json:"department,omitempty"`
}
