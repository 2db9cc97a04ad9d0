package common

import (
	"testing"
	"time"
	"tpw/src/models"
	"tpw/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testPackage() *models.TourPackage {
	return &models.TourPackage{
		ID:               uuid.New(),
		PackageName:      "Kashmir Delight",
		ClientName:       "Arjun Mehta",
		ClientPhone:      "9876543210",
		ClientCity:       "Pune",
		ClientState:      "Maharashtra",
		StartDate:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC),
		NumberOfDays:     5,
		NumberOfAdults:   4,
		NumberOfChildren: 1,
		TotalAmount:      decimal.NewFromInt(50000),
		Discount:         decimal.NewFromInt(2000),
		AdvanceAmount:    decimal.NewFromInt(10000),
	}
}

func TestBuildPackagePdfModelBasics(t *testing.T) {
	pkg := testPackage()
	tenant := &models.Tenant{Name: "Valley Tours", Phone: "0194-1234567", ContactPerson: "Bashir Ahmad"}

	m := BuildPackagePdfModel(pkg, tenant, "https://api.example.com")

	assert.Equal(t, "10 Apr 2026", m.StartDate)
	assert.Equal(t, "14 Apr 2026", m.EndDate)
	assert.Equal(t, "4N/5D", m.DaysLabel)
	assert.Equal(t, "Pune, Maharashtra", m.ClientAddress)
	assert.Equal(t, "Valley Tours", m.AgencyName)
	assert.Equal(t, "Bashir Ahmad", m.ManagingDirectorName)

	// 4 adults: one 700 charge on top of the stored total.
	assert.Equal(t, "50,700", m.TotalAmount)
	assert.Equal(t, "48,700", m.FinalAmount)
	assert.Equal(t, "9,740", m.PerPersonAmount)
	assert.Equal(t, "38,700", m.BalanceAmount)
}

func TestBuildPackagePdfModelFallbacks(t *testing.T) {
	pkg := &models.TourPackage{
		ID:                   uuid.New(),
		ClientPickupLocation: "Srinagar Airport",
	}
	m := BuildPackagePdfModel(pkg, nil, "")

	assert.Equal(t, "–", m.StartDate)
	assert.Equal(t, "–", m.EndDate)
	assert.Equal(t, "0N/0D", m.DaysLabel)
	// No city/state: pickup location stands in for the address.
	assert.Equal(t, "Srinagar Airport", m.ClientAddress)
	assert.Equal(t, "–", m.MealPlanLabel)
	assert.Equal(t, 1, m.FirstDayRooms)
	assert.Empty(t, m.PerPersonAmount)
	assert.Empty(t, m.AgencyName)
}

func TestBuildPackagePdfModelDayTitles(t *testing.T) {
	hotelID := uuid.New()
	templateID := uuid.New()
	pkg := testPackage()
	pkg.DayWiseItinerary = []models.DayItinerary{
		{
			DayNumber:         2,
			HotelID:           &hotelID,
			Hotel:             &models.Hotel{ID: hotelID, Name: "Grand Palace"},
			ItineraryTemplateID: &templateID,
			ItineraryTemplate: &models.ItineraryTemplate{ID: templateID, Title: "Srinagar Local Sightseeing"},
		},
		{
			DayNumber: 1,
			HotelID:   &hotelID,
			Hotel:     &models.Hotel{ID: hotelID, Name: "Grand Palace"},
		},
		{
			DayNumber: 3,
		},
	}

	m := BuildPackagePdfModel(pkg, nil, "")

	// Days come out ordered by DayNumber regardless of storage order.
	assert.Equal(t, 1, m.Days[0].DayNumber)
	assert.Equal(t, "Grand Palace", m.Days[0].Title)
	assert.Equal(t, "Srinagar Local Sightseeing", m.Days[1].Title)
	assert.Equal(t, "Day activities", m.Days[2].Title)
}

func TestDayDescription(t *testing.T) {
	d := models.DayItinerary{
		Activities: types.StringArray{"Shikara ride", " ", "Mughal Gardens"},
		Notes:      "Carry woollens.",
	}
	assert.Equal(t, "Shikara ride. Mughal Gardens Carry woollens.", dayDescription(d))

	assert.Equal(t, "–", dayDescription(models.DayItinerary{}))
	assert.Equal(t, "Notes only", dayDescription(models.DayItinerary{Notes: "Notes only"}))
}

func TestAggregateHotels(t *testing.T) {
	h1 := uuid.New()
	h2 := uuid.New()
	hotel1 := &models.Hotel{
		ID:        h1,
		Name:      "Grand Palace",
		City:      "Srinagar",
		State:     "J&K",
		ImageUrls: types.StringArray{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg"},
	}
	hotel2 := &models.Hotel{
		ID:          h2,
		Name:        "Deluxe Houseboat",
		Address:     "Dal Lake",
		IsHouseboat: true,
		ImageUrls:   types.StringArray{"/uploads/d.jpg", "/uploads/e.jpg"},
	}
	days := []models.DayItinerary{
		{DayNumber: 1, HotelID: &h1, Hotel: hotel1, MealPlan: types.MEAL_PLAN_MAP},
		{DayNumber: 2, HotelID: &h1, Hotel: hotel1, MealPlan: types.MEAL_PLAN_CP},
		{DayNumber: 3, HotelID: &h2, Hotel: hotel2, MealPlan: types.MEAL_PLAN_AP},
		{DayNumber: 4, HotelID: &h1, Hotel: hotel1, MealPlan: types.MEAL_PLAN_ROOM_ONLY},
		{DayNumber: 5},
	}

	hotels, cover := aggregateHotels(days, "https://api.example.com")

	assert.Len(t, hotels, 2)
	assert.Equal(t, "Grand Palace", hotels[0].Name)
	assert.Equal(t, 3, hotels[0].Nights)
	// First-seen meal plan wins over later days at the same hotel.
	assert.Equal(t, types.MEAL_PLAN_MAP.Label(), hotels[0].MealPlan)
	assert.Equal(t, "Srinagar, J&K", hotels[0].Location)

	assert.Equal(t, "Deluxe Houseboat", hotels[1].Name)
	assert.Equal(t, 1, hotels[1].Nights)
	assert.Equal(t, "Dal Lake", hotels[1].Location)
	assert.True(t, hotels[1].IsHouseboat)

	// Cover pool caps at 4, first-seen hotel order, resolved against base URL.
	assert.Equal(t, []string{
		"https://api.example.com/uploads/a.jpg",
		"https://api.example.com/uploads/b.jpg",
		"https://api.example.com/uploads/c.jpg",
		"https://api.example.com/uploads/d.jpg",
	}, cover)
}

func TestResolveImageURL(t *testing.T) {
	assert.Equal(t, "https://api.example.com/uploads/x.jpg", resolveImageURL("/uploads/x.jpg", "https://api.example.com/"))
	assert.Equal(t, "https://cdn.example.com/x.jpg", resolveImageURL("https://cdn.example.com/x.jpg", "https://api.example.com"))
}
