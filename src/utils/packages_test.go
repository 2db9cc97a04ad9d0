package utils

import (
	"errors"
	"testing"
	"tpw/src/common"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openPackagesTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.Lead{},
		&models.LeadFollowUp{},
		&models.Hotel{},
		&models.Vehicle{},
		&models.ItineraryTemplate{},
		&models.TourPackage{},
		&models.DayItinerary{},
	))
	db.NewDB(conn)
	return conn
}

func dayRequest(dayNumber int, date string, hotelID *uuid.UUID) types.CreateDayItineraryRequestBody {
	return types.CreateDayItineraryRequestBody{
		DayNumber:  dayNumber,
		Date:       date,
		HotelID:    hotelID,
		Activities: []string{"Sightseeing"},
	}
}

func createRequest(leadID *uuid.UUID, days ...types.CreateDayItineraryRequestBody) *types.CreatePackageRequestBody {
	return &types.CreatePackageRequestBody{
		LeadID:               leadID,
		ClientName:           "Arjun Mehta",
		ClientPhone:          "9876543210",
		ClientPickupLocation: "Srinagar Airport",
		ClientDropLocation:   "Srinagar Airport",
		PackageName:          "Kashmir Delight",
		StartDate:            "2026-04-10",
		EndDate:              "2026-04-12",
		NumberOfAdults:       2,
		DayWiseItinerary:     days,
	}
}

func TestCreateNewPackage(t *testing.T) {
	conn := openPackagesTestDB(t)
	tenantID := uuid.New()

	hotel := models.Hotel{TenantID: tenantID, Name: "Grand Palace"}
	require.NoError(t, conn.Create(&hotel).Error)

	params := createRequest(nil,
		dayRequest(1, "2026-04-10", &hotel.ID),
		dayRequest(2, "2026-04-11", &hotel.ID),
	)
	pkg, err := CreateNewPackage(params, tenantID, "agent@valley.example")
	require.NoError(t, err)

	assert.Equal(t, types.PACKAGE_NEW, pkg.Status)
	assert.Equal(t, 3, pkg.NumberOfDays)
	assert.Equal(t, "agent@valley.example", pkg.CreatedBy)

	var count int64
	require.NoError(t, conn.Model(&models.DayItinerary{}).Where("package_id = ?", pkg.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreateNewPackageInheritsLeadStatus(t *testing.T) {
	conn := openPackagesTestDB(t)
	tenantID := uuid.New()

	lead := models.Lead{TenantID: tenantID, ClientName: "Arjun", Status: types.LEAD_FOLLOWUP}
	require.NoError(t, conn.Create(&lead).Error)

	pkg, err := CreateNewPackage(createRequest(&lead.ID), tenantID, "agent@valley.example")
	require.NoError(t, err)
	assert.Equal(t, types.PACKAGE_FOLLOWUP, pkg.Status)
}

func TestCreateNewPackageCrossTenantRefs(t *testing.T) {
	conn := openPackagesTestDB(t)
	tenantID := uuid.New()
	otherTenant := uuid.New()

	foreignHotel := models.Hotel{TenantID: otherTenant, Name: "Elsewhere Inn"}
	require.NoError(t, conn.Create(&foreignHotel).Error)

	params := createRequest(nil, dayRequest(1, "2026-04-10", &foreignHotel.ID))
	_, err := CreateNewPackage(params, tenantID, "agent@valley.example")

	var verr *common.ValidationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &verr))
}

func TestUpdatePackageReplacesItinerary(t *testing.T) {
	conn := openPackagesTestDB(t)
	tenantID := uuid.New()

	pkg, err := CreateNewPackage(createRequest(nil,
		dayRequest(1, "2026-04-10", nil),
		dayRequest(2, "2026-04-11", nil),
	), tenantID, "agent@valley.example")
	require.NoError(t, err)

	update := &types.UpdatePackageRequestBody{
		CreatePackageRequestBody: *createRequest(nil,
			dayRequest(1, "2026-04-10", nil),
			dayRequest(2, "2026-04-11", nil),
			dayRequest(3, "2026-04-12", nil),
		),
		TotalAmount:   decimal.NewFromInt(50000),
		Discount:      decimal.NewFromInt(2000),
		AdvanceAmount: decimal.NewFromInt(10000),
	}
	updated, err := UpdatePackage(pkg.ID, update, tenantID, "agent@valley.example")
	require.NoError(t, err)

	// Exactly the submitted days survive, no orphans from the previous edit.
	var rows []models.DayItinerary
	require.NoError(t, conn.Where("package_id = ?", pkg.ID).Order("day_number").Find(&rows).Error)
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i+1, r.DayNumber)
		assert.Equal(t, pkg.ID, r.PackageID)
	}

	assert.True(t, updated.BalanceAmount.Equal(decimal.NewFromInt(38000)))
}

func TestUpdatePackageStatusFanOut(t *testing.T) {
	conn := openPackagesTestDB(t)
	tenantID := uuid.New()

	lead := models.Lead{TenantID: tenantID, ClientName: "Arjun", Status: types.LEAD_FOLLOWUP}
	require.NoError(t, conn.Create(&lead).Error)

	pkg, err := CreateNewPackage(createRequest(&lead.ID), tenantID, "agent@valley.example")
	require.NoError(t, err)
	sibling, err := CreateNewPackage(createRequest(&lead.ID), tenantID, "agent@valley.example")
	require.NoError(t, err)

	update := &types.UpdatePackageRequestBody{
		CreatePackageRequestBody: *createRequest(&lead.ID),
		Status:                   "TripConfirmed",
	}
	_, err = UpdatePackage(pkg.ID, update, tenantID, "agent@valley.example")
	require.NoError(t, err)

	var gotLead models.Lead
	require.NoError(t, conn.First(&gotLead, "id = ?", lead.ID).Error)
	assert.Equal(t, types.LEAD_TRIP_CONFIRMED, gotLead.Status)

	var gotSibling models.TourPackage
	require.NoError(t, conn.First(&gotSibling, "id = ?", sibling.ID).Error)
	assert.Equal(t, types.PACKAGE_TRIP_CONFIRMED, gotSibling.Status)

	var followUps int64
	require.NoError(t, conn.Model(&models.LeadFollowUp{}).Where("lead_id = ?", lead.ID).Count(&followUps).Error)
	assert.EqualValues(t, 1, followUps)
}

func TestUpdatePackageLegacyStatusRemaps(t *testing.T) {
	openPackagesTestDB(t)
	tenantID := uuid.New()

	pkg, err := CreateNewPackage(createRequest(nil), tenantID, "agent@valley.example")
	require.NoError(t, err)

	update := &types.UpdatePackageRequestBody{
		CreatePackageRequestBody: *createRequest(nil),
		Status:                   "Quoted",
	}
	updated, err := UpdatePackage(pkg.ID, update, tenantID, "agent@valley.example")
	require.NoError(t, err)
	assert.Equal(t, types.PACKAGE_PACKAGE_SENT, updated.Status)
}

func TestGetTenantPackageWrongTenant(t *testing.T) {
	openPackagesTestDB(t)
	tenantID := uuid.New()

	pkg, err := CreateNewPackage(createRequest(nil), tenantID, "agent@valley.example")
	require.NoError(t, err)

	_, err = GetTenantPackage(pkg.ID, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
