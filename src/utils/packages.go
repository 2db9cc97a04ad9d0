package utils

import (
	"log"
	"time"
	"tpw/src/common"
	"tpw/src/config"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// checkTenantRefs verifies every referenced entity belongs to the caller's
// tenant. A reference outside the tenant is a validation error, not a 404.
func checkTenantRefs(tx *gorm.DB, tenantID uuid.UUID, params *types.CreatePackageRequestBody) error {
	if params.LeadID != nil {
		var count int64
		if err := tx.Model(&models.Lead{}).Scopes(scopes.WithTenant(tenantID), scopes.WithID(*params.LeadID)).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return common.NewValidationError("lead %s not found in tenant", params.LeadID)
		}
	}
	if params.VehicleID != nil {
		var count int64
		if err := tx.Model(&models.Vehicle{}).Scopes(scopes.WithTenant(tenantID), scopes.WithID(*params.VehicleID)).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return common.NewValidationError("vehicle %s not found in tenant", params.VehicleID)
		}
	}
	hotelIds := []uuid.UUID{}
	templateIds := []uuid.UUID{}
	for _, d := range params.DayWiseItinerary {
		if d.HotelID != nil {
			hotelIds = append(hotelIds, *d.HotelID)
		}
		if d.ItineraryTemplateID != nil {
			templateIds = append(templateIds, *d.ItineraryTemplateID)
		}
	}
	if len(hotelIds) > 0 {
		var count int64
		if err := tx.Model(&models.Hotel{}).Scopes(scopes.WithTenant(tenantID)).Where("id IN ?", hotelIds).Distinct("id").Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(distinct(hotelIds)) {
			return common.NewValidationError("one or more hotels not found in tenant")
		}
	}
	if len(templateIds) > 0 {
		var count int64
		if err := tx.Model(&models.ItineraryTemplate{}).Scopes(scopes.WithTenant(tenantID)).Where("id IN ?", templateIds).Distinct("id").Count(&count).Error; err != nil {
			return err
		}
		if int(count) != len(distinct(templateIds)) {
			return common.NewValidationError("one or more itinerary templates not found in tenant")
		}
	}
	return nil
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{}
	out := []uuid.UUID{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func buildItineraryRows(tenantID uuid.UUID, days []types.CreateDayItineraryRequestBody) ([]models.DayItinerary, error) {
	rows := make([]models.DayItinerary, 0, len(days))
	for _, d := range days {
		date, err := time.Parse(config.DATE_PARSE_FORMAT, d.Date)
		if err != nil {
			return nil, common.NewValidationError("invalid itinerary date %q", d.Date)
		}
		mealPlan := d.MealPlan
		if mealPlan == "" {
			mealPlan = types.MEAL_PLAN_MAP
		}
		rows = append(rows, models.DayItinerary{
			TenantID:            tenantID,
			DayNumber:           d.DayNumber,
			Date:                date,
			HotelID:             d.HotelID,
			RoomType:            d.RoomType,
			NumberOfRooms:       d.NumberOfRooms,
			CheckInTime:         d.CheckInTime,
			CheckOutTime:        d.CheckOutTime,
			MealPlan:            mealPlan,
			ExtraBedCount:       d.ExtraBedCount,
			CnbCount:            d.CnbCount,
			Activities:          d.Activities,
			Meals:               d.Meals,
			Notes:               d.Notes,
			ItineraryTemplateID: d.ItineraryTemplateID,
			HotelCost:           d.HotelCost,
		})
	}
	return rows, nil
}

// CreateNewPackage persists a package with its day-wise itinerary in one
// transaction. A package created from a lead starts with the lead's current
// status.
func CreateNewPackage(params *types.CreatePackageRequestBody, tenantID uuid.UUID, createdBy string) (*models.TourPackage, error) {
	startDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.StartDate)
	if err != nil {
		return nil, common.NewValidationError("invalid start_date %q", params.StartDate)
	}
	endDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.EndDate)
	if err != nil {
		return nil, common.NewValidationError("invalid end_date %q", params.EndDate)
	}
	numberOfDays := int(endDate.Sub(startDate).Hours()/24) + 1
	if len(params.DayWiseItinerary) > numberOfDays {
		numberOfDays = len(params.DayWiseItinerary)
	}

	pkg := models.TourPackage{
		TenantID:             tenantID,
		LeadID:               params.LeadID,
		ClientName:           params.ClientName,
		ClientPhone:          params.ClientPhone,
		ClientEmail:          params.ClientEmail,
		ClientCity:           params.ClientCity,
		ClientState:          params.ClientState,
		ClientPickupLocation: params.ClientPickupLocation,
		ClientDropLocation:   params.ClientDropLocation,
		PackageName:          params.PackageName,
		StartDate:            startDate,
		EndDate:              endDate,
		NumberOfDays:         numberOfDays,
		NumberOfAdults:       params.NumberOfAdults,
		NumberOfChildren:     params.NumberOfChildren,
		VehicleID:            params.VehicleID,
		Status:               types.PACKAGE_NEW,
		InclusionIds:         params.InclusionIds,
		CreatedBy:            createdBy,
	}

	conn := db.GetDb()
	err = conn.Transaction(func(tx *gorm.DB) error {
		if err := checkTenantRefs(tx, tenantID, params); err != nil {
			return err
		}
		if params.LeadID != nil {
			var lead models.Lead
			if err := tx.Scopes(scopes.WithTenant(tenantID), scopes.WithID(*params.LeadID)).First(&lead).Error; err != nil {
				return err
			}
			pkg.Status = types.PackageStatus(lead.Status)
		}
		rows, err := buildItineraryRows(tenantID, params.DayWiseItinerary)
		if err != nil {
			return err
		}
		pkg.DayWiseItinerary = rows
		if err := tx.Create(&pkg).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[packages] created %s for tenant %s\n", pkg.ID, tenantID)
	return &pkg, nil
}

// UpdatePackage applies a full edit: scalar fields, a complete itinerary
// replace (delete-all then re-insert, no diffing), recomputed derived
// amounts, and the status fan-out when a linked lead is present.
func UpdatePackage(id uuid.UUID, params *types.UpdatePackageRequestBody, tenantID uuid.UUID, updatedBy string) (*models.TourPackage, error) {
	startDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.StartDate)
	if err != nil {
		return nil, common.NewValidationError("invalid start_date %q", params.StartDate)
	}
	endDate, err := time.Parse(config.DATE_PARSE_FORMAT, params.EndDate)
	if err != nil {
		return nil, common.NewValidationError("invalid end_date %q", params.EndDate)
	}
	numberOfDays := int(endDate.Sub(startDate).Hours()/24) + 1
	if len(params.DayWiseItinerary) > numberOfDays {
		numberOfDays = len(params.DayWiseItinerary)
	}

	var pkg models.TourPackage
	conn := db.GetDb()
	err = conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopes.WithTenant(tenantID), scopes.WithID(id)).First(&pkg).Error; err != nil {
			return err
		}
		if err := checkTenantRefs(tx, tenantID, &params.CreatePackageRequestBody); err != nil {
			return err
		}

		pkg.LeadID = params.LeadID
		pkg.ClientName = params.ClientName
		pkg.ClientPhone = params.ClientPhone
		pkg.ClientEmail = params.ClientEmail
		pkg.ClientCity = params.ClientCity
		pkg.ClientState = params.ClientState
		pkg.ClientPickupLocation = params.ClientPickupLocation
		pkg.ClientDropLocation = params.ClientDropLocation
		pkg.PackageName = params.PackageName
		pkg.StartDate = startDate
		pkg.EndDate = endDate
		pkg.NumberOfDays = numberOfDays
		pkg.NumberOfAdults = params.NumberOfAdults
		pkg.NumberOfChildren = params.NumberOfChildren
		pkg.VehicleID = params.VehicleID
		pkg.InclusionIds = params.InclusionIds
		pkg.TotalAmount = params.TotalAmount
		pkg.Discount = params.Discount
		pkg.AdvanceAmount = params.AdvanceAmount
		pkg.BalanceAmount = common.PersistedBalance(params.TotalAmount, params.Discount, params.AdvanceAmount)

		statusChanged := false
		if params.Status != "" {
			newStatus := types.ParsePackageStatus(params.Status)
			statusChanged = newStatus != pkg.Status
			pkg.Status = newStatus
		}

		// Full itinerary replace, no stable identity across edits.
		if err := tx.Unscoped().Where("package_id = ?", pkg.ID).Delete(&models.DayItinerary{}).Error; err != nil {
			return err
		}
		rows, err := buildItineraryRows(tenantID, params.DayWiseItinerary)
		if err != nil {
			return err
		}
		for i := range rows {
			rows[i].PackageID = pkg.ID
		}
		pkg.DayWiseItinerary = nil
		if err := tx.Save(&pkg).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		pkg.DayWiseItinerary = rows

		if statusChanged && pkg.LeadID != nil {
			return common.SyncLeadStatus(tx, tenantID, *pkg.LeadID, types.LeadStatus(pkg.Status), "", updatedBy)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// GetTenantPackage loads a package with its full render graph: itinerary
// days ordered by day number plus their hotels and templates.
func GetTenantPackage(id, tenantID uuid.UUID) (*models.TourPackage, error) {
	var pkg models.TourPackage
	conn := db.GetDb()
	err := conn.
		Scopes(scopes.WithTenant(tenantID), scopes.WithID(id)).
		Preload("DayWiseItinerary", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("DayWiseItinerary.Hotel").
		Preload("DayWiseItinerary.ItineraryTemplate").
		First(&pkg).
		Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}
