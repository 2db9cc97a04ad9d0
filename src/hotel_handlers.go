package main

import (
	"log"
	"net/http"
	"time"
	"tpw/src/common"
	"tpw/src/config"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"
	"tpw/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func hotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/hotels", func(ctx *gin.Context) {
			var query types.PaginationQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			tx := conn.Model(&models.Hotel{}).Scopes(scopes.WithTenant(tenantId))
			if query.SearchTerm != "" {
				term := "%" + query.SearchTerm + "%"
				tx = tx.Where("name ILIKE ? OR city ILIKE ?", term, term)
			}
			var total int64
			if err := tx.Count(&total).Error; err != nil {
				respondError(ctx, err)
				return
			}
			var hotels []models.Hotel
			if err := tx.
				Scopes(scopes.Paginated(query.PageNumber, query.PageSize)).
				Preload("Rates").
				Order("name asc").
				Find(&hotels).Error; err != nil {
				log.Printf("Error retrieving Hotels: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotels, "total": total})
		}).
		GET("/hotels/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			var hotel models.Hotel
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Preload("Rates").
				First(&hotel).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		}).
		POST("/hotels", func(ctx *gin.Context) {
			var body types.CreateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			rates, err := accommodationRates(tenantId, body.Rates)
			if err != nil {
				respondError(ctx, err)
				return
			}
			hotel := models.Hotel{
				TenantID:     tenantId,
				Name:         body.Name,
				Address:      body.Address,
				City:         body.City,
				State:        body.State,
				Pincode:      body.Pincode,
				PhoneNumber:  body.PhoneNumber,
				Email:        body.Email,
				StarRating:   body.StarRating,
				IsHouseboat:  body.IsHouseboat,
				Amenities:    body.Amenities,
				ImageUrls:    body.ImageUrls,
				Description:  body.Description,
				CheckInTime:  body.CheckInTime,
				CheckOutTime: body.CheckOutTime,
				Rates:        rates,
			}
			conn := db.GetDb()
			if err := conn.Create(&hotel).Error; err != nil {
				log.Printf("error creating hotel: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": hotel.ID})
		}).
		PUT("/hotels/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			rates, err := accommodationRates(tenantId, body.Rates)
			if err != nil {
				respondError(ctx, err)
				return
			}
			conn := db.GetDb()
			err = conn.Transaction(func(tx *gorm.DB) error {
				var hotel models.Hotel
				if err := tx.Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).First(&hotel).Error; err != nil {
					return err
				}
				hotel.Name = body.Name
				hotel.Address = body.Address
				hotel.City = body.City
				hotel.State = body.State
				hotel.Pincode = body.Pincode
				hotel.PhoneNumber = body.PhoneNumber
				hotel.Email = body.Email
				hotel.StarRating = body.StarRating
				hotel.IsHouseboat = body.IsHouseboat
				hotel.Amenities = body.Amenities
				hotel.Description = body.Description
				hotel.CheckInTime = body.CheckInTime
				hotel.CheckOutTime = body.CheckOutTime
				if body.ImageUrls != nil {
					hotel.ImageUrls = body.ImageUrls
				}
				if err := tx.Save(&hotel).Error; err != nil {
					return err
				}
				// Rates follow the same replace-all lifecycle as itinerary days.
				if err := tx.Unscoped().Where("hotel_id = ?", hotel.ID).Delete(&models.AccommodationRate{}).Error; err != nil {
					return err
				}
				for i := range rates {
					rates[i].HotelID = hotel.ID
				}
				if len(rates) > 0 {
					if err := tx.Create(&rates).Error; err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		DELETE("/hotels/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Delete(&models.Hotel{}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/hotels/:id/images", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			file, err := ctx.FormFile("file")
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			var hotel models.Hotel
			if err := conn.Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).First(&hotel).Error; err != nil {
				respondError(ctx, err)
				return
			}
			url, err := utils.SaveHotelImage(tenantId, hotel.ID, file)
			if err != nil {
				log.Printf("error saving hotel image: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			hotel.ImageUrls = append(hotel.ImageUrls, url)
			if err := conn.Model(&hotel).Update("image_urls", hotel.ImageUrls).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"url": url})
		})
	return g
}

func accommodationRates(tenantId uuid.UUID, rates []types.RateRequestBody) ([]models.AccommodationRate, error) {
	rows := make([]models.AccommodationRate, 0, len(rates))
	for _, r := range rates {
		fromDate, err := time.Parse(config.DATE_PARSE_FORMAT, r.FromDate)
		if err != nil {
			return nil, common.NewValidationError("invalid from_date %q", r.FromDate)
		}
		toDate, err := time.Parse(config.DATE_PARSE_FORMAT, r.ToDate)
		if err != nil {
			return nil, common.NewValidationError("invalid to_date %q", r.ToDate)
		}
		mealPlan := r.MealPlan
		if mealPlan == "" {
			mealPlan = types.MEAL_PLAN_MAP
		}
		rows = append(rows, models.AccommodationRate{
			TenantID:             tenantId,
			FromDate:             fromDate,
			ToDate:               toDate,
			RoomCategory:         r.RoomCategory,
			MealPlan:             mealPlan,
			CostPrice:            r.CostPrice,
			SellingPrice:         r.SellingPrice,
			ExtraBedCostPrice:    r.ExtraBedCostPrice,
			ExtraBedSellingPrice: r.ExtraBedSellingPrice,
			CnbCostPrice:         r.CnbCostPrice,
			CnbSellingPrice:      r.CnbSellingPrice,
		})
	}
	return rows, nil
}
