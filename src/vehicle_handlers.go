package main

import (
	"log"
	"net/http"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"

	"github.com/gin-gonic/gin"
)

func vehicleHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/vehicles", func(ctx *gin.Context) {
			tenantId := requestTenant(ctx)
			var vehicles []models.Vehicle
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId)).
				Preload("TransportCompany").
				Order("created_at desc").
				Find(&vehicles).Error; err != nil {
				log.Printf("Error retrieving Vehicles: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": vehicles})
		}).
		GET("/vehicles/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			var vehicle models.Vehicle
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Preload("TransportCompany").
				First(&vehicle).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": vehicle})
		}).
		POST("/vehicles", func(ctx *gin.Context) {
			var body types.CreateVehicleRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			rateType := body.RateType
			if rateType == "" {
				rateType = types.RATE_PER_DAY
			}
			vehicle := models.Vehicle{
				TenantID:           tenantId,
				VehicleType:        body.VehicleType,
				VehicleModel:       body.VehicleModel,
				RegistrationNumber: body.RegistrationNumber,
				SeatingCapacity:    body.SeatingCapacity,
				TransportCompanyID: body.TransportCompanyID,
				RateType:           rateType,
				RateAmount:         body.RateAmount,
			}
			conn := db.GetDb()
			if err := conn.Create(&vehicle).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": vehicle.ID})
		}).
		PUT("/vehicles/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateVehicleRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			result := conn.Model(&models.Vehicle{}).
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Updates(map[string]any{
					"vehicle_type":         body.VehicleType,
					"vehicle_model":        body.VehicleModel,
					"registration_number":  body.RegistrationNumber,
					"seating_capacity":     body.SeatingCapacity,
					"transport_company_id": body.TransportCompanyID,
					"rate_type":            body.RateType,
					"rate_amount":          body.RateAmount,
				})
			if result.Error != nil {
				respondError(ctx, result.Error)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		DELETE("/vehicles/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Delete(&models.Vehicle{}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/transport-companies", func(ctx *gin.Context) {
			tenantId := requestTenant(ctx)
			var companies []models.TransportCompany
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId)).
				Preload("Vehicles").
				Order("name asc").
				Find(&companies).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": companies})
		}).
		POST("/transport-companies", func(ctx *gin.Context) {
			var body types.CreateTransportCompanyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			company := models.TransportCompany{
				TenantID:      tenantId,
				Name:          body.Name,
				ContactPerson: body.ContactPerson,
				PhoneNumber:   body.PhoneNumber,
				Email:         body.Email,
				Address:       body.Address,
			}
			conn := db.GetDb()
			if err := conn.Create(&company).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": company.ID})
		}).
		PUT("/transport-companies/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateTransportCompanyRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.Model(&models.TransportCompany{}).
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Updates(map[string]any{
					"name":           body.Name,
					"contact_person": body.ContactPerson,
					"phone_number":   body.PhoneNumber,
					"email":          body.Email,
					"address":        body.Address,
				}).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		DELETE("/transport-companies/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Delete(&models.TransportCompany{}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
