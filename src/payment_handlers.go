package main

import (
	"net/http"
	"time"
	"tpw/src/common"
	"tpw/src/config"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"

	"github.com/gin-gonic/gin"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/payments", func(ctx *gin.Context) {
			var query types.PaginationQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			tx := conn.Model(&models.Payment{}).Scopes(scopes.WithTenant(tenantId))
			var total int64
			if err := tx.Count(&total).Error; err != nil {
				respondError(ctx, err)
				return
			}
			var payments []models.Payment
			if err := tx.
				Scopes(scopes.Paginated(query.PageNumber, query.PageSize)).
				Order("date desc").
				Find(&payments).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payments, "total": total})
		}).
		POST("/payments", func(ctx *gin.Context) {
			var body types.CreatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			date, err := time.Parse(config.DATE_PARSE_FORMAT, body.Date)
			if err != nil {
				respondError(ctx, common.NewValidationError("invalid date %q", body.Date))
				return
			}
			tenantId := requestTenant(ctx)
			payment := models.Payment{
				TenantID:  tenantId,
				Type:      body.Type,
				Amount:    body.Amount,
				Date:      date,
				Mode:      body.Mode,
				Reference: body.Reference,
				Notes:     body.Notes,
				LeadID:    body.LeadID,
				PackageID: body.PackageID,
				CreatedBy: ctx.GetString("email"),
			}
			conn := db.GetDb()
			if err := conn.Create(&payment).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": payment.ID})
		}).
		DELETE("/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Delete(&models.Payment{}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func templateHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/itinerary-templates", func(ctx *gin.Context) {
			tenantId := requestTenant(ctx)
			var templates []models.ItineraryTemplate
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId)).
				Order("title asc").
				Find(&templates).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": templates})
		}).
		POST("/itinerary-templates", func(ctx *gin.Context) {
			var body types.CreateItineraryTemplateRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			template := models.ItineraryTemplate{
				TenantID:    tenantId,
				Title:       body.Title,
				Description: body.Description,
			}
			conn := db.GetDb()
			if err := conn.Create(&template).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": template.ID})
		}).
		PUT("/itinerary-templates/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateItineraryTemplateRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.Model(&models.ItineraryTemplate{}).
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Updates(map[string]any{"title": body.Title, "description": body.Description}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		DELETE("/itinerary-templates/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Delete(&models.ItineraryTemplate{}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

func lookupHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/lookups/inclusions", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"data": common.InclusionCatalog})
	})
	return g
}
