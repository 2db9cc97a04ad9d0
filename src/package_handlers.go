package main

import (
	"fmt"
	"log"
	"net/http"
	"tpw/src/common"
	"tpw/src/config"
	"tpw/src/db"
	"tpw/src/lib"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"
	"tpw/src/utils"

	"github.com/gin-gonic/gin"
)

func packageHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/packages", func(ctx *gin.Context) {
			var query types.PaginationQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			tx := conn.Model(&models.TourPackage{}).Scopes(scopes.WithTenant(tenantId))
			if query.SearchTerm != "" {
				term := "%" + query.SearchTerm + "%"
				tx = tx.Where("client_name ILIKE ? OR package_name ILIKE ? OR client_phone ILIKE ?", term, term, term)
			}
			var total int64
			if err := tx.Count(&total).Error; err != nil {
				respondError(ctx, err)
				return
			}
			var packages []models.TourPackage
			if err := tx.
				Scopes(scopes.Paginated(query.PageNumber, query.PageSize)).
				Order("created_at desc").
				Find(&packages).Error; err != nil {
				log.Printf("Error retrieving Packages: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": packages, "total": total})
		}).
		GET("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			pkg, err := utils.GetTenantPackage(params.ID, tenantId)
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": pkg})
		}).
		GET("/packages/by-lead/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			var packages []models.TourPackage
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId)).
				Where("lead_id = ?", params.ID).
				Order("created_at desc").
				Find(&packages).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": packages})
		}).
		POST("/packages", func(ctx *gin.Context) {
			var body types.CreatePackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			pkg, err := utils.CreateNewPackage(&body, tenantId, ctx.GetString("email"))
			if err != nil {
				log.Printf("error creating package: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": pkg.ID})
		}).
		PUT("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdatePackageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			pkg, err := utils.UpdatePackage(params.ID, &body, tenantId, ctx.GetString("email"))
			if err != nil {
				log.Printf("error updating package: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": pkg})
		}).
		DELETE("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Select("DayWiseItinerary").
				Delete(&models.TourPackage{}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/packages/:id/pdf", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			pkg, err := utils.GetTenantPackage(params.ID, tenantId)
			if err != nil {
				respondError(ctx, err)
				return
			}
			var tenant models.Tenant
			conn := db.GetDb()
			if err := conn.Where("id = ?", tenantId).First(&tenant).Error; err != nil {
				log.Printf("[pdf] tenant lookup failed: %s\n", err.Error())
			}

			filename := utils.PackagePdfFilename(pkg.ClientName, pkg.ClientPickupLocation, pkg.ClientDropLocation, pkg.StartDate, pkg.ID)
			// Key tracks the package's own update stamp only. Hotel image or
			// tenant branding edits can serve a cached copy until the TTL
			// lapses; editing the package always busts the cache.
			cacheKey := fmt.Sprintf("pdf:%s:%d", pkg.ID, pkg.UpdatedAt.UnixNano())
			if data := lib.CachedPDF(ctx.Request.Context(), cacheKey); data != nil {
				ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
				ctx.Data(http.StatusOK, "application/pdf", data)
				return
			}

			model := common.BuildPackagePdfModel(pkg, &tenant, config.PublicBaseURL())
			data, err := common.GeneratePackagePDF(ctx.Request.Context(), model)
			if err != nil {
				respondError(ctx, err)
				return
			}
			lib.CachePDF(ctx.Request.Context(), cacheKey, data)

			ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			ctx.Data(http.StatusOK, "application/pdf", data)
		})
	return g
}
