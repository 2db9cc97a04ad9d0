package main

import (
	"fmt"
	"log"
	"net/http"
	"time"
	"tpw/src/config"
	"tpw/src/db"
	"tpw/src/lib"
	"tpw/src/middlewares"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"
	"tpw/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func planHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/plans", func(ctx *gin.Context) {
		var plans []models.Plan
		conn := db.GetDb()
		if err := conn.Where("is_active = ?", true).Order("price_per_seat asc").Find(&plans).Error; err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": plans})
	})
	return g
}

func tenantHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	admin := g.Group("/admin", middlewares.RequireRole(types.ROLE_SUPERADMIN))
	admin.
		GET("/tenants", func(ctx *gin.Context) {
			var query types.PaginationQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			tx := conn.Model(&models.Tenant{})
			if query.SearchTerm != "" {
				term := "%" + query.SearchTerm + "%"
				tx = tx.Where("name ILIKE ? OR code ILIKE ?", term, term)
			}
			var total int64
			if err := tx.Count(&total).Error; err != nil {
				respondError(ctx, err)
				return
			}
			var tenants []models.Tenant
			if err := tx.
				Scopes(scopes.Paginated(query.PageNumber, query.PageSize)).
				Preload("Plan").
				Order("created_at desc").
				Find(&tenants).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": tenants, "total": total})
		}).
		POST("/tenants", func(ctx *gin.Context) {
			var body types.CreateTenantRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			code := body.Code
			if code == "" {
				code = slug.Make(body.Name)
			}
			tenant := models.Tenant{
				Name:          body.Name,
				Code:          code,
				Email:         body.Email,
				Phone:         body.Phone,
				Address:       body.Address,
				ContactPerson: body.ContactPerson,
				IsActive:      true,
			}
			conn := db.GetDb()
			if err := conn.Create(&tenant).Error; err != nil {
				log.Printf("error creating tenant: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": tenant.ID})
		}).
		PUT("/tenants/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateTenantRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			if err := conn.Model(&models.Tenant{}).
				Scopes(scopes.WithID(params.ID)).
				Updates(map[string]any{
					"name":           body.Name,
					"email":          body.Email,
					"phone":          body.Phone,
					"address":        body.Address,
					"contact_person": body.ContactPerson,
				}).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		DELETE("/tenants/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			if err := conn.Scopes(scopes.WithID(params.ID)).Delete(&models.Tenant{}).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		PUT("/tenants/:id/subscription", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateTenantSubscriptionRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := map[string]any{}
			if body.PlanID != nil {
				updates["plan_id"] = body.PlanID
			}
			if body.BillingCycle != "" {
				updates["billing_cycle"] = body.BillingCycle
			}
			if body.SeatsPurchased > 0 {
				updates["seats_purchased"] = body.SeatsPurchased
			}
			if body.Status != "" {
				updates["subscription_status"] = body.Status
			}
			if body.StartDate != "" {
				start, err := time.Parse(config.DATE_PARSE_FORMAT, body.StartDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
					return
				}
				updates["subscription_start_utc"] = start
			}
			if body.EndDate != "" {
				end, err := time.Parse(config.DATE_PARSE_FORMAT, body.EndDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
					return
				}
				updates["subscription_end_utc"] = end
			}
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
				return
			}
			conn := db.GetDb()
			if err := conn.Model(&models.Tenant{}).
				Scopes(scopes.WithID(params.ID)).
				Updates(updates).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		POST("/tenants/:id/logo", func(ctx *gin.Context) {
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
			conn := db.GetDb()
			var tenant models.Tenant
			if err := conn.Scopes(scopes.WithID(params.ID)).First(&tenant).Error; err != nil {
				respondError(ctx, err)
				return
			}
			url, err := utils.SaveTenantFile(tenant.ID, "logo", file)
			if err != nil {
				log.Printf("error saving tenant logo: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			if err := conn.Model(&tenant).Update("logo_url", url).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"url": url})
		}).
		POST("/tenants/:id/users", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateTenantUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			conn := db.GetDb()
			var user models.User
			var tenant models.Tenant
			err := conn.Transaction(func(tx *gorm.DB) error {
				if err := tx.Scopes(scopes.WithID(params.ID)).First(&tenant).Error; err != nil {
					return err
				}
				hash, err := utils.HashPassword(body.Password)
				if err != nil {
					return err
				}
				role := body.Role
				if role == "" {
					role = types.ROLE_AGENT
				}
				department := body.Department
				if department == "" {
					department = types.DEPARTMENT_GENERAL
				}
				user = models.User{
					TenantID:     tenant.ID,
					Email:        body.Email,
					PasswordHash: hash,
					Name:         body.Name,
					Role:         role,
					Department:   department,
				}
				return tx.Create(&user).Error
			})
			if err != nil {
				respondError(ctx, err)
				return
			}
			// Credentials mail is best-effort; the account exists either way.
			go func(email, name, agency, password string) {
				err := lib.SendMail(&lib.SendMailInput{
					From:     tenant.Email,
					FromName: agency,
					To:       []string{email},
					Subject:  fmt.Sprintf("Your %s account", agency),
					Body:     fmt.Sprintf("Hello %s,\n\nYour account is ready.\nLogin: %s\nPassword: %s\n", name, email, password),
				})
				if err != nil {
					log.Printf("[mail] credentials mail to %s failed: %s\n", email, err.Error())
				}
			}(body.Email, body.Name, tenant.Name, body.Password)
			ctx.JSON(http.StatusCreated, gin.H{"id": user.ID})
		})
	return g
}
