package main

import (
	"log"
	"net/http"
	"time"
	"tpw/src/common"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/models/scopes"
	"tpw/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func leadHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/leads", func(ctx *gin.Context) {
			var query types.PaginationQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			tx := conn.Model(&models.Lead{}).Scopes(scopes.WithTenant(tenantId))
			if query.SearchTerm != "" {
				term := "%" + query.SearchTerm + "%"
				tx = tx.Where("client_name ILIKE ? OR phone_number ILIKE ? OR client_city ILIKE ?", term, term, term)
			}
			var total int64
			if err := tx.Count(&total).Error; err != nil {
				respondError(ctx, err)
				return
			}
			var leads []models.Lead
			if err := tx.
				Scopes(scopes.Paginated(query.PageNumber, query.PageSize)).
				Order("created_at desc").
				Find(&leads).Error; err != nil {
				log.Printf("Error retrieving Leads: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": leads, "total": total})
		}).
		GET("/leads/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			var lead models.Lead
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Preload("FollowUps", func(db *gorm.DB) *gorm.DB {
					return db.Order("follow_up_date desc")
				}).
				First(&lead).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": lead})
		}).
		POST("/leads", func(ctx *gin.Context) {
			var body types.CreateLeadRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			source := body.LeadSource
			if source == "" {
				source = types.SOURCE_OTHER
			}
			lead := models.Lead{
				TenantID:    tenantId,
				ClientName:  body.ClientName,
				PhoneNumber: body.PhoneNumber,
				ClientEmail: body.ClientEmail,
				ClientState: body.ClientState,
				ClientCity:  body.ClientCity,
				Address:     body.Address,
				LeadSource:  source,
				Status:      types.LEAD_NEW,
				Notes:       body.Notes,
				CreatedBy:   ctx.GetString("email"),
			}
			conn := db.GetDb()
			if err := conn.Create(&lead).Error; err != nil {
				log.Printf("error creating lead: %s\n", err.Error())
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": lead.ID})
		}).
		PUT("/leads/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateLeadRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			err := conn.Transaction(func(tx *gorm.DB) error {
				var lead models.Lead
				if err := tx.Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).First(&lead).Error; err != nil {
					return err
				}
				source := body.LeadSource
				if source == "" {
					source = lead.LeadSource
				}
				updates := map[string]any{
					"client_name":  body.ClientName,
					"phone_number": body.PhoneNumber,
					"client_email": body.ClientEmail,
					"client_state": body.ClientState,
					"client_city":  body.ClientCity,
					"address":      body.Address,
					"lead_source":  source,
				}
				if body.AssignedToUserID != nil {
					updates["assigned_to_user_id"] = body.AssignedToUserID
				}
				if err := tx.Model(&models.Lead{}).
					Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
					Updates(updates).Error; err != nil {
					return err
				}
				// A status or notes change fans out to the follow-up trail
				// and every package of this lead.
				newStatus := lead.Status
				if body.Status != "" {
					newStatus = types.ParseLeadStatus(body.Status)
				}
				if newStatus != lead.Status || (body.Notes != "" && body.Notes != lead.Notes) {
					return common.SyncLeadStatus(tx, tenantId, lead.ID, newStatus, body.Notes, ctx.GetString("email"))
				}
				return nil
			})
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"id": params.ID})
		}).
		DELETE("/leads/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).
				Delete(&models.Lead{}).
				Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		GET("/leads/:id/follow-ups", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			var followUps []models.LeadFollowUp
			conn := db.GetDb()
			if err := conn.
				Scopes(scopes.WithTenant(tenantId)).
				Where("lead_id = ?", params.ID).
				Order("follow_up_date desc").
				Find(&followUps).Error; err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": followUps})
		}).
		POST("/leads/:id/follow-ups", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateFollowUpRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			tenantId := requestTenant(ctx)
			conn := db.GetDb()
			var followUpId string
			err := conn.Transaction(func(tx *gorm.DB) error {
				var lead models.Lead
				if err := tx.Scopes(scopes.WithTenant(tenantId), scopes.WithID(params.ID)).First(&lead).Error; err != nil {
					return err
				}
				followUp := models.LeadFollowUp{
					TenantID:     tenantId,
					LeadID:       lead.ID,
					FollowUpDate: time.Now(),
					Status:       types.ParseLeadStatus(body.Status),
					Notes:        body.Notes,
					CreatedBy:    ctx.GetString("email"),
				}
				if err := tx.Create(&followUp).Error; err != nil {
					return err
				}
				followUpId = followUp.ID.String()
				return nil
			})
			if err != nil {
				respondError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": followUpId})
		})
	return g
}
