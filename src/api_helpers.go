package main

import (
	"errors"
	"log"
	"net/http"
	"tpw/src/common"
	"tpw/src/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func requestTenant(ctx *gin.Context) uuid.UUID {
	tenantId, _ := uuid.Parse(ctx.GetString("tenant_id"))
	return tenantId
}

// respondError maps the error taxonomy to response codes: validation 400,
// not-found 404, render failures and everything else 500. Render causes are
// logged fully but only exposed to the caller when API_DEBUG is on.
func respondError(ctx *gin.Context, err error) {
	var validation *common.ValidationError
	if errors.As(err, &validation) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var timeout *common.RenderTimeoutError
	var launch *common.BrowserLaunchError
	if errors.As(err, &timeout) || errors.As(err, &launch) {
		log.Printf("[pdf] generation failed: %s\n", err.Error())
		msg := "document generation failed"
		if config.DebugErrors() {
			msg = err.Error()
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
