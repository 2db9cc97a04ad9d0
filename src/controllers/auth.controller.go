package controllers

import (
	"errors"
	"log"
	"net/http"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/types"
	"tpw/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	conn := db.GetDb()
	var user models.User
	if err = conn.
		Model(&models.User{}).
		Where("email = ?", body.Email).
		First(&user).
		Error; err != nil {
		log.Printf("error: %s\n", err.Error())
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}
	if !user.IsActive || !utils.CheckPassword(user.PasswordHash, body.Password) {
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}

	jwt, err := utils.GenerateJWT(&user)
	if err != nil {
		log.Printf("Error signing token for user [%s]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, errors.New("could not sign token")
	}
	return &jwt, http.StatusOK, nil
}

func AuthRegister(ctx *gin.Context) (id *string, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	tenantId, err := uuid.Parse(body.TenantID)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	conn := db.GetDb()
	var newUser models.User
	err = conn.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.User{}).
			Where("email = ?", body.Email).
			Count(&count).
			Error; err != nil {
			return errors.New("could not complete transaction")
		}
		if count > 0 {
			return errors.New("user is already registered in the system. Please proceed to Log In")
		}

		var tenant models.Tenant
		if err := tx.Where("id = ?", tenantId).First(&tenant).Error; err != nil {
			return errors.New("tenant not found")
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			return err
		}
		newUser = models.User{
			Email:        body.Email,
			PasswordHash: hash,
			Name:         body.Name,
			TenantID:     tenant.ID,
			Role:         types.ROLE_AGENT,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			log.Printf("Error creating user: %s\n", err.Error())
			return errors.New("error creating user")
		}
		return nil
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	uid := newUser.ID.String()
	return &uid, http.StatusOK, nil
}
