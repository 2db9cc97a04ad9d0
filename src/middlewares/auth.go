package middlewares

import (
	"log"
	"os"
	"strings"
	"tpw/src/db"
	"tpw/src/models"
	"tpw/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

func AuthMiddleware(ctx *gin.Context) {
	bearerToken := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(bearerToken, "Bearer") {
		ctx.AbortWithStatus(401)
		return
	}
	reqToken := strings.Split(bearerToken, " ")[1]
	if reqToken == "" {
		ctx.AbortWithStatus(401)
		return
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(reqToken, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	if err != nil {
		log.Printf("token error: %s\n", err.Error())
		ctx.AbortWithStatus(401)
		return
	}
	if !tkn.Valid {
		ctx.AbortWithStatus(401)
		return
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		log.Println("error parsing claims:", err.Error())
		ctx.AbortWithStatus(401)
		return
	}
	conn := db.GetDb()
	var user models.User
	conn.Model(&models.User{}).Where("id = ?", uid).Find(&user)
	if user.ID != uid || !user.IsActive {
		ctx.AbortWithStatus(401)
		return
	}

	ctx.Set("email", user.Email)
	ctx.Set("id", user.ID.String())
	ctx.Set("tenant_id", user.TenantID.String())
	ctx.Set("role", string(user.Role))
}

// RequireRole gates a route group to the given roles. Superadmin always
// passes.
func RequireRole(roles ...types.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		current := types.UserRole(ctx.GetString("role"))
		if current == types.ROLE_SUPERADMIN {
			return
		}
		for _, r := range roles {
			if current == r {
				return
			}
		}
		ctx.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
	}
}

// SecureHeaders sets the standard hardening headers on every response.
func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("Referrer-Policy", "no-referrer")
}
