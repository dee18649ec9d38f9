package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/models"
	"github.com/scribeapp/scribe/utils"
)

// ContextUserKey is the gin context key holding the authenticated user.
const ContextUserKey = "current_user"

// AuthRequired is the identify gate: it resolves the caller from a Bearer
// JWT, loads the subject user through the request session, and stores it in
// the context. Any failure is a 401.
func AuthRequired(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40101, "authorization header missing")
			ctx.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Error(ctx, http.StatusUnauthorized, 40102, "invalid authorization header format")
			ctx.Abort()
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			utils.Error(ctx, http.StatusUnauthorized, 40103, "empty bearer token")
			ctx.Abort()
			return
		}

		if utils.IsTokenBlacklisted(tokenString) {
			utils.Error(ctx, http.StatusUnauthorized, 40104, "token revoked")
			ctx.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
			ctx.Abort()
			return
		}

		var user models.User
		if err := Session(ctx, db).First(&user, claims.UserID).Error; err != nil {
			utils.Error(ctx, http.StatusUnauthorized, 40106, "unknown token subject")
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserKey, &user)
		ctx.Next()
	}
}

// ActiveRequired is the second gate: the identified user must be active.
// It assumes AuthRequired ran earlier in the chain and rejects otherwise.
func ActiveRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			utils.Error(ctx, http.StatusUnauthorized, 40107, "authentication required")
			ctx.Abort()
			return
		}
		if !user.IsActive {
			utils.Error(ctx, http.StatusUnauthorized, 40108, "inactive user")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// SuperuserRequired is the third gate: an active user lacking superuser
// privilege is forbidden, not unauthorized.
func SuperuserRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			utils.Error(ctx, http.StatusUnauthorized, 40107, "authentication required")
			ctx.Abort()
			return
		}
		if !user.IsActive {
			utils.Error(ctx, http.StatusUnauthorized, 40108, "inactive user")
			ctx.Abort()
			return
		}
		if !user.IsSuperuser {
			utils.Error(ctx, http.StatusForbidden, 40301, "superuser is required")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	v, ok := ctx.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
