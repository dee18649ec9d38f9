package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/config"
	"github.com/scribeapp/scribe/middleware"
	"github.com/scribeapp/scribe/models"
	"github.com/scribeapp/scribe/services"
	"github.com/scribeapp/scribe/utils"
)

// AuthController handles registration, login and session endpoints.
type AuthController struct {
	db    *gorm.DB
	users *services.UserService
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db, users: services.NewUserService()}
}

// Register creates a new account. Accounts start inactive and without
// privileges regardless of what the client sends.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40002, "invalid request payload")
		return
	}

	session := middleware.Session(ctx, a.db)
	user, err := a.users.Create(session, services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(ctx, err, 50002, "failed to create user")
		return
	}

	utils.Success(ctx, gin.H{"user": user})
}

// Login verifies credentials and issues a JWT.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}

	session := middleware.Session(ctx, a.db)
	var user models.User
	if err := session.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "invalid email or password")
		return
	}

	ok, err := a.users.VerifyUserPassword(&user, req.Password)
	if err != nil {
		utils.Fail(ctx, err, 50003, "failed to verify password")
		return
	}
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "invalid email or password")
		return
	}

	ttl := time.Duration(config.Get().TokenTTLMinutes) * time.Minute
	token, err := utils.GenerateToken(user.ID, ttl)
	if err != nil {
		utils.Fail(ctx, err, 50004, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{"token": token, "user": user})
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusUnauthorized, 40102, "invalid authorization header")
		return
	}

	token := strings.TrimSpace(parts[1])
	claims, err := utils.ParseToken(token)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	expiresAt := time.Now().Add(time.Duration(config.Get().TokenTTLMinutes) * time.Minute)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	utils.BlacklistToken(token, expiresAt)
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated user.
func (a *AuthController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "authentication required")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}
