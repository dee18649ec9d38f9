package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/middleware"
	"github.com/scribeapp/scribe/services"
	"github.com/scribeapp/scribe/utils"
)

// UserController exposes administrative user management. All routes sit
// behind the superuser gate.
type UserController struct {
	db    *gorm.DB
	users *services.UserService
}

// NewUserController creates a new UserController instance.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db, users: services.NewUserService()}
}

// ListUsers returns a page of users.
func (u *UserController) ListUsers(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)
	session := middleware.Session(ctx, u.db)

	users, err := u.users.List(session, limit, offset)
	if err != nil {
		utils.Fail(ctx, err, 50010, "failed to list users")
		return
	}
	utils.Success(ctx, gin.H{"items": users, "limit": limit, "offset": offset})
}

// GetUser returns one user by id.
func (u *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, u.db)

	user, err := u.users.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50011, "failed to get user")
		return
	}
	if user == nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// CreateUser creates a user with explicit activation and privilege flags.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var in services.CreateUserInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}
	session := middleware.Session(ctx, u.db)

	user, err := u.users.Create(session, in)
	if err != nil {
		writeError(ctx, err, 50012, "failed to create user")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// UpdateUser partially updates a user; a supplied password is re-hashed.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var in services.UpdateUserInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid request payload")
		return
	}
	session := middleware.Session(ctx, u.db)

	user, err := u.users.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50013, "failed to get user")
		return
	}
	if user == nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		return
	}

	updated, err := u.users.Update(session, user, in)
	if err != nil {
		writeError(ctx, err, 50014, "failed to update user")
		return
	}
	utils.Success(ctx, gin.H{"user": updated})
}

// DeleteUser removes a user. Posts and comments authored by the user keep
// existing with a nulled author reference.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, u.db)

	if err := u.users.Remove(session, id, nil); err != nil {
		utils.Fail(ctx, err, 50015, "failed to delete user")
		return
	}
	utils.Success(ctx, gin.H{"message": "user deleted"})
}
