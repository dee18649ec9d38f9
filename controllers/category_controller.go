package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/middleware"
	"github.com/scribeapp/scribe/models"
	"github.com/scribeapp/scribe/services"
	"github.com/scribeapp/scribe/utils"
)

// CategoryController manages CRUD operations for categories.
type CategoryController struct {
	db         *gorm.DB
	categories *services.Service[models.Category]
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{db: db, categories: services.New[models.Category]()}
}

// ListCategories returns a page of categories.
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)
	session := middleware.Session(ctx, c.db)

	categories, err := c.categories.List(session, limit, offset)
	if err != nil {
		utils.Fail(ctx, err, 50030, "failed to list categories")
		return
	}
	utils.Success(ctx, gin.H{"items": categories, "limit": limit, "offset": offset})
}

// GetCategory returns one category by id.
func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, c.db)

	category, err := c.categories.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50031, "failed to get category")
		return
	}
	if category == nil {
		utils.Error(ctx, http.StatusNotFound, 40430, "category not found")
		return
	}
	utils.Success(ctx, gin.H{"category": category})
}

// CreateCategory creates a category.
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,min=1,max=20"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}
	session := middleware.Session(ctx, c.db)

	category, err := c.categories.Create(session, &models.Category{Name: req.Name})
	if err != nil {
		writeError(ctx, err, 50032, "failed to create category")
		return
	}
	utils.Success(ctx, gin.H{"category": category})
}

// UpdateCategory renames a category.
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var in services.UpdateCategoryInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40031, "invalid request payload")
		return
	}
	session := middleware.Session(ctx, c.db)

	category, err := c.categories.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50033, "failed to get category")
		return
	}
	if category == nil {
		utils.Error(ctx, http.StatusNotFound, 40430, "category not found")
		return
	}

	updated, err := c.categories.Update(session, category, in)
	if err != nil {
		writeError(ctx, err, 50034, "failed to update category")
		return
	}
	utils.Success(ctx, gin.H{"category": updated})
}

// DeleteCategory removes a category; referencing posts keep existing with a
// nulled category reference.
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, c.db)

	if err := c.categories.Remove(session, id, nil); err != nil {
		utils.Fail(ctx, err, 50035, "failed to delete category")
		return
	}
	utils.Success(ctx, gin.H{"message": "category deleted"})
}
