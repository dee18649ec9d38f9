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

// TagController manages CRUD operations for tags.
type TagController struct {
	db   *gorm.DB
	tags *services.Service[models.Tag]
}

// NewTagController creates a new TagController instance.
func NewTagController(db *gorm.DB) *TagController {
	return &TagController{db: db, tags: services.New[models.Tag]()}
}

// ListTags returns a page of tags.
func (t *TagController) ListTags(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)
	session := middleware.Session(ctx, t.db)

	tags, err := t.tags.List(session, limit, offset)
	if err != nil {
		utils.Fail(ctx, err, 50040, "failed to list tags")
		return
	}
	utils.Success(ctx, gin.H{"items": tags, "limit": limit, "offset": offset})
}

// GetTag returns one tag by id.
func (t *TagController) GetTag(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, t.db)

	tag, err := t.tags.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50041, "failed to get tag")
		return
	}
	if tag == nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "tag not found")
		return
	}
	utils.Success(ctx, gin.H{"tag": tag})
}

// CreateTag creates a tag.
func (t *TagController) CreateTag(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,min=1,max=20"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}
	session := middleware.Session(ctx, t.db)

	tag, err := t.tags.Create(session, &models.Tag{Name: req.Name})
	if err != nil {
		writeError(ctx, err, 50042, "failed to create tag")
		return
	}
	utils.Success(ctx, gin.H{"tag": tag})
}

// BulkCreateTags creates several tags in one batch insert.
func (t *TagController) BulkCreateTags(ctx *gin.Context) {
	var req struct {
		Names []string `json:"names" binding:"required,min=1,dive,min=1,max=20"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40041, "invalid request payload")
		return
	}
	session := middleware.Session(ctx, t.db)

	names := utils.Unique(req.Names)
	tags := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, &models.Tag{Name: name})
	}

	created, err := t.tags.BulkCreate(session, tags)
	if err != nil {
		writeError(ctx, err, 50043, "failed to create tags")
		return
	}
	utils.Success(ctx, gin.H{"items": created})
}

// UpdateTag renames a tag.
func (t *TagController) UpdateTag(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var in services.UpdateTagInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40042, "invalid request payload")
		return
	}
	session := middleware.Session(ctx, t.db)

	tag, err := t.tags.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50044, "failed to get tag")
		return
	}
	if tag == nil {
		utils.Error(ctx, http.StatusNotFound, 40440, "tag not found")
		return
	}

	updated, err := t.tags.Update(session, tag, in)
	if err != nil {
		writeError(ctx, err, 50045, "failed to update tag")
		return
	}
	utils.Success(ctx, gin.H{"tag": updated})
}

// DeleteTag removes a tag and its post associations.
func (t *TagController) DeleteTag(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, t.db)

	if err := t.tags.Remove(session, id, nil); err != nil {
		utils.Fail(ctx, err, 50046, "failed to delete tag")
		return
	}
	utils.Success(ctx, gin.H{"message": "tag deleted"})
}
