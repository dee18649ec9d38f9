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

// PostController manages CRUD operations for posts.
type PostController struct {
	db    *gorm.DB
	posts *services.Service[models.Post]
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db, posts: services.New[models.Post]()}
}

// ListPosts returns a page of posts with author and category populated.
func (p *PostController) ListPosts(ctx *gin.Context) {
	limit, offset := parsePagination(ctx)
	session := middleware.Session(ctx, p.db).Preload("Author").Preload("Category").Preload("Tags")

	posts, err := p.posts.List(session, limit, offset)
	if err != nil {
		utils.Fail(ctx, err, 50020, "failed to list posts")
		return
	}
	utils.Success(ctx, gin.H{"items": posts, "limit": limit, "offset": offset})
}

// GetPost returns one post by id.
func (p *PostController) GetPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, p.db).Preload("Author").Preload("Category").Preload("Tags")

	post, err := p.posts.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50021, "failed to get post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}
	// the counter is bumped by route middleware after the response goes out,
	// so the reported count does not include the current read
	utils.Success(ctx, gin.H{"post": post, "views": utils.PostViewCount(id)})
}

// CreatePost creates a post authored by the current user.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Title            string `json:"title" binding:"required,min=1,max=255"`
		ShortDescription string `json:"short_description" binding:"max=255"`
		Content          string `json:"content"`
		CategoryID       *uint  `json:"category_id"`
		TagIDs           []uint `json:"tag_ids"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "authentication required")
		return
	}

	session := middleware.Session(ctx, p.db)
	post := &models.Post{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          utils.Sanitize(req.Content),
		AuthorID:         &user.ID,
		CategoryID:       req.CategoryID,
	}

	created, err := p.posts.Create(session, post)
	if err != nil {
		writeError(ctx, err, 50022, "failed to create post")
		return
	}

	if len(req.TagIDs) > 0 {
		if err := p.replaceTags(session, created, req.TagIDs); err != nil {
			writeError(ctx, err, 50023, "failed to attach tags")
			return
		}
	}

	utils.Success(ctx, gin.H{"post": created})
}

// UpdatePost partially updates a post. Only the author or a superuser may
// modify it.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var in services.UpdatePostInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40021, "invalid request payload")
		return
	}
	if in.Content != nil {
		clean := utils.Sanitize(*in.Content)
		in.Content = &clean
	}

	session := middleware.Session(ctx, p.db)
	post, err := p.posts.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50024, "failed to get post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}
	if !p.canModify(ctx, post) {
		utils.Error(ctx, http.StatusForbidden, 40320, "not the post author")
		return
	}

	updated, err := p.posts.Update(session, post, in)
	if err != nil {
		writeError(ctx, err, 50025, "failed to update post")
		return
	}
	utils.Success(ctx, gin.H{"post": updated})
}

// SetPostTags replaces the post's tag associations.
func (p *PostController) SetPostTags(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req struct {
		TagIDs []uint `json:"tag_ids" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, "invalid request payload")
		return
	}

	session := middleware.Session(ctx, p.db)
	post, err := p.posts.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50026, "failed to get post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}
	if !p.canModify(ctx, post) {
		utils.Error(ctx, http.StatusForbidden, 40320, "not the post author")
		return
	}

	if err := p.replaceTags(session, post, req.TagIDs); err != nil {
		writeError(ctx, err, 50027, "failed to set tags")
		return
	}
	utils.Success(ctx, gin.H{"post": post})
}

// DeletePost removes a post; its comments and tag associations go with it.
func (p *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, p.db)

	post, err := p.posts.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50028, "failed to get post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}
	if !p.canModify(ctx, post) {
		utils.Error(ctx, http.StatusForbidden, 40320, "not the post author")
		return
	}

	if err := p.posts.Remove(session, 0, post); err != nil {
		utils.Fail(ctx, err, 50029, "failed to delete post")
		return
	}
	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// canModify allows the author and superusers.
func (p *PostController) canModify(ctx *gin.Context, post *models.Post) bool {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	return post.AuthorID != nil && *post.AuthorID == user.ID
}

func (p *PostController) replaceTags(session *gorm.DB, post *models.Post, tagIDs []uint) error {
	tagIDs = utils.Unique(tagIDs)
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := session.Find(&tags, tagIDs).Error; err != nil {
			return err
		}
	}
	if err := session.Model(post).Association("Tags").Replace(&tags); err != nil {
		return err
	}
	post.Tags = tags
	return nil
}
