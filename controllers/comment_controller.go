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

// CommentController manages CRUD operations for comments.
type CommentController struct {
	db       *gorm.DB
	comments *services.Service[models.Comment]
	posts    *services.Service[models.Post]
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{
		db:       db,
		comments: services.New[models.Comment](),
		posts:    services.New[models.Post](),
	}
}

// ListPostComments returns a page of comments for one post.
func (c *CommentController) ListPostComments(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	limit, offset := parsePagination(ctx)
	session := middleware.Session(ctx, c.db)

	post, err := c.posts.Get(session, postID)
	if err != nil {
		utils.Fail(ctx, err, 50050, "failed to get post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}

	scoped := session.Where("post_id = ?", postID).Preload("Author")
	comments, err := c.comments.List(scoped, limit, offset)
	if err != nil {
		utils.Fail(ctx, err, 50051, "failed to list comments")
		return
	}
	utils.Success(ctx, gin.H{"items": comments, "limit": limit, "offset": offset})
}

// CreateComment adds a comment to a post, authored by the current user.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var req struct {
		Comment string `json:"comment" binding:"max=255"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid request payload")
		return
	}

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "authentication required")
		return
	}

	session := middleware.Session(ctx, c.db)
	post, err := c.posts.Get(session, postID)
	if err != nil {
		utils.Fail(ctx, err, 50052, "failed to get post")
		return
	}
	if post == nil {
		utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
		return
	}

	comment := &models.Comment{
		Comment:  utils.Sanitize(req.Comment),
		AuthorID: &user.ID,
		PostID:   post.ID,
	}
	created, err := c.comments.Create(session, comment)
	if err != nil {
		writeError(ctx, err, 50053, "failed to create comment")
		return
	}
	utils.Success(ctx, gin.H{"comment": created})
}

// UpdateComment edits a comment. Only the author or a superuser may modify it.
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	var in services.UpdateCommentInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40051, "invalid request payload")
		return
	}
	if in.Comment != nil {
		clean := utils.Sanitize(*in.Comment)
		in.Comment = &clean
	}

	session := middleware.Session(ctx, c.db)
	comment, err := c.comments.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50054, "failed to get comment")
		return
	}
	if comment == nil {
		utils.Error(ctx, http.StatusNotFound, 40450, "comment not found")
		return
	}
	if !c.canModify(ctx, comment) {
		utils.Error(ctx, http.StatusForbidden, 40350, "not the comment author")
		return
	}

	updated, err := c.comments.Update(session, comment, in)
	if err != nil {
		writeError(ctx, err, 50055, "failed to update comment")
		return
	}
	utils.Success(ctx, gin.H{"comment": updated})
}

// DeleteComment removes a comment.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}
	session := middleware.Session(ctx, c.db)

	comment, err := c.comments.Get(session, id)
	if err != nil {
		utils.Fail(ctx, err, 50056, "failed to get comment")
		return
	}
	if comment == nil {
		utils.Error(ctx, http.StatusNotFound, 40450, "comment not found")
		return
	}
	if !c.canModify(ctx, comment) {
		utils.Error(ctx, http.StatusForbidden, 40350, "not the comment author")
		return
	}

	if err := c.comments.Remove(session, 0, comment); err != nil {
		utils.Fail(ctx, err, 50057, "failed to delete comment")
		return
	}
	utils.Success(ctx, gin.H{"message": "comment deleted"})
}

func (c *CommentController) canModify(ctx *gin.Context, comment *models.Comment) bool {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	return comment.AuthorID != nil && *comment.AuthorID == user.ID
}
