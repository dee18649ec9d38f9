package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/utils"
)

// parseIDParam reads the :id route parameter as an unsigned integer.
func parseIDParam(ctx *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(ctx.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads limit/offset query parameters with service defaults.
func parsePagination(ctx *gin.Context) (limit, offset int) {
	limit = 100
	offset = 0
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}
	if v := ctx.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// writeError maps a store error onto the response, keeping uniqueness
// violations distinguishable from other failures.
func writeError(ctx *gin.Context, err error, code int, message string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		_ = ctx.Error(err)
		utils.Error(ctx, http.StatusConflict, 40901, "resource already exists")
		return
	}
	utils.Fail(ctx, err, code, message)
}
