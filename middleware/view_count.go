package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scribeapp/scribe/utils"
)

// PostViews records successful reads of a single post. It runs after the
// handler so failed lookups do not count.
func PostViews() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if ctx.Writer.Status() != http.StatusOK {
			return
		}
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil || id == 0 {
			return
		}
		utils.IncrPostViews(uint(id))
	}
}
