package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/utils"
)

// ContextSessionKey is the gin context key holding the request-scoped
// store session.
const ContextSessionKey = "db_session"

// Transaction scopes one store session to each request: a transaction begins
// before the handler runs, commits when the request succeeds, and rolls back
// on error responses and panics. Release happens on every exit path.
func Transaction(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tx := db.Begin()
		if tx.Error != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to open store session")
			ctx.Abort()
			return
		}
		ctx.Set(ContextSessionKey, tx)

		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()

		ctx.Next()

		if len(ctx.Errors) > 0 || ctx.Writer.Status() >= http.StatusBadRequest {
			tx.Rollback()
			return
		}
		// the handler has already written a success response by this point;
		// a commit failure can only be logged, not reported to the client
		if err := tx.Commit().Error; err != nil {
			utils.Sugar.Errorf("session commit failed: %v", err)
		}
	}
}

// Session returns the request-scoped transaction, or the fallback handle when
// the middleware is not installed (tests, background work).
func Session(ctx *gin.Context, fallback *gorm.DB) *gorm.DB {
	if v, ok := ctx.Get(ContextSessionKey); ok {
		if tx, ok := v.(*gorm.DB); ok {
			return tx
		}
	}
	return fallback
}
