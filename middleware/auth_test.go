package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/scribeapp/scribe/middleware"
	"github.com/scribeapp/scribe/models"
	"github.com/scribeapp/scribe/testutil"
	"github.com/scribeapp/scribe/utils"
)

func seedUser(t *testing.T, db *gorm.DB, email string, active, super bool) (*models.User, string) {
	t.Helper()
	user := &models.User{
		Name:           "gate-test",
		Email:          email,
		HashedPassword: "x",
		IsActive:       active,
		IsSuperuser:    super,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := utils.GenerateToken(user.ID, time.Hour)
	require.NoError(t, err)
	return user, token
}

func gateRouter(db *gorm.DB, gates ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthRequired(db)}, gates...)
	handlers = append(handlers, func(ctx *gin.Context) {
		user, _ := middleware.CurrentUser(ctx)
		ctx.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email})
	})
	r.GET("/guarded", handlers...)
	return r
}

func hit(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	db := testutil.OpenDB(t)
	w := hit(gateRouter(db), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBadScheme(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "scheme@example.com", true, false)
	w := hit(gateRouter(db), "Token "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredGarbageToken(t *testing.T) {
	db := testutil.OpenDB(t)
	w := hit(gateRouter(db), "Bearer not.a.real.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredUnknownSubject(t *testing.T) {
	db := testutil.OpenDB(t)
	token, err := utils.GenerateToken(987654, time.Hour)
	require.NoError(t, err)
	w := hit(gateRouter(db), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredIdentifiesUser(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "known@example.com", false, false)

	w := hit(gateRouter(db), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code, "identification alone does not require an active account")
	assert.Contains(t, w.Body.String(), "known@example.com")
}

func TestAuthRequiredRevokedToken(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "revoked@example.com", true, false)

	utils.BlacklistToken(token, time.Now().Add(time.Hour))
	w := hit(gateRouter(db), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActiveRequiredRejectsInactive(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "inactive@example.com", false, false)

	w := hit(gateRouter(db, middleware.ActiveRequired()), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActiveRequiredAllowsActive(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "active@example.com", true, false)

	w := hit(gateRouter(db, middleware.ActiveRequired()), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSuperuserRequiredForbidsRegulars(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "regular@example.com", true, false)

	w := hit(gateRouter(db, middleware.SuperuserRequired()), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code, "privilege failures are forbidden, not unauthorized")
}

func TestSuperuserRequiredAllowsSuperuser(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "admin@example.com", true, true)

	w := hit(gateRouter(db, middleware.SuperuserRequired()), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSuperuserRequiredRejectsInactiveSuperuser(t *testing.T) {
	db := testutil.OpenDB(t)
	_, token := seedUser(t, db, "dormant-admin@example.com", false, true)

	w := hit(gateRouter(db, middleware.SuperuserRequired()), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
