package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, userID uint, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   "ana@contratus.app",
		"role":    models.RoleAdmin,
		"exp":     exp.Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

type stubUsers map[uint]*models.User

func (s stubUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func newRouter(users UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(testSecret), LoadPolicy(users))
	r.GET("/me", func(c *gin.Context) {
		policy := GetPolicy(c)
		c.JSON(http.StatusOK, gin.H{"role": policy.Role(), "user_id": policy.UserID()})
	})
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func perform(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader(t *testing.T) {
	w := perform(newRouter(stubUsers{}), "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization")
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signedToken(t, 1, time.Now().Add(-time.Hour))
	w := perform(newRouter(stubUsers{}), "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expirado")
}

func TestAuth_WrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(time.Hour).Unix()})
	s, err := token.SignedString([]byte("other"))
	require.NoError(t, err)

	w := perform(newRouter(stubUsers{}), "/me", s)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoadPolicy_UsesStoredRole(t *testing.T) {
	// the token says admin, the database says agent
	users := stubUsers{7: {ID: 7, Role: models.RoleAgent, Status: models.StatusActive}}
	token := signedToken(t, 7, time.Now().Add(time.Hour))
	r := newRouter(users)

	w := perform(r, "/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"agent","user_id":7}`, w.Body.String())

	w = perform(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoadPolicy_InactiveUser(t *testing.T) {
	users := stubUsers{7: {ID: 7, Role: models.RoleAdmin, Status: models.StatusInactive}}
	w := perform(newRouter(users), "/me", signedToken(t, 7, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "conta inativa")
}

func TestLoadPolicy_UnknownUser(t *testing.T) {
	w := perform(newRouter(stubUsers{}), "/me", signedToken(t, 9, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetPolicy_FallsBackToAgent(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(userIDKey, uint(4))

	policy := GetPolicy(c)
	assert.Equal(t, models.RoleAgent, policy.Role())
	assert.False(t, access.IsAdmin(policy))
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"https://app.contratus.app"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.contratus.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.contratus.app", w.Header().Get("Access-Control-Allow-Origin"))
}
