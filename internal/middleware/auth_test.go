package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/servetisikli/takstore-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", RequireAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	router.GET("/admin", RequireAuth(testSecret), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/optional", OptionalAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c)})
	})
	return router
}

func requestWithToken(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.AccessTokenCookie, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthWithValidToken(t *testing.T) {
	router := newAuthTestRouter()

	token, err := auth.GenerateAccessToken("user-1", false, testSecret)
	require.NoError(t, err)

	w := requestWithToken(t, router, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireAuthWithoutCookie(t *testing.T) {
	router := newAuthTestRouter()

	w := requestWithToken(t, router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWithBadToken(t *testing.T) {
	router := newAuthTestRouter()

	w := requestWithToken(t, router, "/protected", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWithWrongSecret(t *testing.T) {
	router := newAuthTestRouter()

	token, err := auth.GenerateAccessToken("user-1", false, "other-secret")
	require.NoError(t, err)

	w := requestWithToken(t, router, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	router := newAuthTestRouter()

	adminToken, err := auth.GenerateAccessToken("admin-1", true, testSecret)
	require.NoError(t, err)
	userToken, err := auth.GenerateAccessToken("user-1", false, testSecret)
	require.NoError(t, err)

	w := requestWithToken(t, router, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = requestWithToken(t, router, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	router := newAuthTestRouter()

	// No cookie: the request proceeds anonymously.
	w := requestWithToken(t, router, "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Garbage cookie: still anonymous, not rejected.
	w = requestWithToken(t, router, "/optional", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)

	token, err := auth.GenerateAccessToken("user-1", false, testSecret)
	require.NoError(t, err)
	w = requestWithToken(t, router, "/optional", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}
