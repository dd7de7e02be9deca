package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cricwordle_backend/internal/config"
	"cricwordle_backend/internal/model"
	"cricwordle_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(cfgs *config.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/private", AuthMiddleware(cfgs), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	user := &model.User{Email: "keeper@example.com"}
	user.ID = 7
	token, err := util.GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func doAuthRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	store := config.NewStore(&config.Config{JWT: config.JWTConfig{Secret: "old-secret"}})
	router := authTestRouter(store)

	w := doAuthRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A reload swaps the whole config; tokens signed with the new secret must be
// accepted by handlers built before the swap.
func TestAuthMiddlewareUsesSwappedSecret(t *testing.T) {
	store := config.NewStore(&config.Config{JWT: config.JWTConfig{Secret: "old-secret"}})
	router := authTestRouter(store)

	token := signedToken(t, "new-secret")
	assert.Equal(t, http.StatusUnauthorized, doAuthRequest(router, token).Code)

	store.Swap(&config.Config{JWT: config.JWTConfig{Secret: "new-secret"}})
	assert.Equal(t, http.StatusOK, doAuthRequest(router, token).Code)
}

func TestTryAuthMiddlewareAllowsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := config.NewStore(&config.Config{JWT: config.JWTConfig{Secret: "old-secret"}})
	router := gin.New()
	router.GET("/open", TryAuthMiddleware(store), func(c *gin.Context) {
		if util.GetUserFromContext(c) != nil {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "old-secret"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
