package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func apiKeyRouter(key string) http.Handler {
	r := gin.New()
	r.GET("/admin/ping", ValidateAPIKey(key), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestValidAPIKeyPasses(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-API-KEY", "secret")
	w := httptest.NewRecorder()
	apiKeyRouter("secret").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWrongOrMissingAPIKeyRejected(t *testing.T) {
	for _, key := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if key != "" {
			req.Header.Set("X-API-KEY", key)
		}
		w := httptest.NewRecorder()
		apiKeyRouter("secret").ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestUnconfiguredAPIKeyDisablesAdmin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-API-KEY", "")
	w := httptest.NewRecorder()
	apiKeyRouter("").ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
