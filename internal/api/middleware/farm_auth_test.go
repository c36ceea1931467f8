package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdeck.io/farmdeck/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newAuthRouter(secret []byte) *gin.Engine {
	router := gin.New()
	router.GET("/scoped", FarmAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"farmId": GetFarmID(c.Request.Context())})
	})
	return router
}

func get(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFarmAuth_HeaderMode(t *testing.T) {
	router := newAuthRouter(nil)

	w := get(router, map[string]string{FarmIDHeader: "farm-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "farm-1")

	w = get(router, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "FARM_UNRESOLVED")
}

func TestFarmAuth_TokenMode(t *testing.T) {
	router := newAuthRouter(testSecret)
	cfg := FarmTokenConfig{Secret: testSecret, Issuer: "farmdeck", ExpiresIn: time.Hour}

	token, expiresAt, err := GenerateFarmToken(cfg, "farm-7")
	require.NoError(t, err)
	require.True(t, expiresAt.After(time.Now()))

	w := get(router, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "farm-7")

	// Header mode is disabled once a secret is configured.
	w = get(router, map[string]string{FarmIDHeader: "farm-7"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "FARM_TOKEN_INVALID")
}

func TestFarmAuth_RejectsBadTokens(t *testing.T) {
	router := newAuthRouter(testSecret)

	t.Run("malformed header", func(t *testing.T) {
		w := get(router, map[string]string{"Authorization": "Token abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := FarmTokenConfig{
			Secret:    []byte("ffffffffffffffffffffffffffffffff"),
			Issuer:    "farmdeck",
			ExpiresIn: time.Hour,
		}
		token, _, err := GenerateFarmToken(other, "farm-7")
		require.NoError(t, err)
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired", func(t *testing.T) {
		cfg := FarmTokenConfig{Secret: testSecret, Issuer: "farmdeck", ExpiresIn: -time.Minute}
		token, _, err := GenerateFarmToken(cfg, "farm-7")
		require.NoError(t, err)
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})

	t.Run("unsigned algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, FarmClaims{FarmID: "farm-7"})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		w := get(router, map[string]string{"Authorization": "Bearer " + raw})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty farm claim", func(t *testing.T) {
		token, _, err := GenerateFarmToken(
			FarmTokenConfig{Secret: testSecret, Issuer: "farmdeck", ExpiresIn: time.Hour}, "")
		require.NoError(t, err)
		w := get(router, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid token claims")
	})
}
