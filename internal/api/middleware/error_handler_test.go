package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "farmdeck.io/farmdeck/internal/pkg/errors"
)

func perform(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/t", handler)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
	return w
}

func TestErrorHandler_AppError(t *testing.T) {
	w := perform(func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound(apperrors.CodePaddockNotFound, "paddock p-1 not found"))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":"PADDOCK_NOT_FOUND","message":"paddock p-1 not found"}`, w.Body.String())
}

func TestErrorHandler_AppErrorWithParams(t *testing.T) {
	w := perform(func(c *gin.Context) {
		err := apperrors.BadRequest(apperrors.CodeValidationFailed, "bad kind").
			WithParams(map[string]interface{}{"kind": "SHEARING"})
		_ = c.Error(err)
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"params"`)
	assert.Contains(t, w.Body.String(), "SHEARING")
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	w := perform(func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	w := perform(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/t", func(c *gin.Context) {
		seen = GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set(RequestIDHeader, "rid-42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "rid-42", seen)
	assert.Equal(t, "rid-42", w.Header().Get(RequestIDHeader))
}
