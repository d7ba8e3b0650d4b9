package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/service"
)

type stubValidator struct {
	status service.TokenStatus
	err    error
	seen   string
}

func (s *stubValidator) ValidateToken(_ context.Context, token string) (service.TokenStatus, error) {
	s.seen = token
	return s.status, s.err
}

func sessionTestRouter(v TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", SessionAuth(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": c.GetString("session_token")})
	})
	return engine
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSessionAuthMissingHeader(t *testing.T) {
	router := sessionTestRouter(&stubValidator{})

	assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Basic abc").Code)
}

func TestSessionAuthInvalidToken(t *testing.T) {
	v := &stubValidator{}
	router := sessionTestRouter(v)

	rec := get(router, "Bearer expired-or-unknown")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid_session"}`, rec.Body.String())
	assert.Equal(t, "expired-or-unknown", v.seen)
}

func TestSessionAuthValidToken(t *testing.T) {
	v := &stubValidator{status: service.TokenStatus{Valid: true, Expiry: time.Now().Add(time.Hour)}}
	router := sessionTestRouter(v)

	rec := get(router, "Bearer sometoken")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"sometoken"}`, rec.Body.String())
}

func TestSessionAuthValidatorFault(t *testing.T) {
	v := &stubValidator{err: errors.New("connection refused")}
	router := sessionTestRouter(v)

	// A storage fault is a 500, never a 401: the client should not discard
	// its token because the database blinked.
	rec := get(router, "Bearer sometoken")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
