package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio_api/internal/model"
	"portfolio_api/internal/ratelimit"
	"portfolio_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// jwtVerifier adapts utils.JWTUtil to TokenVerifier.
type jwtVerifier struct{ *utils.JWTUtil }

func (v jwtVerifier) Verify(token string) (*utils.JWTClaims, error) { return v.ValidateToken(token) }

func TestJWTAuthMiddleware(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("test-secret", time.Hour)
	valid, err := jwtUtil.GenerateToken("user-1", model.RoleAdmin)
	require.NoError(t, err)
	expired, err := utils.NewJWTUtil("test-secret", -time.Minute).GenerateToken("user-1", model.RoleAdmin)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/private", JWTAuthMiddleware(jwtVerifier{jwtUtil}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(AuthUserKey), "role": c.GetString(AuthRoleKey)})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid bearer", "Bearer " + valid, http.StatusOK, `"user":"user-1"`},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, `"role":"admin"`},
		{"missing header", "", http.StatusUnauthorized, "No token, authorization denied"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "No token, authorization denied"},
		{"bare scheme", "Bearer", http.StatusUnauthorized, "No token, authorization denied"},
		{"garbage", "Bearer not.a.token", http.StatusUnauthorized, "Token is not valid"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "Token is not valid"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := perform(r, http.MethodGet, "/private", headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  bearer   abc "))
	assert.Equal(t, "", bearerToken("Bearer "))
	assert.Equal(t, "", bearerToken("BEARER"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "Bearerabc", bearerToken("Bearerabc"))
	assert.Equal(t, "Basic abc", bearerToken("Basic abc"))
}

func TestRequireCapability(t *testing.T) {
	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.GET("/messages", func(c *gin.Context) {
			if role != "" {
				c.Set(AuthRoleKey, role)
			}
			c.Next()
		}, RequireCapability(model.CapabilityMessagesRead), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	assert.Equal(t, http.StatusNoContent, perform(newRouter(model.RoleAdmin), http.MethodGet, "/messages", nil).Code)
	assert.Equal(t, http.StatusForbidden, perform(newRouter("viewer"), http.MethodGet, "/messages", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(newRouter(""), http.MethodGet, "/messages", nil).Code)
}

func TestRateLimit_BlocksSixthAttempt(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(5, 15*time.Minute)
	reached := 0

	r := gin.New()
	r.POST("/login", RateLimit(limiter, "Too many login attempts, please try again after 15 minutes"), func(c *gin.Context) {
		reached++
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := perform(r, http.MethodPost, "/login", nil)
		require.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
		assert.Equal(t, "5", w.Header().Get("RateLimit-Limit"))
	}

	w := perform(r, http.MethodPost, "/login", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many login attempts, please try again after 15 minutes")
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Equal(t, 5, reached)
}

func TestRateLimit_KeysByClientIP(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(1, time.Minute)
	r := gin.New()
	r.POST("/login", RateLimit(limiter, "slow down"), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5678"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("redis down")
}

func (brokenLimiter) Reset(context.Context, string) error { return nil }

func TestRateLimit_FailsOpen(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(brokenLimiter{}, "slow down"), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/login", nil).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := perform(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = perform(r, http.MethodGet, "/", map[string]string{RequestIDHeader: strings.Repeat("x", 200)})
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := perform(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
