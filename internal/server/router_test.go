package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio_api/internal/config"
	"portfolio_api/internal/model"
	"portfolio_api/internal/ratelimit"
	"portfolio_api/internal/service"
	"portfolio_api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func testConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		JWTSecret:       "router-test-secret",
		JWTExpiration:   24 * time.Hour,
		FrontendURL:     "http://localhost:3000",
		AdminEmail:      "admin@example.com",
		AdminPassword:   "password123",
		LoginRateMax:    5,
		LoginRateWindow: 15 * time.Minute,
	}
}

func newSeededRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testConfig()
	store := testutil.NewStore()
	require.NoError(t, service.NewSeedService(store.Users(), store.Projects(), store.Experience()).
		Seed(context.Background(), cfg.AdminEmail, cfg.AdminPassword))

	return NewRouter(Dependencies{
		Config:     cfg,
		DB:         fakePinger{},
		Users:      store.Users(),
		Projects:   store.Projects(),
		Experience: store.Experience(),
		Messages:   store.Messages(),
		Limiter:    ratelimit.NewMemoryLimiter(cfg.LoginRateMax, cfg.LoginRateWindow),
	})
}

func request(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := request(r, http.MethodPost, "/api/auth/login", "", `{"email":"admin@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func listProjects(t *testing.T, r http.Handler) []model.Project {
	t.Helper()
	w := request(r, http.MethodGet, "/api/projects", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var projects []model.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	return projects
}

func TestProjectLifecycle(t *testing.T) {
	r := newSeededRouter(t)

	assert.Len(t, listProjects(t, r), 3)

	token := login(t, r)
	w := request(r, http.MethodPost, "/api/projects", token,
		`{"title":"Mobile App","category":"Apps","image":"https://picsum.photos/400/300?random=4"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created model.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	projects := listProjects(t, r)
	require.Len(t, projects, 4)
	assert.Equal(t, created, projects[3])

	w = request(r, http.MethodDelete, "/api/projects/"+created.ID, token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, listProjects(t, r), 3)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newSeededRouter(t)

	w := request(r, http.MethodPost, "/api/projects", "",
		`{"title":"Mobile App","category":"Apps","image":"https://picsum.photos/400/300"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"No token, authorization denied"}`, w.Body.String())

	w = request(r, http.MethodGet, "/api/messages", "forged.token.value", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token is not valid"}`, w.Body.String())

	w = request(r, http.MethodDelete, "/api/experience/some-id", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Len(t, listProjects(t, r), 3)
}

func TestLoginRateLimit(t *testing.T) {
	r := newSeededRouter(t)

	for i := 0; i < 5; i++ {
		w := request(r, http.MethodPost, "/api/auth/login", "", `{"email":"admin@example.com","password":"wrong"}`)
		require.Equal(t, http.StatusBadRequest, w.Code, "attempt %d", i+1)
	}

	// Correct credentials are refused once the window is used up.
	w := request(r, http.MethodPost, "/api/auth/login", "", `{"email":"admin@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"Too many login attempts, please try again after 15 minutes"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestLoginRateLimit_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	r := newSeededRouter(t)

	codes := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.9.9.%d", i))
		req.RemoteAddr = "203.0.113.7:40000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{400, 400, 400, 400, 400, http.StatusTooManyRequests}, codes)
}

func TestLoginRateLimit_TrustedProxyForwardsClientAddress(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxies = []string{"203.0.113.0/24"}
	store := testutil.NewStore()
	r := NewRouter(Dependencies{
		Config:     cfg,
		DB:         fakePinger{},
		Users:      store.Users(),
		Projects:   store.Projects(),
		Experience: store.Experience(),
		Messages:   store.Messages(),
		Limiter:    ratelimit.NewMemoryLimiter(1, time.Minute),
	})

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", client)
		req.RemoteAddr = "203.0.113.7:40000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, send("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
	assert.Equal(t, http.StatusBadRequest, send("198.51.100.2"))
}

func TestContactAndInbox(t *testing.T) {
	r := newSeededRouter(t)

	w := request(r, http.MethodPost, "/api/contact", "", `{"fullName":"J","email":"bad","message":"hi"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name must be 2-100 characters")
	assert.Contains(t, w.Body.String(), "Valid email required")

	w = request(r, http.MethodPost, "/api/contact", "",
		`{"fullName":"Jane Doe","email":"Jane@Example.com","subject":"Project","message":"Can we talk about a project?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	token := login(t, r)
	w = request(r, http.MethodGet, "/api/messages", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var messages []model.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "jane@example.com", messages[0].Email)
}

func TestCORS(t *testing.T) {
	r := newSeededRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealth(t *testing.T) {
	r := newSeededRouter(t)
	w := request(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	cfg := testConfig()
	store := testutil.NewStore()
	down := NewRouter(Dependencies{
		Config:     cfg,
		DB:         fakePinger{err: errors.New("connection refused")},
		Users:      store.Users(),
		Projects:   store.Projects(),
		Experience: store.Experience(),
		Messages:   store.Messages(),
		Limiter:    ratelimit.NewMemoryLimiter(5, time.Minute),
	})
	w = request(down, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLoginLimitMessage(t *testing.T) {
	assert.Equal(t, "Too many login attempts, please try again after 15 minutes", loginLimitMessage(15*time.Minute))
	assert.Equal(t, "Too many login attempts, please try again after 15 minutes", loginLimitMessage(0))
	assert.Equal(t, "Too many login attempts, please try again after 30s", loginLimitMessage(30*time.Second))
}
