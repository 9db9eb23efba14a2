package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/infrastructure/auth"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/ratelimit"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetActor(c).UserID})
	}
	r.GET("/t", ok)
	r.POST("/t", ok)
	r.DELETE("/t", ok)
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireJSON(t *testing.T) {
	r := newEngine(RequireJSON())

	w := do(r, http.MethodPost, "/t", `{}`, map[string]string{"Content-Type": "text/plain"})
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported_media_type")

	w = do(r, http.MethodPost, "/t", `{}`, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/t", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/t", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "bodiless deletes pass")
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := do(r, http.MethodGet, "/t", "", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	w = do(r, http.MethodGet, "/t", "", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestAuthenticateAndRequireAuth(t *testing.T) {
	m := NewAuthMiddleware(auth.NewHeaderAuthenticator(), logger.NewNopLogger())
	r := newEngine(m.Authenticate(), m.RequireAuth())

	w := do(r, http.MethodGet, "/t", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/t", "", map[string]string{"x-user-id": "u1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"u1"`)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTAuthenticator(auth.NewJWTService("secret", "")), logger.NewNopLogger())
	r := newEngine(m.Authenticate())

	w := do(r, http.MethodGet, "/t", "", map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/t", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "no credentials continues as a guest")
}

type stubChecker struct {
	allowed bool
	err     error
	role    string
}

func (s *stubChecker) Enforce(role, resource, action string) (bool, error) {
	s.role = role
	return s.allowed, s.err
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name    string
		checker *stubChecker
		headers map[string]string
		status  int
	}{
		{"anonymous", &stubChecker{allowed: true}, nil, http.StatusUnauthorized},
		{"denied", &stubChecker{allowed: false}, map[string]string{"x-user-id": "u1"}, http.StatusForbidden},
		{"allowed", &stubChecker{allowed: true}, map[string]string{"x-user-id": "a1", "x-user-role": "admin"}, http.StatusOK},
		{"checker error", &stubChecker{err: errors.New("db down")}, map[string]string{"x-user-id": "a1"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAuthMiddleware(auth.NewHeaderAuthenticator(), logger.NewNopLogger())
			pm := NewPermissionMiddleware(tt.checker, logger.NewNopLogger())
			r := newEngine(am.Authenticate(), pm.RequirePermission("order", "read"))

			w := do(r, http.MethodGet, "/t", "", tt.headers)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

type countingLimiter struct {
	ratelimit.NoopRateLimiter
	keys  []string
	allow bool
	err   error
}

func (l *countingLimiter) Allow(ctx context.Context, key string, limit ratelimit.Limit) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

func TestRateLimit(t *testing.T) {
	limiter := &countingLimiter{allow: false}
	am := NewAuthMiddleware(auth.NewHeaderAuthenticator(), logger.NewNopLogger())
	rl := NewRateLimitMiddleware(limiter, logger.NewNopLogger())
	r := newEngine(am.Authenticate(), rl.Limit("intake", ratelimit.Limit{Requests: 1, Window: time.Hour}))

	w := do(r, http.MethodGet, "/t", "", map[string]string{"x-user-id": "u9"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Len(t, limiter.keys, 1)
	assert.Equal(t, "intake:user:u9", limiter.keys[0])

	limiter.err = errors.New("redis down")
	w = do(r, http.MethodGet, "/t", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "limiter outage fails open")
	assert.True(t, strings.HasPrefix(limiter.keys[1], "intake:ip:"))
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(logger.NewNopLogger()))

	w := do(r, http.MethodGet, "/panic", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"https://shop.example"}), SecurityHeaders())

	w := do(r, http.MethodOptions, "/t", "", map[string]string{"Origin": "https://shop.example"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/t", "", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestGetActor_DefaultsToAnonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, actor.Anonymous(), GetActor(c))

	SetActor(c, actor.New("u1", actor.RoleAdmin))
	assert.True(t, GetActor(c).IsAdmin())
}

func TestSafeHeaders_RedactsCredentials(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Stripe-Signature", "t=1,v1=abc")
	h.Set("User-Agent", "curl")

	out := safeHeaders(h)
	assert.Equal(t, "*", out["Authorization"])
	assert.Equal(t, "*", out["Stripe-Signature"])
	assert.Equal(t, "curl", out["User-Agent"])
}

func TestMaskQuery(t *testing.T) {
	q := map[string][]string{"ticket_number": {"TKT-1"}, "email": {"grace@example.com"}}

	masked := maskQuery(q)
	assert.Contains(t, masked, "ticket_number=TKT-1")
	assert.NotContains(t, masked, "grace")
	assert.Empty(t, maskQuery(nil))
}
