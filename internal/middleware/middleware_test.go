package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abubasith456/React-white-label/internal/config"
	"github.com/abubasith456/React-white-label/internal/session"
)

type admins map[string]bool

func (a admins) IsAdmin(_ context.Context, tenantID, userID string) (bool, error) {
	if tenantID == "broken" {
		return false, errors.New("boom")
	}
	return a[tenantID+":"+userID], nil
}

// serve mounts h under /api/:tenant/x behind BindSession and then mw,
// the order the server uses for the tenant group.
func serve(t *testing.T, sessions *session.Store, token string, tenant string, h echo.HandlerFunc, mw ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	g := e.Group("/api/:tenant", BindSession(sessions))
	g.GET("/x", h, mw...)

	req := httptest.NewRequest(http.MethodGet, "/api/"+tenant+"/x", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func whoami(c echo.Context) error {
	sess, ok := CurrentSession(c)
	if !ok {
		return c.String(http.StatusOK, "anon")
	}
	return c.String(http.StatusOK, sess.TenantID+"/"+sess.UserID)
}

func TestBindSession(t *testing.T) {
	sessions := session.NewStore()
	token, err := sessions.Create("demo", "u1")
	require.NoError(t, err)

	assert.Equal(t, "demo/u1", serve(t, sessions, token, "demo", whoami).Body.String())
	assert.Equal(t, "anon", serve(t, sessions, token, "acme", whoami).Body.String())
	assert.Equal(t, "anon", serve(t, sessions, "bogus", "demo", whoami).Body.String())
	assert.Equal(t, "anon", serve(t, sessions, "", "demo", whoami).Body.String())
}

func TestRequireAuth(t *testing.T) {
	sessions := session.NewStore()
	token, _ := sessions.Create("demo", "u1")

	rec := serve(t, sessions, "", "demo", whoami, RequireAuth())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())

	rec = serve(t, sessions, token, "demo", whoami, RequireAuth())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	sessions := session.NewStore()
	adminTok, _ := sessions.Create("demo", "boss")
	userTok, _ := sessions.Create("demo", "pleb")
	brokenTok, _ := sessions.Create("broken", "boss")
	checker := admins{"demo:boss": true}

	assert.Equal(t, http.StatusUnauthorized, serve(t, sessions, "", "demo", whoami, RequireAdmin(checker)).Code)

	rec := serve(t, sessions, userTok, "demo", whoami, RequireAdmin(checker))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())

	rec = serve(t, sessions, adminTok, "demo", whoami, RequireAdmin(checker))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "demo/boss", rec.Body.String())

	rec = serve(t, sessions, brokenTok, "broken", whoami, RequireAdmin(checker))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// fakeScripter answers every script call with res.
type fakeScripter struct {
	res  interface{}
	err  error
	keys []string
}

func (f *fakeScripter) run(keys []string) *redis.Cmd {
	f.keys = append(f.keys, keys...)
	return redis.NewCmdResult(f.res, f.err)
}

func (f *fakeScripter) Eval(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) EvalSha(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) EvalRO(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) EvalShaRO(_ context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	return f.run(keys)
}

func (f *fakeScripter) ScriptExists(_ context.Context, hashes ...string) *redis.BoolSliceCmd {
	return redis.NewBoolSliceResult(make([]bool, len(hashes)), nil)
}

func (f *fakeScripter) ScriptLoad(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult("sha", nil)
}

func limiterConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       5,
		RefillTokens:   1,
		RefillInterval: time.Second,
		TTL:            time.Minute,
		KeyStrategy:    "ip",
		Prefix:         "rl",
	}
}

func TestTokenBucketAllows(t *testing.T) {
	sessions := session.NewStore()
	rdb := &fakeScripter{res: []interface{}{int64(1), int64(4), int64(0)}}

	rec := serve(t, sessions, "", "demo", whoami, NewTokenBucket(limiterConfig(), rdb, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	require.Len(t, rdb.keys, 1)
	assert.Equal(t, "rl:t:demo:ip:192.0.2.1", rdb.keys[0])
}

func TestTokenBucketRejects(t *testing.T) {
	sessions := session.NewStore()
	rdb := &fakeScripter{res: []interface{}{int64(0), int64(0), int64(1500)}}

	rec := serve(t, sessions, "", "demo", whoami, NewTokenBucket(limiterConfig(), rdb, nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"Too many requests","retry_after":2}`, rec.Body.String())
}

func TestTokenBucketFailsOpen(t *testing.T) {
	sessions := session.NewStore()
	core, logs := observer.New(zap.WarnLevel)
	rdb := &fakeScripter{err: errors.New("connection refused")}

	rec := serve(t, sessions, "", "demo", whoami, NewTokenBucket(limiterConfig(), rdb, zap.New(core)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("rate limiter unavailable").Len())
}

func TestTokenBucketDisabled(t *testing.T) {
	cfg := limiterConfig()
	cfg.Enabled = false
	rdb := &fakeScripter{}

	rec := serve(t, session.NewStore(), "", "demo", whoami, NewTokenBucket(cfg, rdb, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rdb.keys)
}

func TestBuildRateKeyScopesByTenant(t *testing.T) {
	sessions := session.NewStore()
	token, _ := sessions.Create("demo", "u1")
	cfg := limiterConfig()
	cfg.KeyStrategy = "user_route"

	var key string
	h := func(c echo.Context) error {
		key = buildRateKey(cfg, c)
		return c.NoContent(http.StatusOK)
	}
	serve(t, sessions, token, "demo", h)
	assert.Equal(t, "rl:t:demo:user:u1:route:GET /api/:tenant/x", key)

	serve(t, sessions, "", "acme", h)
	assert.Equal(t, "rl:t:acme:user:anon:route:GET /api/:tenant/x", key)

	cfg.SharedAcrossTenants = true
	serve(t, sessions, token, "demo", h)
	assert.Equal(t, "rl:t:*:user:u1:route:GET /api/:tenant/x", key)
}

func TestBuildRateKeyAnonymousByIP(t *testing.T) {
	sessions := session.NewStore()
	token, _ := sessions.Create("demo", "u1")
	cfg := limiterConfig()
	cfg.KeyStrategy = "user"
	cfg.AnonymousByIP = true

	var key string
	h := func(c echo.Context) error {
		key = buildRateKey(cfg, c)
		return c.NoContent(http.StatusOK)
	}
	serve(t, sessions, "", "demo", h)
	assert.Equal(t, "rl:t:demo:ip:192.0.2.1:user:anon", key)

	serve(t, sessions, token, "demo", h)
	assert.Equal(t, "rl:t:demo:user:u1", key)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/api/:tenant/x", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/demo/x?q=1", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/demo/x?q=1", fields["uri"])
	assert.Equal(t, "demo", fields["tenant"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/:tenant/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	for _, tenant := range []string{"demo", "acme"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/"+tenant+"/x", nil))
	}
	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/:tenant/x", "204")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}
