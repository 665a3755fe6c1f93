package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/storefront-admin/internal/config"
	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type memIdempotencyRepo struct {
	mu     sync.Mutex
	keys   map[string]*entity.IdempotencyKey
	purged int
}

func newMemIdempotencyRepo() *memIdempotencyRepo {
	return &memIdempotencyRepo{keys: map[string]*entity.IdempotencyKey{}}
}

func (r *memIdempotencyRepo) GetByKey(_ context.Context, key, endpoint string) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[key+"|"+endpoint]; ok {
		cp := *k
		return &cp, nil
	}
	return nil, nil
}

func (r *memIdempotencyRepo) Reserve(_ context.Context, k *entity.IdempotencyKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := k.Key + "|" + k.Endpoint
	if _, taken := r.keys[id]; taken {
		return false, nil
	}
	cp := *k
	r.keys[id] = &cp
	return true, nil
}

func (r *memIdempotencyRepo) Complete(_ context.Context, key, endpoint string, code int, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[key+"|"+endpoint]; ok {
		k.ResponseCode = code
		k.ResponseBody = body
	}
	return nil
}

func (r *memIdempotencyRepo) Release(_ context.Context, key, endpoint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[key+"|"+endpoint]; ok && k.InProgress() {
		delete(r.keys, key+"|"+endpoint)
	}
	return nil
}

func (r *memIdempotencyRepo) DeleteExpired(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, k := range r.keys {
		if k.IsExpired() {
			delete(r.keys, id)
			r.purged++
		}
	}
	return nil
}

func TestLoggerSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(Logger(log))
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = c.GetString(response.RequestIDKey)
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?q=1", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	router.ServeHTTP(resp, req)

	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", resp.Header().Get(RequestIDHeader))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request", line["msg"])
	assert.Equal(t, "/?q=1", line["path"])
	assert.Equal(t, float64(200), line["status"])
}

func TestLoggerGeneratesRequestID(t *testing.T) {
	router := gin.New()
	router.Use(Logger(discardLogger()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, resp.Header().Get(RequestIDHeader), 36)
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(discardLogger()))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false`)
}

func TestRateLimiter(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{RequestsPerSecond: 0.001, BurstSize: 2, EntryTTL: time.Minute})
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(resp, req)
		codes = append(codes, resp.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 2, rl.Clients())
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{EntryTTL: time.Minute})
	now := time.Now()
	rl.now = func() time.Time { return now }
	rl.getLimiter("a")

	rl.now = func() time.Time { return now.Add(2 * time.Minute) }
	rl.getLimiter("b")

	assert.Equal(t, 1, rl.Cleanup())
	assert.Equal(t, 1, rl.Clients())
}

func idempotentRouter(repo *memIdempotencyRepo, calls *int) *gin.Engine {
	router := gin.New()
	router.POST("/orders", Idempotency(IdempotencyConfig{Repo: repo, TTL: time.Hour, Log: discardLogger()}), func(c *gin.Context) {
		*calls++
		body, _ := io.ReadAll(c.Request.Body)
		if strings.Contains(string(body), "fail") {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"n": *calls})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"n": *calls})
	})
	return router
}

func post(router *gin.Engine, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestIdempotencyReplays(t *testing.T) {
	repo := newMemIdempotencyRepo()
	calls := 0
	router := idempotentRouter(repo, &calls)

	first := post(router, "k1", `{"a":1}`)
	second := post(router, "k1", `{"a":1}`)

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(ReplayedHeader))
	assert.Equal(t, 1, calls)

	post(router, "", `{"a":1}`)
	post(router, "", `{"a":1}`)
	assert.Equal(t, 3, calls)
}

func TestIdempotencyRejectsDifferentBody(t *testing.T) {
	repo := newMemIdempotencyRepo()
	calls := 0
	router := idempotentRouter(repo, &calls)

	post(router, "k1", `{"a":1}`)
	resp := post(router, "k1", `{"a":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotencySkipsFailures(t *testing.T) {
	repo := newMemIdempotencyRepo()
	calls := 0
	router := idempotentRouter(repo, &calls)

	post(router, "k1", `{"fail":true}`)
	post(router, "k1", `{"fail":true}`)
	assert.Equal(t, 2, calls)
	assert.Empty(t, repo.keys)
}

func TestIdempotencyExpiredKey(t *testing.T) {
	repo := newMemIdempotencyRepo()
	repo.keys["k1|POST /orders"] = &entity.IdempotencyKey{
		Key: "k1", Endpoint: "POST /orders", ResponseCode: 201, ResponseBody: `{"n":0}`,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	calls := 0
	router := idempotentRouter(repo, &calls)

	resp := post(router, "k1", `{"a":1}`)
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, repo.purged)
	assert.False(t, repo.keys["k1|POST /orders"].IsExpired())
}

func TestIdempotencyConcurrentRetry(t *testing.T) {
	repo := newMemIdempotencyRepo()
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	var mu sync.Mutex

	router := gin.New()
	router.POST("/orders", Idempotency(IdempotencyConfig{Repo: repo, TTL: time.Hour, Log: discardLogger()}), func(c *gin.Context) {
		mu.Lock()
		calls++
		mu.Unlock()
		close(entered)
		<-release
		c.JSON(http.StatusCreated, gin.H{"n": 1})
	})

	done := make(chan *httptest.ResponseRecorder)
	go func() { done <- post(router, "k1", `{"a":1}`) }()
	<-entered

	retry := post(router, "k1", `{"a":1}`)
	assert.Equal(t, http.StatusConflict, retry.Code)

	close(release)
	first := <-done
	assert.Equal(t, http.StatusCreated, first.Code)

	replayed := post(router, "k1", `{"a":1}`)
	assert.Equal(t, http.StatusCreated, replayed.Code)
	assert.Equal(t, "true", replayed.Header().Get(ReplayedHeader))
	assert.Equal(t, first.Body.String(), replayed.Body.String())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, int32(1), calls)
}

func TestIdempotencyReleasesKeyOnPanic(t *testing.T) {
	repo := newMemIdempotencyRepo()
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.POST("/orders", Idempotency(IdempotencyConfig{Repo: repo, TTL: time.Hour, Log: discardLogger()}), func(*gin.Context) {
		panic("boom")
	})

	resp := post(router, "k1", `{"a":1}`)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Empty(t, repo.keys)
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "gzip")
	router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "payload", body)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS(config.CORSConfig{AllowedOrigins: []string{"http://shop.local"}}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://shop.local")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "http://shop.local", resp.Header().Get("Access-Control-Allow-Origin"))
}
