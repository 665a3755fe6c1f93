package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/storefront-admin/internal/domain/entity"
	"github.com/sangkips/storefront-admin/internal/domain/repository"
	"github.com/sangkips/storefront-admin/internal/presentation/http/dto/response"
	"github.com/sangkips/storefront-admin/pkg/apperror"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// ReplayedHeader marks a response served from the idempotency store
	ReplayedHeader = "X-Idempotency-Replayed"
	// DefaultIdempotencyTTL is used when no TTL is configured
	DefaultIdempotencyTTL = 24 * time.Hour
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	TTL  time.Duration
	Log  *slog.Logger
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a POST is retried with the
// same Idempotency-Key. The key is reserved before the handler runs, so a
// concurrent retry gets 409 instead of running the handler a second time.
// Reusing a key with a different body is rejected. Requests without the
// header pass through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultIdempotencyTTL
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Could not read request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		hash := hex.EncodeToString(sum[:])

		ctx := c.Request.Context()
		endpoint := c.Request.Method + " " + c.Request.URL.Path

		reserved, existing, err := reserveKey(c, cfg, &entity.IdempotencyKey{
			Key:         key,
			Endpoint:    endpoint,
			RequestHash: hash,
			ExpiresAt:   time.Now().Add(cfg.TTL),
		})
		if err != nil {
			response.Error(c, err)
			return
		}
		if !reserved {
			replay(c, existing, hash)
			return
		}

		// The reservation outlives a cancelled request and a panicking handler.
		storeCtx := context.WithoutCancel(ctx)
		completed := false
		defer func() {
			if completed {
				return
			}
			if err := cfg.Repo.Release(storeCtx, key, endpoint); err != nil {
				cfg.Log.WarnContext(storeCtx, "failed to release idempotency key",
					slog.String("key", key),
					slog.String("error", err.Error()),
				)
			}
		}()

		blw := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only 2xx answers are replayed; a failed attempt can be retried.
		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}
		if err := cfg.Repo.Complete(storeCtx, key, endpoint, status, blw.body.String()); err != nil {
			cfg.Log.WarnContext(storeCtx, "failed to store idempotency key",
				slog.String("key", key),
				slog.String("endpoint", endpoint),
				slog.String("error", err.Error()),
			)
			return
		}
		completed = true
	}
}

// reserveKey claims ikey. When the key is taken by an expired entry, expired
// entries are purged and the claim is tried once more. The entry holding the
// key is returned when the claim fails.
func reserveKey(c *gin.Context, cfg IdempotencyConfig, ikey *entity.IdempotencyKey) (bool, *entity.IdempotencyKey, error) {
	ctx := c.Request.Context()
	for attempt := 0; attempt < 2; attempt++ {
		reserved, err := cfg.Repo.Reserve(ctx, ikey)
		if err != nil || reserved {
			return reserved, nil, err
		}
		existing, err := cfg.Repo.GetByKey(ctx, ikey.Key, ikey.Endpoint)
		if err != nil {
			return false, nil, err
		}
		if existing == nil || !existing.IsExpired() {
			return false, existing, nil
		}
		if err := cfg.Repo.DeleteExpired(ctx); err != nil {
			return false, nil, err
		}
	}
	return false, nil, nil
}

func replay(c *gin.Context, existing *entity.IdempotencyKey, hash string) {
	switch {
	case existing == nil || existing.IsExpired():
		response.Error(c, apperror.NewAppError(http.StatusConflict,
			"Idempotency-Key is being reused, retry the request"))
	case existing.RequestHash != hash:
		response.Error(c, apperror.NewAppError(http.StatusUnprocessableEntity,
			"Idempotency-Key was already used with a different request body"))
	case existing.InProgress():
		response.Error(c, apperror.NewAppError(http.StatusConflict,
			"A request with this Idempotency-Key is still being processed"))
	default:
		c.Header(ReplayedHeader, "true")
		c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
		c.Abort()
	}
}
