package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/erp/production/internal/domain/shared"
	"github.com/erp/production/internal/infrastructure/logger"
	"github.com/erp/production/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the header clients use to make a mutation retryable
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the stored outcome
	IdempotencyReplayedHeader = "Idempotency-Replayed"

	maxIdempotencyKeyLength = 128
)

// storedResponse is the outcome recorded for a key
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter tees the response body so it can be stored after the handler ran
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency makes a mutating route safe to retry. The first request with a
// given Idempotency-Key runs the handler and its response is stored; later
// requests with the same key get the stored response back. A duplicate that
// arrives while the first is still running gets 409. Requests without the
// header pass through untouched.
//
// Server errors release the key so the client may retry.
func Idempotency(store shared.IdempotencyStore, cfg shared.IdempotencyConfig, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if !cfg.Enabled || store == nil || key == "" {
			c.Next()
			return
		}
		requestID := GetRequestID(c)
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest, "Idempotency-Key is too long", requestID))
			return
		}

		ctx := logger.WithIdempotencyKey(c.Request.Context(), key)
		c.Request = c.Request.WithContext(ctx)
		scoped := c.Request.Method + " " + c.FullPath() + " " + c.Request.URL.Path + " " + key

		acquired, err := store.Acquire(ctx, scoped, cfg.TTL)
		if err != nil {
			// without a working store the request runs unprotected
			log.Warn("idempotency store unavailable",
				zap.String("idempotency_key", key),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !acquired {
			replay(c, store, scoped, key, requestID, log)
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status >= http.StatusInternalServerError {
			if err := store.Release(ctx, scoped); err != nil {
				log.Warn("failed to release idempotency key", zap.String("idempotency_key", key), zap.Error(err))
			}
			return
		}

		payload, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err == nil {
			err = store.Store(ctx, scoped, payload, cfg.TTL)
		}
		if err != nil {
			log.Warn("failed to store idempotent response", zap.String("idempotency_key", key), zap.Error(err))
		}
	}
}

func replay(c *gin.Context, store shared.IdempotencyStore, scoped, key, requestID string, log *zap.Logger) {
	payload, found, err := store.Load(c.Request.Context(), scoped)
	if err != nil {
		log.Warn("failed to load idempotent response", zap.String("idempotency_key", key), zap.Error(err))
	}
	if err != nil || !found {
		c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeIdempotencyInFlight,
			"A request with this Idempotency-Key is still being processed",
			requestID,
		))
		return
	}

	var stored storedResponse
	if err := json.Unmarshal(payload, &stored); err != nil {
		log.Error("corrupt idempotent response", zap.String("idempotency_key", key), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeInternal, "Stored response could not be read", requestID))
		return
	}

	log.Info("replaying idempotent response",
		zap.String("idempotency_key", key),
		zap.Int("status", stored.Status),
	)
	c.Header(IdempotencyReplayedHeader, "true")
	contentType := stored.ContentType
	if contentType == "" {
		contentType = gin.MIMEJSON
	}
	c.Data(stored.Status, contentType, stored.Body)
	c.Abort()
}
