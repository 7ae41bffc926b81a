package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceIDHeader echoes the active trace id so callers can quote it
const TraceIDHeader = "X-Trace-ID"

// Tracing starts a server span per request through otelgin. Health checks
// are not traced.
func Tracing(serviceName string, opts ...otelgin.Option) gin.HandlerFunc {
	opts = append([]otelgin.Option{
		otelgin.WithFilter(func(r *http.Request) bool { return r.URL.Path != "/health" }),
	}, opts...)
	return otelgin.Middleware(serviceName, opts...)
}

// TraceAttributes runs inside the Tracing span and tags it with the request
// id and idempotency key
func TraceAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if id := GetRequestID(c); id != "" {
				span.SetAttributes(attribute.String("request_id", id))
			}
			if key := c.GetHeader(IdempotencyKeyHeader); key != "" && len(key) <= maxIdempotencyKeyLength {
				span.SetAttributes(attribute.String("idempotency_key", key))
			}
			c.Header(TraceIDHeader, span.SpanContext().TraceID().String())
		}
		c.Next()
	}
}
