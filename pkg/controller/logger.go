package controller

import (
	"context"
	"evdemand/pkg/logger"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

type CtxKey string

// RequestIDKey is the context key of the current request ID.
const RequestIDKey CtxKey = "requestID"

// RequestID returns the ID WithLogger assigned to the request, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// GetClientIP returns the first address of X-Forwarded-For, then X-Real-IP,
// then the host of the connection's remote address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		client, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(client)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// WithLogger assigns every request an ID (taken from the X-Request-Id header
// when present), echoes it in the response, attaches a logger carrying it to
// the context and writes an access log line once the handler returns. Server
// errors are logged at error level.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logger.WithFields(ctx, zap.String("requestID", requestID))

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int("status_code", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
		}
		if status >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", fields...)

			return
		}
		logger.Info(ctx, "request served", fields...)
	})
}
