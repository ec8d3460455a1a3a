package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kislikjeka/bookstore/pkg/logger"
)

// maxCapturedBody bounds how much of an error response is kept for logging
const maxCapturedBody = 4 << 10

// bodyTap copies the start of 4xx/5xx bodies aside. Report downloads are
// never buffered because they succeed with 200.
type bodyTap struct {
	chimiddleware.WrapResponseWriter
	failed bool
	body   bytes.Buffer
}

func (t *bodyTap) WriteHeader(code int) {
	t.failed = code >= http.StatusBadRequest
	t.WrapResponseWriter.WriteHeader(code)
}

func (t *bodyTap) Write(b []byte) (int, error) {
	if t.failed && t.body.Len() < maxCapturedBody {
		t.body.Write(b[:min(len(b), maxCapturedBody-t.body.Len())])
	}
	return t.WrapResponseWriter.Write(b)
}

// errorMessage returns the "error" member of a JSON error body, if any
func (t *bodyTap) errorMessage() string {
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(t.body.Bytes(), &resp); err != nil {
		return ""
	}
	return resp.Error
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Logger writes one line per request. The chi request ID is copied into the
// logging context and echoed in the X-Request-Id header.
func Logger(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			tap := &bodyTap{WrapResponseWriter: chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)}

			if id := chimiddleware.GetReqID(r.Context()); id != "" {
				r = r.WithContext(context.WithValue(r.Context(), logger.RequestIDKey, id))
				tap.Header().Set("X-Request-Id", id)
			}

			defer func() {
				status := tap.Status()
				attrs := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"bytes", tap.BytesWritten(),
					"remote_addr", r.RemoteAddr,
				}
				if msg := tap.errorMessage(); msg != "" {
					attrs = append(attrs, "error", msg)
				}
				log.WithContext(r.Context()).
					WithDuration(time.Since(start)).
					Log(r.Context(), levelFor(status), "HTTP request", attrs...)
			}()

			next.ServeHTTP(tap, r)
		})
	}
}
