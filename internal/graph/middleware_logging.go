package graph

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avrorin/graphql-todo/internal/logger"
)

// responseWriter wraps http.ResponseWriter to capture the status code and
// the number of bytes written for access logging.
type responseWriter struct {
	http.ResponseWriter

	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.size += n

	return n, err
}

// withLogging attaches a request-scoped logger (tagged with a fresh request
// id) to the context and emits one access log entry per request.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestLogger := h.logger.With().Str("request_id", uuid.NewString()).Logger()
		r = r.WithContext(requestLogger.WithContext(r.Context()))

		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
