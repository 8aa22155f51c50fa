package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// RequestLogger tags the context with a request id, echoes it in
// X-Request-ID and logs one http_request line per request.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := chimw.GetReqID(r.Context())
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", id)
			r = r.WithContext(logger.WithRequestID(r.Context(), id))

			rw := wrap(w)
			next.ServeHTTP(rw, r)

			latency := float64(time.Since(start).Microseconds()) / 1000
			log.WithContext(r.Context()).HTTPRequest(r.Method, r.URL.Path, rw.statusCode, latency, ClientIP(r))
		})
	}
}
