package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"backoffice/pkg/logger"
)

// Middleware отклоняет запрос с 429, когда лимитер не выдает токен.
// limitQPS идет в заголовок X-RateLimit-Limit как справочное значение.
func Middleware(log handlerLogger, limitQPS int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			routePath := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					routePath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", routePath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("Rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, routePath).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limitQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("Failed to write rate limit response")
			}
		})
	}
}
