package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/inkline/studio/internal/api/handlers"
	"github.com/inkline/studio/pkg/ratelimit"
)

// RateLimit пропускает запрос только если лимитер разрешил действие клиента.
// Отказ отвечает 429 и не вызывает следующий handler
func RateLimit(limiter RateLimiter, policy ratelimit.Policy, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := ClientIP(r)

			if !limiter.Allow(r.Context(), client, policy) {
				logger.Warn("%s %s - Rate limited: policy=%s, client=%s", r.Method, r.URL.Path, policy.Identifier, client)
				handlers.RespondTooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
