package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/inkline/studio/internal/api/handlers"
)

const (
	bearerPrefix = "Bearer "

	msgUnauthorized = "unauthorized"
)

// AdminAuth проверяет заголовок Authorization: Bearer <token>.
// Сравнение токена выполняется за постоянное время
func AdminAuth(token string, logger Logger) mux.MiddlewareFunc {
	expected := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(expected) == 0 || !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - Missing admin token: client=%s", r.Method, r.URL.Path, ClientIP(r))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			provided := []byte(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if subtle.ConstantTimeCompare(provided, expected) != 1 {
				logger.Warn("%s %s - Invalid admin token: client=%s", r.Method, r.URL.Path, ClientIP(r))
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
