package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// AccessLog логирует каждый запрос: метод, путь, статус, длительность и клиента
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			logger.Info("%s %s - status=%d bytes=%d duration=%s client=%s",
				r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start).Round(time.Millisecond), ClientIP(r))
		})
	}
}
