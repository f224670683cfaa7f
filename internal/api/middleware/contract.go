package middleware

import (
	"context"
	"time"

	"github.com/inkline/studio/pkg/ratelimit"
)

// HTTPObserver принимает метрики HTTP запросов
type HTTPObserver interface {
	ObserveHTTP(method, path, status string, d time.Duration)
}

// RateLimiter решает, пропускать ли запрос клиента
type RateLimiter interface {
	Allow(ctx context.Context, clientID string, policy ratelimit.Policy) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
