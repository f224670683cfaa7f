package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 2 * time.Second

// Config параметры подключения к Redis
type Config struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration // dial/read/write timeout, 0 - 2s
}

// Store атомарный счётчик поверх Redis INCR/EXPIRE
type Store struct {
	client *redis.Client
}

// New создает клиент Redis. Соединение устанавливается лениво при первом запросе
func New(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	return &Store{client: client}
}

// NewWithClient оборачивает существующий клиент
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Incr атомарно увеличивает счётчик; несуществующий ключ создаётся со значением 1
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: Incr - key %s: %v", ErrIncr, key, err)
	}
	return count, nil
}

// Expire устанавливает TTL ключа
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Expire - key %s: %v", ErrExpire, key, err)
	}
	return nil
}

// Ping проверяет доступность Redis
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPing, err)
	}
	return nil
}

// Close закрывает соединения
func (s *Store) Close() error {
	return s.client.Close()
}
