package kvstore

import "errors"

var (
	// ErrIncr возвращается при ошибке инкремента счётчика
	ErrIncr = errors.New("kvstore: failed to increment counter")

	// ErrExpire возвращается при ошибке установки TTL
	ErrExpire = errors.New("kvstore: failed to set expiry")

	// ErrPing возвращается, когда Redis недоступен
	ErrPing = errors.New("kvstore: redis unreachable")
)
