package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда значение отсутствует в кэше
	ErrCacheMiss = errors.New("stats cache: cache miss")

	// ErrInternal возвращается при ошибках обращения к Redis
	ErrInternal = errors.New("stats cache: internal error")
)
