package repo

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrVersionConflict = errors.New("entry version conflict")
)

// KV локальное хранилище ключ-значение, аналог localStorage витрины.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
