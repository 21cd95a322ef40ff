package storage

import (
	"context"
	"errors"
	"time"
)

var ErrClosed = errors.New("storage: store closed")

// Store is a flat key-value store. Load and UpdatedAt return nil, nil for a
// key that was never saved.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
	UpdatedAt(ctx context.Context, key string) (*time.Time, error)
	Close() error
}
