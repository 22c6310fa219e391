package cache

import (
	"context"
	"errors"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

// MenuCache caches the full menu listing. The menu is small and
// read-only, so the whole list lives under one key.
type MenuCache interface {
	Get(ctx context.Context) ([]domain.MenuItem, error)
	Set(ctx context.Context, items []domain.MenuItem) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
