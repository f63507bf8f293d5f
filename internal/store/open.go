package store

import (
	"context"
	"fmt"

	"github.com/wichananm65/kriuke-snack/internal/config"
)

// Open returns the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (KV, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryKV(), nil
	case "file", "":
		return NewFileKV(cfg.Dir)
	case "postgres":
		return OpenPostgres(ctx, cfg.DatabaseURL)
	case "redis":
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
