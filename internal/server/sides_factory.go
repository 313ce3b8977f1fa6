package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/sports-feed-service/internal/config"
	"github.com/preston-bernstein/sports-feed-service/internal/logging"
	"github.com/preston-bernstein/sports-feed-service/internal/store"
)

// buildSideStore returns the NHL side lookup table and a close hook.
// Redis is used when configured and reachable; otherwise an in-memory table.
func buildSideStore(cfg config.SideCacheConfig, logger *slog.Logger) (store.SideStore, func() error) {
	noop := func() error { return nil }
	if cfg.RedisURL == "" {
		return store.NewMemoryStore(cfg.TTL), noop
	}

	client, err := store.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logging.Warn(logger, "invalid redis url, using in-memory side store", "error", err)
		return store.NewMemoryStore(cfg.TTL), noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn(logger, "redis unreachable, using in-memory side store", "error", err)
		_ = client.Close()
		return store.NewMemoryStore(cfg.TTL), noop
	}

	logging.Info(logger, "using redis side store", slog.String("addr", client.Options().Addr))
	return store.NewRedisStore(client, cfg.TTL), client.Close
}
