package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/sports-feed-service/internal/logging"
)

// logWithProvider emits a log entry through the request-scoped logger when present and always includes the sport.
func logWithProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, sport string, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldSport, sport))
	logger.Log(ctx, level, msg, args...)
}
