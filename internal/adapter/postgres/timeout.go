package postgres

import (
	"context"
	"time"
)

// Bound limits ctx by timeout. A non-positive timeout only adds cancellation.
func Bound(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
