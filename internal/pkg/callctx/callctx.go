package callctx

import (
	"context"
	"time"
)

// WithTimeout bounds a single collaborator call. A non-positive d only
// attaches a cancel func, leaving ctx's own deadline in charge.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
