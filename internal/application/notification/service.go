package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/Evanshango/chatty-backend/internal/pkg/callctx"
)

// MaxBatch is the most notifications one request may mark; DynamoDB caps a
// transaction at 100 items.
const MaxBatch = 100

type Service interface {
	MarkRead(ctx context.Context, ids []string) error
}

type notificationStore interface {
	MarkRead(ctx context.Context, ids []string) error
}

type service struct {
	repo        notificationStore
	callTimeout time.Duration
}

func NewService(repo notificationStore, callTimeout time.Duration) Service {
	return &service{repo: repo, callTimeout: callTimeout}
}

// MarkRead sets read=true on every id atomically. Duplicate ids are collapsed
// and an empty list is a no-op. Ownership of the ids is not checked.
func (s *service) MarkRead(ctx context.Context, ids []string) error {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > MaxBatch {
		return fmt.Errorf("at most %d notifications per request: %w", MaxBatch, domain.ErrBadRequest)
	}

	ctx, cancel := callctx.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.repo.MarkRead(ctx, ids)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
