package repository

import (
	"context"

	"github.com/ecodeclub/insight/internal/search/internal/domain"
)

type FeedbackRepo interface {
	SearchFeedback(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Feedback, error)
}

type AnyRepo interface {
	Input(ctx context.Context, index string, docID string, data string) error
}
