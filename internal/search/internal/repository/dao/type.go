package dao

import (
	"context"

	"github.com/ecodeclub/insight/internal/search/internal/domain"
)

type FeedbackDAO interface {
	SearchFeedback(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Feedback, error)
}

type AnyDAO interface {
	Input(ctx context.Context, index string, docID string, data string) error
}
