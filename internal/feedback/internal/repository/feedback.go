// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./feedback.go -destination=./mocks/feedback.mock.go -package=repomocks FeedbackRepo
type FeedbackRepo interface {
	// SaveBatch 逐条按 id 幂等落库。
	// 单条失败只记日志不中断，返回成功条数。
	SaveBatch(ctx context.Context, records []domain.Feedback) int64
	// ListAll 返回全量反馈，按产生时间降序
	ListAll(ctx context.Context) ([]domain.Feedback, error)
	List(ctx context.Context, offset, limit int) ([]domain.Feedback, error)
	Total(ctx context.Context) (int64, error)
}

type feedbackRepo struct {
	dao    dao.FeedbackDAO
	logger *elog.Component
}

func NewFeedbackRepo(d dao.FeedbackDAO) FeedbackRepo {
	return &feedbackRepo{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}

func (r *feedbackRepo) SaveBatch(ctx context.Context, records []domain.Feedback) int64 {
	var saved int64
	for _, record := range records {
		err := r.dao.Save(ctx, r.toEntity(record))
		if err != nil {
			r.logger.Error("保存反馈失败",
				elog.FieldErr(err),
				elog.String("id", record.ID),
				elog.String("source", record.Source))
			continue
		}
		saved++
	}
	return saved
}

func (r *feedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	entities, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Feedback) domain.Feedback {
		return r.toDomain(src)
	}), nil
}

func (r *feedbackRepo) List(ctx context.Context, offset, limit int) ([]domain.Feedback, error) {
	entities, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Feedback) domain.Feedback {
		return r.toDomain(src)
	}), nil
}

func (r *feedbackRepo) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *feedbackRepo) toEntity(fb domain.Feedback) dao.Feedback {
	res := dao.Feedback{
		RecordID: fb.ID,
		Source:   fb.Source,
		SourceID: fb.SourceID,
		Title:    fb.Title,
		Content:  fb.Content,
		Author:   fb.Author,
		Priority: fb.Priority,
	}
	if !fb.Ctime.IsZero() {
		res.CreatedAt = fb.Ctime.UnixMilli()
	}
	if len(fb.Labels) > 0 {
		res.Labels = sqlx.JsonColumn[[]string]{Valid: true, Val: fb.Labels}
	}
	if len(fb.Extra) > 0 {
		res.Extra = sqlx.JsonColumn[map[string]string]{Valid: true, Val: fb.Extra}
	}
	return res
}

// toDomain 里的元数据按可用为准，脏数据直接当空处理
func (r *feedbackRepo) toDomain(fb dao.Feedback) domain.Feedback {
	res := domain.Feedback{
		ID:       fb.RecordID,
		Source:   fb.Source,
		SourceID: fb.SourceID,
		Title:    fb.Title,
		Content:  fb.Content,
		Author:   fb.Author,
		Ctime:    time.UnixMilli(fb.CreatedAt),
		Priority: fb.Priority,
	}
	if fb.Labels.Valid {
		res.Labels = fb.Labels.Val
	}
	if fb.Extra.Valid {
		res.Extra = fb.Extra.Val
	}
	return res
}
