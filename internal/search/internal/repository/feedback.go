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

	"github.com/ecodeclub/insight/internal/search/internal/domain"
	"github.com/ecodeclub/insight/internal/search/internal/repository/dao"
)

type feedbackRepository struct {
	feedbackDao dao.FeedbackDAO
}

func NewFeedbackRepo(feedbackDao dao.FeedbackDAO) FeedbackRepo {
	return &feedbackRepository{
		feedbackDao: feedbackDao,
	}
}

func (f *feedbackRepository) SearchFeedback(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Feedback, error) {
	feedbacks, err := f.feedbackDao.SearchFeedback(ctx, offset, limit, queryMetas)
	if err != nil {
		return nil, err
	}
	ans := make([]domain.Feedback, 0, len(feedbacks))
	for _, fb := range feedbacks {
		ans = append(ans, f.toDomain(fb))
	}
	return ans, err
}

func (*feedbackRepository) toDomain(fb dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:         fb.ID,
		Source:     fb.Source,
		SourceID:   fb.SourceID,
		Title:      fb.Title,
		Content:    fb.Content,
		Author:     fb.Author,
		Labels:     fb.Labels,
		Priority:   fb.Priority,
		Ctime:      time.UnixMilli(fb.CreatedAt),
		Highlights: fb.EsHighLights,
	}
}
