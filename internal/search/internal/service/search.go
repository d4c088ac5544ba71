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

package service

import (
	"context"
	"strings"

	"github.com/ecodeclub/insight/internal/search/internal/domain"
	"github.com/ecodeclub/insight/internal/search/internal/repository"
)

type SearchService interface {
	// Search keywords 用空格分隔，裸词检索全部列，col:词 只检索指定列
	Search(ctx context.Context, offset, limit int, keywords string) ([]domain.Feedback, error)
}

type searchSvc struct {
	feedbackRepo repository.FeedbackRepo
}

func (s *searchSvc) Search(ctx context.Context, offset, limit int, keywords string) ([]domain.Feedback, error) {
	return s.feedbackRepo.SearchFeedback(ctx, offset, limit, s.getQueryMeta(keywords))
}

func (s *searchSvc) getQueryMeta(keywords string) []domain.QueryMeta {
	keywordList := strings.Split(keywords, " ")
	metas := make([]domain.QueryMeta, 0, len(keywordList))
	for _, keyword := range keywordList {
		params := strings.Split(keyword, ":")
		if len(params) == 1 {
			metas = append(metas, domain.QueryMeta{
				Keyword: params[0],
				IsAll:   true,
			})
		}
		if len(params) == 2 {
			metas = append(metas, domain.QueryMeta{
				Keyword: params[1],
				Col:     params[0],
			})
		}
	}
	return metas
}

func NewSearchSvc(feedbackRepo repository.FeedbackRepo) SearchService {
	return &searchSvc{
		feedbackRepo: feedbackRepo,
	}
}
