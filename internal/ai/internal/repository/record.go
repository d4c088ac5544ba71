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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/insight/internal/ai/internal/domain"
	"github.com/ecodeclub/insight/internal/ai/internal/repository/dao"
)

type LLMLogRepo interface {
	SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error)
}

type llmLogRepo struct {
	logDao dao.LLMRecordDAO
}

func NewLLMLogRepo(logDao dao.LLMRecordDAO) LLMLogRepo {
	return &llmLogRepo{
		logDao: logDao,
	}
}

func (r *llmLogRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	return r.logDao.Save(ctx, r.toEntity(l))
}

func (r *llmLogRepo) toEntity(l domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:     l.Id,
		Tid:    l.Tid,
		Biz:    l.Biz,
		Tokens: l.Tokens,
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   l.Input,
		},
		Status:         l.Status.ToUint8(),
		PromptTemplate: sqlx.NewNullString(l.PromptTemplate),
		Answer:         sqlx.NewNullString(l.Answer),
	}
}
