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

package dao

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/insight/internal/search/internal/domain"
	"github.com/olivere/elastic/v7"
)

const (
	FeedbackIndexName = "feedback_index"
)

type Feedback struct {
	ID           string              `json:"id"`
	Source       string              `json:"source"`
	SourceID     string              `json:"sourceId"`
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	Author       string              `json:"author"`
	Labels       []string            `json:"labels"`
	Priority     string              `json:"priority"`
	CreatedAt    int64               `json:"createdAt"`
	EsHighLights map[string][]string `json:"-"`
}

type FeedbackElasticDAO struct {
	client  *elastic.Client
	metas   map[string]FieldConfig
	builder searchBuilder
	index   string
}

func (f *FeedbackElasticDAO) SearchFeedback(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Feedback, error) {
	cols, highlights := f.builder.build(f.metas, queryMetas)
	query := elastic.NewBoolQuery().Must(
		elastic.NewBoolQuery().Should(cols...))
	builder := f.client.Search(f.index).
		From(offset).
		Size(limit).
		Query(query)
	if len(highlights) > 0 {
		builder = builder.Highlight(elastic.NewHighlight().Fields(highlights...))
	}
	resp, err := builder.Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Feedback, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var (
			ele Feedback
		)
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		ele.EsHighLights = getEsHighLights(hit.Highlight)
		res = append(res, ele)
	}
	return res, nil
}

func NewFeedbackElasticDAO(client *elastic.Client, metas map[string]FieldConfig, index string) *FeedbackElasticDAO {
	return &FeedbackElasticDAO{
		client:  client,
		metas:   metas,
		index:   index,
		builder: newSearchBuilder(),
	}
}
