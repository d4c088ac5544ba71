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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/insight/internal/search/internal/domain"
)

type SearchReq struct {
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
	Keywords string `json:"keywords,omitempty"`
}

type EsVal struct {
	Val        string   `json:"val"`
	Highlights []string `json:"highlights,omitempty"`
}

type Feedback struct {
	ID        string   `json:"id,omitempty"`
	Source    string   `json:"source,omitempty"`
	SourceID  string   `json:"sourceId,omitempty"`
	Title     EsVal    `json:"title,omitempty"`
	Content   EsVal    `json:"content,omitempty"`
	Author    string   `json:"author,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Priority  string   `json:"priority,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

type SearchResult struct {
	Feedbacks []Feedback `json:"feedbacks,omitempty"`
}

func NewSearchResult(fbs []domain.Feedback) SearchResult {
	return SearchResult{
		Feedbacks: slice.Map(fbs, func(idx int, src domain.Feedback) Feedback {
			return newFeedback(src)
		}),
	}
}

func newFeedback(fb domain.Feedback) Feedback {
	return Feedback{
		ID:       fb.ID,
		Source:   fb.Source,
		SourceID: fb.SourceID,
		Title: EsVal{
			Val:        fb.Title,
			Highlights: fb.Highlights["title"],
		},
		Content: EsVal{
			Val:        fb.Content,
			Highlights: fb.Highlights["content"],
		},
		Author:    fb.Author,
		Labels:    fb.Labels,
		Priority:  fb.Priority,
		CreatedAt: fb.Ctime.Format(time.DateTime),
	}
}
