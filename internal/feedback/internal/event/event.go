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

package event

import (
	"encoding/json"
	"time"

	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
)

const (
	// FeedbackEventName 外部采集层投递原始反馈的主题
	FeedbackEventName = "feedback_events"
	// SyncTopic 反馈变更之后通知搜索侧重建索引的主题
	SyncTopic = "feedback_sync_events"

	BizFeedback = "feedback"
)

// FeedbackEvent 是采集层投递的单条反馈。
// Metadata 是开放结构，这里只提取公共子集，解析不了的字段直接丢弃。
type FeedbackEvent struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	SourceID  string         `json:"sourceId"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Author    string         `json:"author"`
	CreatedAt int64          `json:"createdAt"`
	Metadata  map[string]any `json:"metadata"`
}

func (evt FeedbackEvent) toDomain() domain.Feedback {
	res := domain.Feedback{
		ID:       evt.ID,
		Source:   evt.Source,
		SourceID: evt.SourceID,
		Title:    evt.Title,
		Content:  evt.Content,
		Author:   evt.Author,
	}
	if evt.CreatedAt > 0 {
		res.Ctime = time.UnixMilli(evt.CreatedAt)
	} else {
		res.Ctime = time.Now()
	}
	res.Labels, res.Priority, res.Extra = normalizeMetadata(evt.Metadata)
	return res
}

// normalizeMetadata 把开放结构的元数据拆成类型化的公共子集。
// 类型对不上的字段按没有处理，元数据整体缺失就全部为空。
func normalizeMetadata(md map[string]any) (labels []string, priority string, extra map[string]string) {
	for key, val := range md {
		switch key {
		case "labels":
			switch vals := val.(type) {
			case []any:
				for _, item := range vals {
					if s, ok := item.(string); ok {
						labels = append(labels, s)
					}
				}
			case []string:
				labels = vals
			}
		case "priority":
			if s, ok := val.(string); ok {
				priority = s
			}
		default:
			s, ok := val.(string)
			if !ok {
				continue
			}
			if extra == nil {
				extra = make(map[string]string)
			}
			extra[key] = s
		}
	}
	return labels, priority, extra
}

// SyncEvent 搜索侧按 Biz 路由到对应索引，Data 是文档的 JSON
type SyncEvent struct {
	Biz   string `json:"biz"`
	BizID string `json:"bizId"`
	Data  string `json:"data"`
}

// FeedbackDoc 是同步给搜索侧的文档结构
type FeedbackDoc struct {
	ID        string   `json:"id"`
	Source    string   `json:"source"`
	SourceID  string   `json:"sourceId"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Labels    []string `json:"labels"`
	Priority  string   `json:"priority"`
	CreatedAt int64    `json:"createdAt"`
}

func NewSyncEvent(fb domain.Feedback) (SyncEvent, error) {
	doc := FeedbackDoc{
		ID:        fb.ID,
		Source:    fb.Source,
		SourceID:  fb.SourceID,
		Title:     fb.Title,
		Content:   fb.Content,
		Author:    fb.Author,
		Labels:    fb.Labels,
		Priority:  fb.Priority,
		CreatedAt: fb.Ctime.UnixMilli(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return SyncEvent{}, err
	}
	return SyncEvent{
		Biz:   BizFeedback,
		BizID: fb.ID,
		Data:  string(data),
	}, nil
}
