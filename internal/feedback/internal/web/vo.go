package web

import (
	"time"

	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
)

// FeedbackRecord 是批量写入和后台列表共用的记录结构
type FeedbackRecord struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	SourceID string `json:"sourceId,omitempty"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author,omitempty"`
	// 反馈产生时间，毫秒时间戳，缺省按服务端收到的时间算
	CreatedAt int64             `json:"createdAt,omitempty"`
	Labels    []string          `json:"labels,omitempty"`
	Priority  string            `json:"priority,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

type BatchReq struct {
	Records []FeedbackRecord `json:"records"`
}

type BatchResp struct {
	Saved int64 `json:"saved"`
}

// FormReq 是仪表盘上的反馈表单，记录 id 由服务端生成
type FormReq struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Author   string   `json:"author,omitempty"`
	Labels   []string `json:"labels,omitempty"`
	Priority string   `json:"priority,omitempty"`
}

type FormResp struct {
	ID string `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type FeedbackList struct {
	Total   int64            `json:"total"`
	Records []FeedbackRecord `json:"records"`
}

func (r FeedbackRecord) toDomain() domain.Feedback {
	res := domain.Feedback{
		ID:       r.ID,
		Source:   r.Source,
		SourceID: r.SourceID,
		Title:    r.Title,
		Content:  r.Content,
		Author:   r.Author,
		Labels:   r.Labels,
		Priority: r.Priority,
		Extra:    r.Extra,
	}
	if r.CreatedAt > 0 {
		res.Ctime = time.UnixMilli(r.CreatedAt)
	}
	return res
}

func newFeedbackRecord(fb domain.Feedback) FeedbackRecord {
	return FeedbackRecord{
		ID:        fb.ID,
		Source:    fb.Source,
		SourceID:  fb.SourceID,
		Title:     fb.Title,
		Content:   fb.Content,
		Author:    fb.Author,
		CreatedAt: fb.Ctime.UnixMilli(),
		Labels:    fb.Labels,
		Priority:  fb.Priority,
		Extra:     fb.Extra,
	}
}
