package event

// SyncTopic 业务侧投递文档变更，搜索侧消费后写入对应索引
const SyncTopic = "feedback_sync_events"

// SyncEvent Data 是文档的 JSON，按 Biz 路由到 {biz}_index
type SyncEvent struct {
	Biz   string `json:"biz"`
	BizID string `json:"bizId"`
	Data  string `json:"data"`
}
