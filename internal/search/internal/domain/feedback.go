package domain

import "time"

// 定义的查询元数据
type QueryMeta struct {
	// 查询的内容
	Keyword string
	// 是否是全量字段的
	IsAll bool
	// 需要查询的关键字
	Col string
}

// Feedback 检索视角下的反馈文档
type Feedback struct {
	ID       string
	Source   string
	SourceID string
	Title    string
	Content  string
	Author   string
	Labels   []string
	Priority string
	Ctime    time.Time
	// 命中关键字的高亮片段，key 是列名
	Highlights map[string][]string
}
