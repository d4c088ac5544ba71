package domain

import "time"

// Source 反馈的来源渠道
const (
	SourceGithub        = "github"
	SourceSlack         = "slack"
	SourceJira          = "jira"
	SourceEmail         = "email"
	SourceBugReport     = "bug-report"
	SourceTeams         = "teams"
	SourceDashboardForm = "dashboard-form"
)

// Feedback 一条用户反馈。ID 是去重键，
// 同一个 ID 再次写入会整条覆盖旧记录。
type Feedback struct {
	ID       string
	Source   string
	SourceID string
	Title    string
	Content  string
	Author   string
	Ctime    time.Time

	// 元数据里的通用子集单独建模
	Labels   []string
	Priority string
	// 来源相关的其它字段原样透传
	Extra map[string]string
}

// SourceCount 某个来源渠道的反馈数量
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// CategoryCount 分类统计，按出现次数降序
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Summary 概要视图
type Summary struct {
	TotalItems     int             `json:"totalItems"`
	Sources        []SourceCount   `json:"sources"`
	DateRange      string          `json:"dateRange"`
	TopCategories  []CategoryCount `json:"topCategories"`
	CriticalIssues []string        `json:"criticalIssues"`
	AvgSeverity    float64         `json:"avgSeverity"`
	// 生成时间，毫秒时间戳
	GeneratedAt int64 `json:"generatedAt"`
}

// JourneyStage 用户旅程中的一个阶段
type JourneyStage struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
	// high medium low 三档
	Satisfaction string `json:"satisfaction"`
}

// PriorityItem 优先级矩阵中的一个主题
type PriorityItem struct {
	Category string `json:"category"`
	// urgent high medium low
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// Insights 洞察视图，在概要之上叠加规则分析和 AI 增强
type Insights struct {
	Summary
	PainPoints     []string       `json:"painPoints"`
	Journey        []JourneyStage `json:"journey"`
	PriorityMatrix []PriorityItem `json:"priorityMatrix"`

	// 下面四个字段来自 AI 增强，失败时落到确定性的兜底值
	Sentiment       string   `json:"sentiment"`
	TrendingTopics  []string `json:"trendingTopics"`
	Recommendations []string `json:"recommendations"`
	PriorityActions []string `json:"priorityActions"`
	// 只要有一项增强真正调到了模型就是 true
	Enhanced bool `json:"enhanced"`
}

// Layer 七层模型中的一层
type Layer struct {
	Name       string `json:"name"`
	IssueCount int    `json:"issueCount"`
	// healthy warning critical
	Status string `json:"status"`
}

// Visualization 七层健康视图
type Visualization struct {
	Layers      []Layer `json:"layers"`
	TotalIssues int     `json:"totalIssues"`
	// [0,100]
	HealthScore int `json:"healthScore"`
	// excellent good fair poor
	OverallStatus string `json:"overallStatus"`
	TotalItems    int    `json:"totalItems"`
	DateRange     string `json:"dateRange"`
	GeneratedAt   int64  `json:"generatedAt"`
}
