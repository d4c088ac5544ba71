package domain

import (
	"fmt"
	"math"

	"github.com/ecodeclub/ekit/slice"
)

// BizEnrichSentiment 等是目前接入了 LLM 的业务，
// 对应洞察报告里的四类增强内容
const (
	BizEnrichSentiment       = "enrich_sentiment"
	BizEnrichTopics          = "enrich_topics"
	BizEnrichRecommendations = "enrich_recommendations"
	BizEnrichActions         = "enrich_actions"
)

type LLMRequest struct {
	Biz string
	// 请求 id
	Tid string
	// 业务方的输入
	Input []string
	// 业务相关的配置
	Config BizConfig

	// prompt 是把 Input 填进 PromptTemplate 之后生成的完整 Prompt
	prompt string
}

func (req *LLMRequest) Prompt() string {
	if req.prompt == "" {
		args := slice.Map(req.Input, func(idx int, src string) any {
			return src
		})
		prompt := fmt.Sprintf(req.Config.PromptTemplate, args...)
		// 超长输入直接截断，不报错
		if req.Config.MaxInput > 0 && len(prompt) > req.Config.MaxInput {
			prompt = prompt[:req.Config.MaxInput]
		}
		req.prompt = prompt
	}
	return req.prompt
}

// EstimatedTokens 估算这次调用要消耗的 token 数，
// 按四个字符折一个 token 向上取整。
// 配额预检和调用成功后的记账用的都是这个估算值，不是平台返回的实际用量。
func (req *LLMRequest) EstimatedTokens() int64 {
	return int64(math.Ceil(float64(len(req.Prompt())) / 4.0))
}

type LLMResponse struct {
	// 平台上报的实际 token 消耗
	Tokens int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Biz string
	// 使用的模型
	Model string

	Temperature float64
	TopP        float64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入。不计算 token，只约束字符串长度
	MaxInput int
	// 提示词模板，占位符用 %s
	PromptTemplate string
}

type LLMRecord struct {
	Id             int64
	Tid            string
	Biz            string
	Tokens         int64
	Input          []string
	Status         RecordStatus
	PromptTemplate string
	Answer         string
	Ctime          int64
	Utime          int64
}

type RecordStatus uint8

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)

func (s RecordStatus) ToUint8() uint8 {
	return uint8(s)
}
