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
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/insight/internal/ai"
	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

const (
	// 采样上限是保守的固定值，任何时候都不把全量数据发给模型
	sampleSize       = 12
	sampleContentMax = 240

	maxPromptChars = 4096
	maxListItems   = 5

	defaultModel = "glm-4-flash"
)

const (
	systemPrompt = "You analyze aggregated user feedback for a product team. Answer in English, be terse."

	sentimentPrompt = "Classify the overall sentiment of the following user feedback as exactly one word: positive, neutral or negative.\n\nFeedback:\n%s"

	topicsPrompt = "List at most 5 short trending topics in the following user feedback, one per line, no numbering, no extra text.\n\nFeedback:\n%s"

	recommendationsPrompt = "Give at most 5 actionable recommendations for the product team based on the following user feedback, one per line, no numbering.\n\nFeedback:\n%s"

	actionsPrompt = "Give at most 5 priority actions ordered by urgency based on the following user feedback, one per line, no numbering.\n\nFeedback:\n%s"
)

// 模型不可用时的固定降级内容。
// 内容必须稳定，保证关掉 AI 路径之后洞察结果完全可复现。
const fallbackSentiment = "neutral"

func fallbackTopics() []string {
	return []string{"performance", "security", "docker", "networking", "usability"}
}

func fallbackRecommendations() []string {
	return []string{
		"Review the most recent critical issues first",
		"Prioritize fixes for crash and data loss reports",
		"Follow up with authors of blocking feedback",
	}
}

func fallbackActions() []string {
	return []string{
		"Triage security reports immediately",
		"Schedule performance investigations",
		"Plan compatibility testing for the next release",
	}
}

// enrichment 是洞察报告里由模型增强的部分
type enrichment struct {
	Sentiment       string
	TrendingTopics  []string
	Recommendations []string
	PriorityActions []string
	// Enhanced 表示至少有一类内容真的来自模型
	Enhanced bool
}

// Enricher 调模型生成增强内容。
// 任何失败，包括配额不足、平台故障和答案解析不了，
// 都只会落回固定的降级内容，绝不把错误抛给调用方。
type Enricher struct {
	svc    ai.LLMService
	model  string
	logger *elog.Component
}

func NewEnricher(svc ai.LLMService) *Enricher {
	model := econf.GetString("ai.model")
	if model == "" {
		model = defaultModel
	}
	return &Enricher{
		svc:    svc,
		model:  model,
		logger: elog.DefaultLogger,
	}
}

func (e *Enricher) Enrich(ctx context.Context, records []domain.Feedback) enrichment {
	res := enrichment{
		Sentiment:       fallbackSentiment,
		TrendingTopics:  fallbackTopics(),
		Recommendations: fallbackRecommendations(),
		PriorityActions: fallbackActions(),
	}
	sample := sampleText(records)
	if sample == "" {
		return res
	}
	if answer, ok := e.ask(ctx, ai.BizEnrichSentiment, sentimentPrompt, sample); ok {
		res.Sentiment = parseSentiment(answer)
		res.Enhanced = true
	}
	if answer, ok := e.ask(ctx, ai.BizEnrichTopics, topicsPrompt, sample); ok {
		res.TrendingTopics = parseList(answer, fallbackTopics())
		res.Enhanced = true
	}
	if answer, ok := e.ask(ctx, ai.BizEnrichRecommendations, recommendationsPrompt, sample); ok {
		res.Recommendations = parseList(answer, fallbackRecommendations())
		res.Enhanced = true
	}
	if answer, ok := e.ask(ctx, ai.BizEnrichActions, actionsPrompt, sample); ok {
		res.PriorityActions = parseList(answer, fallbackActions())
		res.Enhanced = true
	}
	return res
}

func (e *Enricher) ask(ctx context.Context, biz, promptTemplate, sample string) (string, bool) {
	resp, err := e.svc.Invoke(ctx, ai.LLMRequest{
		Biz:   biz,
		Tid:   shortuuid.New(),
		Input: []string{sample},
		Config: ai.BizConfig{
			Biz:            biz,
			Model:          e.model,
			Temperature:    0.3,
			TopP:           0.9,
			SystemPrompt:   systemPrompt,
			MaxInput:       maxPromptChars,
			PromptTemplate: promptTemplate,
		},
	})
	if err != nil {
		if errors.Is(err, ai.ErrQuotaExceeded) {
			e.logger.Info("生成配额不足，使用默认增强内容", elog.String("biz", biz))
		} else {
			e.logger.Warn("调用模型失败，使用默认增强内容",
				elog.FieldErr(err), elog.String("biz", biz))
		}
		return "", false
	}
	return resp.Answer, true
}

// sampleText 取最近的若干条反馈拼采样文本，内容超长截断。
// 调用方传进来的记录已经按产生时间降序。
func sampleText(records []domain.Feedback) string {
	n := len(records)
	if n > sampleSize {
		n = sampleSize
	}
	parts := make([]string, 0, n)
	for _, fb := range records[:n] {
		content := fb.Content
		if len(content) > sampleContentMax {
			content = content[:sampleContentMax]
		}
		parts = append(parts, fmt.Sprintf("[%s] %s: %s", fb.Source, fb.Title, content))
	}
	return strings.Join(parts, "\n")
}

// parseSentiment 只认三个标签，其余一律按 neutral 处理
func parseSentiment(answer string) string {
	s := strings.ToLower(strings.TrimSpace(answer))
	s = strings.TrimSuffix(s, ".")
	switch s {
	case "positive", "neutral", "negative":
		return s
	default:
		return fallbackSentiment
	}
}

// parseList 按行拆答案，剥掉常见的列表前缀，
// 条数封顶，拆完一条都没有就退回默认值
func parseList(answer string, fallback []string) []string {
	lines := strings.Split(answer, "\n")
	res := make([]string, 0, maxListItems)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789.) ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res = append(res, line)
		if len(res) >= maxListItems {
			break
		}
	}
	if len(res) == 0 {
		return fallback
	}
	return res
}
