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
	"testing"

	"github.com/ecodeclub/insight/internal/ai"
	aimocks "github.com/ecodeclub/insight/internal/ai/mocks"
	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnricher_Enrich(t *testing.T) {
	t.Parallel()
	t.Run("四类内容全部来自模型", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		aiSvc := aimocks.NewMockService(ctrl)
		answers := map[string]string{
			ai.BizEnrichSentiment:       "Positive.",
			ai.BizEnrichTopics:          "- docker\n- performance\n",
			ai.BizEnrichRecommendations: "1. Fix the crash on save\n2. Improve the install guide",
			ai.BizEnrichActions:         "Triage security reports\nShip a patch release",
		}
		aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
				answer, ok := answers[req.Biz]
				require.True(t, ok, "未知业务 %s", req.Biz)
				return ai.LLMResponse{Answer: answer, Tokens: 100}, nil
			}).Times(4)
		enricher := NewEnricher(aiSvc)

		got := enricher.Enrich(context.Background(), testRecords())
		assert.True(t, got.Enhanced)
		assert.Equal(t, "positive", got.Sentiment)
		assert.Equal(t, []string{"docker", "performance"}, got.TrendingTopics)
		assert.Equal(t, []string{
			"Fix the crash on save",
			"Improve the install guide",
		}, got.Recommendations)
		assert.Equal(t, []string{
			"Triage security reports",
			"Ship a patch release",
		}, got.PriorityActions)
	})

	t.Run("平台全挂走降级内容", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		aiSvc := aimocks.NewMockService(ctrl)
		aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			Return(ai.LLMResponse{}, errors.New("模拟平台不可用")).Times(4)
		enricher := NewEnricher(aiSvc)

		got := enricher.Enrich(context.Background(), testRecords())
		assert.False(t, got.Enhanced)
		assert.Equal(t, "neutral", got.Sentiment)
		assert.Equal(t, fallbackTopics(), got.TrendingTopics)
		assert.Equal(t, fallbackRecommendations(), got.Recommendations)
		assert.Equal(t, fallbackActions(), got.PriorityActions)
	})

	t.Run("配额不足同样走降级内容", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		aiSvc := aimocks.NewMockService(ctrl)
		aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			Return(ai.LLMResponse{}, fmt.Errorf("%w, biz enrich_sentiment", ai.ErrQuotaExceeded)).
			Times(4)
		enricher := NewEnricher(aiSvc)

		got := enricher.Enrich(context.Background(), testRecords())
		assert.False(t, got.Enhanced)
		assert.Equal(t, "neutral", got.Sentiment)
	})

	t.Run("部分成功部分降级", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		aiSvc := aimocks.NewMockService(ctrl)
		aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
				if req.Biz == ai.BizEnrichTopics {
					return ai.LLMResponse{Answer: "networking\nperformance"}, nil
				}
				return ai.LLMResponse{}, errors.New("模拟平台不可用")
			}).Times(4)
		enricher := NewEnricher(aiSvc)

		got := enricher.Enrich(context.Background(), testRecords())
		assert.True(t, got.Enhanced)
		assert.Equal(t, "neutral", got.Sentiment)
		assert.Equal(t, []string{"networking", "performance"}, got.TrendingTopics)
		assert.Equal(t, fallbackRecommendations(), got.Recommendations)
	})

	t.Run("答案畸形时落回默认值", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		aiSvc := aimocks.NewMockService(ctrl)
		aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
				if req.Biz == ai.BizEnrichSentiment {
					return ai.LLMResponse{Answer: "I would say it is mixed overall"}, nil
				}
				return ai.LLMResponse{Answer: "\n\n  \n"}, nil
			}).Times(4)
		enricher := NewEnricher(aiSvc)

		got := enricher.Enrich(context.Background(), testRecords())
		// 调用成功了，只是内容没法用
		assert.True(t, got.Enhanced)
		assert.Equal(t, "neutral", got.Sentiment)
		assert.Equal(t, fallbackTopics(), got.TrendingTopics)
		assert.Equal(t, fallbackActions(), got.PriorityActions)
	})

	t.Run("没有记录时完全不碰模型", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		aiSvc := aimocks.NewMockService(ctrl)
		enricher := NewEnricher(aiSvc)

		got := enricher.Enrich(context.Background(), nil)
		assert.False(t, got.Enhanced)
		assert.Equal(t, "neutral", got.Sentiment)
	})

	t.Run("采样有上限", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		aiSvc := aimocks.NewMockService(ctrl)
		var sample string
		aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
				sample = req.Input[0]
				return ai.LLMResponse{}, errors.New("只看采样")
			}).Times(4)
		enricher := NewEnricher(aiSvc)

		records := make([]domain.Feedback, 0, 20)
		for i := 0; i < 20; i++ {
			records = append(records, domain.Feedback{
				ID:      fmt.Sprintf("r%d", i),
				Source:  domain.SourceGithub,
				Title:   fmt.Sprintf("t%d", i),
				Content: strings.Repeat("x", 300),
			})
		}
		enricher.Enrich(context.Background(), records)
		lines := strings.Split(sample, "\n")
		// 只取前 12 条，单条内容截到 240 字符
		require.Len(t, lines, 12)
		for _, line := range lines {
			assert.LessOrEqual(t, len(line), 240+len("[github] t19: "))
		}
	})
}

func TestParseSentiment(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		answer string
		want   string
	}{
		{name: "标准答案", answer: "positive", want: "positive"},
		{name: "大小写和句号", answer: "Negative.", want: "negative"},
		{name: "带空白", answer: "  neutral \n", want: "neutral"},
		{name: "自由发挥", answer: "mostly positive I think", want: "neutral"},
		{name: "空答案", answer: "", want: "neutral"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseSentiment(tc.answer))
		})
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()
	fallback := []string{"fallback"}
	testCases := []struct {
		name   string
		answer string
		want   []string
	}{
		{
			name:   "短横线列表",
			answer: "- docker\n- networking",
			want:   []string{"docker", "networking"},
		},
		{
			name:   "数字编号",
			answer: "1. first\n2) second\n3. third",
			want:   []string{"first", "second", "third"},
		},
		{
			name:   "超出上限截断",
			answer: "a\nb\nc\nd\ne\nf\ng",
			want:   []string{"a", "b", "c", "d", "e"},
		},
		{
			name:   "空行被跳过",
			answer: "\n\nfirst\n\nsecond\n",
			want:   []string{"first", "second"},
		},
		{
			name:   "没有内容退回默认值",
			answer: "   \n\t\n",
			want:   fallback,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseList(tc.answer, fallback))
		})
	}
}
