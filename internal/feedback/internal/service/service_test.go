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
	"testing"
	"time"

	"github.com/ecodeclub/insight/internal/ai"
	aimocks "github.com/ecodeclub/insight/internal/ai/mocks"
	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/ecodeclub/insight/internal/feedback/internal/event"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository/cache"
	cachemocks "github.com/ecodeclub/insight/internal/feedback/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/insight/internal/feedback/internal/repository/mocks"
	quotamocks "github.com/ecodeclub/insight/internal/quota/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	events []event.SyncEvent
	err    error
}

func (f *fakeProducer) Produce(_ context.Context, evt event.SyncEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

// newTestService 里模型一律不可用，走的全是确定性的降级路径
func newTestService(ctrl *gomock.Controller,
	repo repository.FeedbackRepo, ca cache.AggregateCache) (Service, *fakeProducer) {
	aiSvc := aimocks.NewMockService(ctrl)
	aiSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{}, errors.New("模拟平台不可用")).AnyTimes()
	tracker := quotamocks.NewMockTracker(ctrl)
	tracker.EXPECT().Consume(gomock.Any(), gomock.Any()).AnyTimes()
	producer := &fakeProducer{}
	svc := NewService(repo, ca, NewEnricher(aiSvc), tracker, producer)
	return svc, producer
}

func testRecords() []domain.Feedback {
	return []domain.Feedback{
		{
			ID:      "r1",
			Source:  domain.SourceGithub,
			Title:   "Crash on save",
			Content: "the editor crash on save",
			Ctime:   time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:      "r2",
			Source:  domain.SourceSlack,
			Title:   "Slow dashboard",
			Content: "dashboard is slow",
			Ctime:   time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:      "r3",
			Source:  domain.SourceGithub,
			Title:   "Nice",
			Content: "great tool",
			Ctime:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestService_Summary(t *testing.T) {
	t.Parallel()
	t.Run("缓存命中直接返回", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		want := domain.Summary{TotalItems: 42, DateRange: "2024-06-01 - 2024-06-03"}
		ca.EXPECT().GetSummary(gomock.Any()).Return(want, nil)
		svc, _ := newTestService(ctrl, repo, ca)

		got := svc.Summary(context.Background())
		assert.Equal(t, want, got)
	})

	t.Run("缓存未命中回源计算并写缓存", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		ca.EXPECT().GetSummary(gomock.Any()).Return(domain.Summary{}, cache.ErrKeyNotFound)
		repo.EXPECT().ListAll(gomock.Any()).Return(testRecords(), nil)
		var cached domain.Summary
		ca.EXPECT().SetSummary(gomock.Any(), gomock.Any(), summaryTTL).
			DoAndReturn(func(_ context.Context, res domain.Summary, _ time.Duration) error {
				cached = res
				return nil
			})
		svc, _ := newTestService(ctrl, repo, ca)

		got := svc.Summary(context.Background())
		assert.Equal(t, 3, got.TotalItems)
		assert.Equal(t, "2024-06-01 - 2024-06-03", got.DateRange)
		assert.Equal(t, []domain.SourceCount{
			{Source: domain.SourceGithub, Count: 2},
			{Source: domain.SourceSlack, Count: 1},
		}, got.Sources)
		assert.Equal(t, []string{"Crash on save (github)"}, got.CriticalIssues)
		assert.Equal(t, 1.67, got.AvgSeverity)
		assert.Positive(t, got.GeneratedAt)
		// 写进缓存的就是返回给调用方的
		assert.Equal(t, got, cached)
	})

	t.Run("存储不可用退到种子数据", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		ca.EXPECT().GetSummary(gomock.Any()).Return(domain.Summary{}, cache.ErrKeyNotFound)
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("模拟数据库宕机"))
		// 尽力写回种子数据
		repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []domain.Feedback) int64 {
				assert.Len(t, records, 8)
				return int64(len(records))
			})
		// 缓存写失败同样不影响返回
		ca.EXPECT().SetSummary(gomock.Any(), gomock.Any(), summaryTTL).
			Return(errors.New("模拟 redis 宕机"))
		svc, _ := newTestService(ctrl, repo, ca)

		got := svc.Summary(context.Background())
		assert.Equal(t, 8, got.TotalItems)
		assert.NotEqual(t, "No data", got.DateRange)
	})

	t.Run("空库同样退到种子数据", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		ca.EXPECT().GetSummary(gomock.Any()).Return(domain.Summary{}, cache.ErrKeyNotFound)
		repo.EXPECT().ListAll(gomock.Any()).Return([]domain.Feedback{}, nil)
		repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(int64(8))
		ca.EXPECT().SetSummary(gomock.Any(), gomock.Any(), summaryTTL).Return(nil)
		svc, _ := newTestService(ctrl, repo, ca)

		got := svc.Summary(context.Background())
		assert.Equal(t, 8, got.TotalItems)
	})
}

func TestService_Insights(t *testing.T) {
	t.Parallel()
	t.Run("模型不可用时洞察走降级内容", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		ca.EXPECT().GetInsights(gomock.Any()).Return(domain.Insights{}, cache.ErrKeyNotFound)
		repo.EXPECT().ListAll(gomock.Any()).Return(testRecords(), nil)
		ca.EXPECT().SetInsights(gomock.Any(), gomock.Any(), insightsTTL).Return(nil)
		svc, _ := newTestService(ctrl, repo, ca)

		got := svc.Insights(context.Background())
		assert.Equal(t, 3, got.TotalItems)
		assert.False(t, got.Enhanced)
		assert.Equal(t, "neutral", got.Sentiment)
		assert.Equal(t, fallbackTopics(), got.TrendingTopics)
		assert.Equal(t, fallbackRecommendations(), got.Recommendations)
		assert.Equal(t, fallbackActions(), got.PriorityActions)
		assert.Len(t, got.Journey, 4)
		assert.Len(t, got.PriorityMatrix, 5)
		// crash 和 slow 都在痛点里
		assert.Contains(t, got.PainPoints, "crash (1 mentions)")
		assert.Contains(t, got.PainPoints, "slow (1 mentions)")
	})

	t.Run("模型不可用时洞察完全可复现", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		ca.EXPECT().GetInsights(gomock.Any()).
			Return(domain.Insights{}, cache.ErrKeyNotFound).Times(2)
		repo.EXPECT().ListAll(gomock.Any()).Return(testRecords(), nil).Times(2)
		ca.EXPECT().SetInsights(gomock.Any(), gomock.Any(), insightsTTL).Return(nil).Times(2)
		svc, _ := newTestService(ctrl, repo, ca)

		first := svc.Insights(context.Background())
		second := svc.Insights(context.Background())
		// 除生成时间外逐字段一致
		first.GeneratedAt = 0
		second.GeneratedAt = 0
		assert.Equal(t, first, second)
	})
}

func TestService_Visualization(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockFeedbackRepo(ctrl)
	ca := cachemocks.NewMockAggregateCache(ctrl)
	ca.EXPECT().GetVisualization(gomock.Any()).
		Return(domain.Visualization{}, cache.ErrKeyNotFound)
	records := []domain.Feedback{
		{ID: "r1", Content: "tcp timeout against the api"},
		{ID: "r2", Content: "tls certificate expired"},
	}
	repo.EXPECT().ListAll(gomock.Any()).Return(records, nil)
	ca.EXPECT().SetVisualization(gomock.Any(), gomock.Any(), visualizationTTL).Return(nil)
	svc, _ := newTestService(ctrl, repo, ca)

	got := svc.Visualization(context.Background())
	require.Len(t, got.Layers, 7)
	assert.Equal(t, 2, got.TotalItems)
	// tcp -> Transport, timeout -> Session, api -> Application, tls/certificate -> Presentation
	assert.Equal(t, 4, got.TotalIssues)
	assert.Equal(t, 80, got.HealthScore)
	assert.Equal(t, "excellent", got.OverallStatus)
}

func TestService_UpsertBatch(t *testing.T) {
	t.Parallel()
	t.Run("写入后作废缓存并同步搜索", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		records := testRecords()
		repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(int64(3))
		ca.EXPECT().Clear(gomock.Any()).Return(nil)
		svc, producer := newTestService(ctrl, repo, ca)

		saved := svc.UpsertBatch(context.Background(), records)
		assert.Equal(t, int64(3), saved)
		require.Len(t, producer.events, 3)
		assert.Equal(t, event.BizFeedback, producer.events[0].Biz)
		assert.Equal(t, "r1", producer.events[0].BizID)
		assert.JSONEq(t, `{
			"id": "r1",
			"source": "github",
			"sourceId": "",
			"title": "Crash on save",
			"content": "the editor crash on save",
			"author": "",
			"labels": null,
			"priority": "",
			"createdAt": 1717408800000
		}`, producer.events[0].Data)
	})

	t.Run("丢弃缺少id的记录", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, records []domain.Feedback) int64 {
				require.Len(t, records, 1)
				assert.Equal(t, "r1", records[0].ID)
				// 缺失的产生时间被补上了
				assert.False(t, records[0].Ctime.IsZero())
				return 1
			})
		ca.EXPECT().Clear(gomock.Any()).Return(nil)
		svc, _ := newTestService(ctrl, repo, ca)

		saved := svc.UpsertBatch(context.Background(), []domain.Feedback{
			{Title: "没有 id 的脏数据"},
			{ID: "r1", Title: "ok"},
		})
		assert.Equal(t, int64(1), saved)
	})

	t.Run("全部无效时不碰存储和缓存", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		svc, _ := newTestService(ctrl, repo, ca)

		saved := svc.UpsertBatch(context.Background(), []domain.Feedback{{Title: "没有 id"}})
		assert.Equal(t, int64(0), saved)
	})

	t.Run("同步事件失败不影响写入结果", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		repo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(int64(3))
		ca.EXPECT().Clear(gomock.Any()).Return(errors.New("模拟 redis 宕机"))
		svc, producer := newTestService(ctrl, repo, ca)
		producer.err = errors.New("模拟 kafka 宕机")

		saved := svc.UpsertBatch(context.Background(), testRecords())
		assert.Equal(t, int64(3), saved)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()
	t.Run("分页和总数并行取回", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		repo.EXPECT().List(gomock.Any(), 10, 2).Return(testRecords()[:2], nil)
		repo.EXPECT().Total(gomock.Any()).Return(int64(37), nil)
		svc, _ := newTestService(ctrl, repo, ca)

		records, total, err := svc.List(context.Background(), 10, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(37), total)
		assert.Len(t, records, 2)
	})

	t.Run("任一路失败整体报错", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockFeedbackRepo(ctrl)
		ca := cachemocks.NewMockAggregateCache(ctrl)
		repo.EXPECT().List(gomock.Any(), 0, 10).Return(nil, errors.New("模拟数据库宕机"))
		repo.EXPECT().Total(gomock.Any()).Return(int64(0), nil).MaxTimes(1)
		svc, _ := newTestService(ctrl, repo, ca)

		_, _, err := svc.List(context.Background(), 0, 10)
		assert.Error(t, err)
	})
}
