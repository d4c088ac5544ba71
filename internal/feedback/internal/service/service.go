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
	"time"

	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/ecodeclub/insight/internal/feedback/internal/event"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository/cache"
	"github.com/ecodeclub/insight/internal/feedback/internal/service/classify"
	"github.com/ecodeclub/insight/internal/quota"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	summaryTTL       = 5 * time.Minute
	insightsTTL      = 10 * time.Minute
	visualizationTTL = 5 * time.Minute
)

// Service 对外提供三类聚合读和写入口。
// 三个读操作永远返回结构完整的结果：缓存、存储、模型任何一环失败
// 都在内部降级消化，这是对调用方的硬承诺，所以签名里没有 error。
// 缓存未命中时并发的重复计算不做合并，后写覆盖先写，结果等价。
//
//go:generate mockgen -source=./service.go -destination=../../mocks/feedback.mock.go -package=feedbackmocks Service
type Service interface {
	Summary(ctx context.Context) domain.Summary
	Insights(ctx context.Context) domain.Insights
	Visualization(ctx context.Context) domain.Visualization
	// UpsertBatch 按 id 幂等写入，返回成功条数
	UpsertBatch(ctx context.Context, records []domain.Feedback) int64
	List(ctx context.Context, offset, limit int) ([]domain.Feedback, int64, error)
}

type service struct {
	repo     repository.FeedbackRepo
	cache    cache.AggregateCache
	enricher *Enricher
	tracker  quota.Service
	producer event.SyncEventProducer
	logger   *elog.Component
}

func NewService(repo repository.FeedbackRepo,
	ca cache.AggregateCache,
	enricher *Enricher,
	tracker quota.Service,
	producer event.SyncEventProducer) Service {
	return &service{
		repo:     repo,
		cache:    ca,
		enricher: enricher,
		tracker:  tracker,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Summary(ctx context.Context) domain.Summary {
	s.tracker.Consume(quota.ClassCacheReads, 1)
	res, err := s.cache.GetSummary(ctx)
	if err == nil {
		return res
	}
	s.warnOnCacheErr("summary", err)
	records := s.loadRecords(ctx)
	res = s.buildSummary(records)
	s.tracker.Consume(quota.ClassCacheWrites, 1)
	if err = s.cache.SetSummary(ctx, res, summaryTTL); err != nil {
		s.logger.Warn("写入摘要缓存失败", elog.FieldErr(err))
	}
	return res
}

func (s *service) Insights(ctx context.Context) domain.Insights {
	s.tracker.Consume(quota.ClassCacheReads, 1)
	res, err := s.cache.GetInsights(ctx)
	if err == nil {
		return res
	}
	s.warnOnCacheErr("insights", err)
	records := s.loadRecords(ctx)
	res = domain.Insights{
		Summary:        s.buildSummary(records),
		PainPoints:     classify.PainPoints(records),
		Journey:        classify.Journey(records),
		PriorityMatrix: classify.PriorityMatrix(records),
	}
	enr := s.enricher.Enrich(ctx, records)
	res.Sentiment = enr.Sentiment
	res.TrendingTopics = enr.TrendingTopics
	res.Recommendations = enr.Recommendations
	res.PriorityActions = enr.PriorityActions
	res.Enhanced = enr.Enhanced
	s.tracker.Consume(quota.ClassCacheWrites, 1)
	if err = s.cache.SetInsights(ctx, res, insightsTTL); err != nil {
		s.logger.Warn("写入洞察缓存失败", elog.FieldErr(err))
	}
	return res
}

func (s *service) Visualization(ctx context.Context) domain.Visualization {
	s.tracker.Consume(quota.ClassCacheReads, 1)
	res, err := s.cache.GetVisualization(ctx)
	if err == nil {
		return res
	}
	s.warnOnCacheErr("visualization", err)
	records := s.loadRecords(ctx)
	report := classify.LayerHealth(records)
	res = domain.Visualization{
		Layers:        report.Layers,
		TotalIssues:   report.TotalIssues,
		HealthScore:   report.HealthScore,
		OverallStatus: report.OverallStatus,
		TotalItems:    len(records),
		DateRange:     classify.DateRange(records),
		GeneratedAt:   time.Now().UnixMilli(),
	}
	s.tracker.Consume(quota.ClassCacheWrites, 1)
	if err = s.cache.SetVisualization(ctx, res, visualizationTTL); err != nil {
		s.logger.Warn("写入分层视图缓存失败", elog.FieldErr(err))
	}
	return res
}

// UpsertBatch 落库之后必须把三个聚合缓存一起作废，避免读到旧结果
func (s *service) UpsertBatch(ctx context.Context, records []domain.Feedback) int64 {
	now := time.Now()
	valid := make([]domain.Feedback, 0, len(records))
	for _, record := range records {
		if record.ID == "" {
			s.logger.Warn("丢弃缺少 id 的反馈",
				elog.String("source", record.Source),
				elog.String("title", record.Title))
			continue
		}
		if record.Ctime.IsZero() {
			record.Ctime = now
		}
		valid = append(valid, record)
	}
	if len(valid) == 0 {
		return 0
	}
	saved := s.repo.SaveBatch(ctx, valid)
	if saved > 0 {
		s.tracker.Consume(quota.ClassStoreWrites, saved)
	}
	s.invalidate(ctx)
	s.syncToSearch(ctx, valid)
	return saved
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Feedback, int64, error) {
	var (
		eg      errgroup.Group
		records []domain.Feedback
		total   int64
	)
	eg.Go(func() error {
		var err error
		records, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	s.tracker.Consume(quota.ClassStoreReads, 1)
	return records, total, eg.Wait()
}

func (s *service) buildSummary(records []domain.Feedback) domain.Summary {
	return domain.Summary{
		TotalItems:     len(records),
		Sources:        classify.Sources(records),
		DateRange:      classify.DateRange(records),
		TopCategories:  classify.Categorize(records),
		CriticalIssues: classify.CriticalIssues(records),
		AvgSeverity:    classify.AvgSeverity(records),
		GeneratedAt:    time.Now().UnixMilli(),
	}
}

// loadRecords 拉全量反馈，按产生时间降序。
// 存储不可用或者还没有数据时退到种子数据集，
// 并尽力把种子写回存储，写回结果如何都不影响本次请求。
func (s *service) loadRecords(ctx context.Context) []domain.Feedback {
	s.tracker.Consume(quota.ClassStoreReads, 1)
	records, err := s.repo.ListAll(ctx)
	if err == nil && len(records) > 0 {
		return records
	}
	if err != nil {
		s.logger.Error("拉取反馈失败，退到种子数据", elog.FieldErr(err))
	}
	seeds := seedRecords()
	saved := s.repo.SaveBatch(ctx, seeds)
	if saved > 0 {
		s.tracker.Consume(quota.ClassStoreWrites, saved)
	}
	return seeds
}

func (s *service) invalidate(ctx context.Context) {
	s.tracker.Consume(quota.ClassCacheWrites, 1)
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warn("作废聚合缓存失败", elog.FieldErr(err))
	}
}

func (s *service) syncToSearch(ctx context.Context, records []domain.Feedback) {
	for _, record := range records {
		evt, err := event.NewSyncEvent(record)
		if err != nil {
			s.logger.Error("构造同步事件失败",
				elog.FieldErr(err), elog.String("id", record.ID))
			continue
		}
		if err = s.producer.Produce(ctx, evt); err != nil {
			s.logger.Error("发送同步事件失败",
				elog.FieldErr(err), elog.String("id", record.ID))
		}
	}
}

func (s *service) warnOnCacheErr(op string, err error) {
	if errors.Is(err, cache.ErrKeyNotFound) {
		// 未命中是常态，不是错误
		return
	}
	s.logger.Warn("读取聚合缓存失败",
		elog.FieldErr(err), elog.String("op", op))
}
