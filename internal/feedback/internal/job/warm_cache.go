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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/insight/internal/feedback/internal/repository/cache"
	"github.com/ecodeclub/insight/internal/feedback/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*WarmAggregateCacheJob)(nil)

const warmTimeout = 30 * time.Second

// WarmAggregateCacheJob 定期重算三类聚合并回填缓存，
// 面板请求就很少撞上冷缓存。
type WarmAggregateCacheJob struct {
	svc    service.Service
	ca     cache.AggregateCache
	logger *elog.Component
}

func NewWarmAggregateCacheJob(svc service.Service, ca cache.AggregateCache) *WarmAggregateCacheJob {
	return &WarmAggregateCacheJob{
		svc:    svc,
		ca:     ca,
		logger: elog.DefaultLogger,
	}
}

func (w *WarmAggregateCacheJob) Name() string {
	return "WarmAggregateCacheJob"
}

// Run 先清掉旧缓存再读一遍，读路径自己会重算并回填
func (w *WarmAggregateCacheJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, warmTimeout)
	defer cancel()
	if err := w.ca.Clear(ctx); err != nil {
		w.logger.Warn("清理聚合缓存失败", elog.FieldErr(err))
	}
	w.svc.Summary(ctx)
	w.svc.Insights(ctx)
	w.svc.Visualization(ctx)
	return nil
}
