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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("缓存中没有对应的 key")

const (
	summaryKey       = "summary:v1"
	insightsKey      = "insights:v1"
	visualizationKey = "viz:v1"
)

// AggregateCache 缓存三类聚合结果。
// 载荷里自带过期时间，读侧到点即视为不存在，不依赖 redis 按时淘汰。
//
//go:generate mockgen -source=./aggregate.go -destination=./mocks/aggregate.mock.go -package=cachemocks AggregateCache
type AggregateCache interface {
	GetSummary(ctx context.Context) (domain.Summary, error)
	SetSummary(ctx context.Context, res domain.Summary, ttl time.Duration) error
	GetInsights(ctx context.Context) (domain.Insights, error)
	SetInsights(ctx context.Context, res domain.Insights, ttl time.Duration) error
	GetVisualization(ctx context.Context) (domain.Visualization, error)
	SetVisualization(ctx context.Context, res domain.Visualization, ttl time.Duration) error
	// Clear 在反馈数据变更之后把三个结果一起作废
	Clear(ctx context.Context) error
}

type aggregateCache struct {
	ec    ecache.Cache
	nowFn func() time.Time
}

func NewAggregateCache(ec ecache.Cache) AggregateCache {
	return &aggregateCache{
		ec:    ec,
		nowFn: time.Now,
	}
}

func (c *aggregateCache) GetSummary(ctx context.Context) (domain.Summary, error) {
	var res domain.Summary
	err := c.get(ctx, summaryKey, &res)
	return res, err
}

func (c *aggregateCache) SetSummary(ctx context.Context, res domain.Summary, ttl time.Duration) error {
	return c.set(ctx, summaryKey, res, ttl)
}

func (c *aggregateCache) GetInsights(ctx context.Context) (domain.Insights, error) {
	var res domain.Insights
	err := c.get(ctx, insightsKey, &res)
	return res, err
}

func (c *aggregateCache) SetInsights(ctx context.Context, res domain.Insights, ttl time.Duration) error {
	return c.set(ctx, insightsKey, res, ttl)
}

func (c *aggregateCache) GetVisualization(ctx context.Context) (domain.Visualization, error) {
	var res domain.Visualization
	err := c.get(ctx, visualizationKey, &res)
	return res, err
}

func (c *aggregateCache) SetVisualization(ctx context.Context, res domain.Visualization, ttl time.Duration) error {
	return c.set(ctx, visualizationKey, res, ttl)
}

func (c *aggregateCache) Clear(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, summaryKey, insightsKey, visualizationKey)
	return err
}

func (c *aggregateCache) get(ctx context.Context, key string, res any) error {
	val := c.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return ErrKeyNotFound
	}
	data, err := val.String()
	if err != nil {
		return errors.Wrapf(err, "读取缓存 %s 失败", key)
	}
	return unmarshalEnvelope(data, c.nowFn(), res)
}

func (c *aggregateCache) set(ctx context.Context, key string, val any, ttl time.Duration) error {
	data, err := marshalEnvelope(val, c.nowFn(), ttl)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, key, data, ttl)
}

// envelope 是缓存里的实际载荷。
// redis 自身的 TTL 只是兜底，过期判定以 ExpiresAt 为准。
type envelope struct {
	Payload   json.RawMessage `json:"payload"`
	Ctime     int64           `json:"ctime"`
	ExpiresAt int64           `json:"expiresAt"`
}

func marshalEnvelope(val any, now time.Time, ttl time.Duration) (string, error) {
	payload, err := json.Marshal(val)
	if err != nil {
		return "", errors.Wrap(err, "序列化缓存载荷失败")
	}
	data, err := json.Marshal(envelope{
		Payload:   payload,
		Ctime:     now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// unmarshalEnvelope 把缓存载荷还原到 res。
// 到达或越过 ExpiresAt 的数据一律当作不存在，返回 ErrKeyNotFound。
func unmarshalEnvelope(data string, now time.Time, res any) error {
	var env envelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return errors.Wrap(err, "解析缓存载荷失败")
	}
	if !now.Before(time.UnixMilli(env.ExpiresAt)) {
		return ErrKeyNotFound
	}
	return json.Unmarshal(env.Payload, res)
}
