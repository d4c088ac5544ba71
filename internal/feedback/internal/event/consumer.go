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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// Ingester 由聚合服务实现，消费侧只用得到写入能力
type Ingester interface {
	UpsertBatch(ctx context.Context, records []domain.Feedback) int64
}

// IngestConsumer 消费采集层投递的原始反馈并落库
type IngestConsumer struct {
	svc      Ingester
	consumer mq.Consumer
	logger   *elog.Component
}

func NewIngestConsumer(svc Ingester, q mq.MQ) (*IngestConsumer, error) {
	groupID := "feedback_ingest"
	consumer, err := q.Consumer(FeedbackEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &IngestConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *IngestConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费反馈事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *IngestConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}
	var evt FeedbackEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析反馈事件失败: %w", err)
	}
	if evt.ID == "" {
		c.logger.Warn("丢弃缺少 id 的反馈事件", elog.String("source", evt.Source))
		return nil
	}
	c.svc.UpsertBatch(ctx, []domain.Feedback{evt.toDomain()})
	return nil
}
