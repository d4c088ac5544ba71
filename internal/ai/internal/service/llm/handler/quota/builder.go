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

package quota

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/insight/internal/ai/internal/domain"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/insight/internal/quota"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrQuotaExceeded = errors.New("生成类 token 配额不足")
)

// HandlerBuilder 在调用平台之前先做配额预检，调用成功之后再记账。
// 预检和记账用的都是请求的估算 token 数：宁可少记一点也不在调用前锁定，
// 预检到记账之间的窗口期里并发超卖靠配额的预留余量吸收。
type HandlerBuilder struct {
	tracker quota.Service
	logger  *elog.Component
}

func NewHandlerBuilder(tracker quota.Service) *HandlerBuilder {
	return &HandlerBuilder{
		tracker: tracker,
		logger:  elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "quota"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		est := req.EstimatedTokens()
		if est == 0 {
			return next.Handle(ctx, req)
		}
		if !h.tracker.CanConsume(quota.ClassGenerativeTokens, est) {
			return domain.LLMResponse{}, fmt.Errorf("%w, biz %s, tid %s, 估算 %d tokens",
				ErrQuotaExceeded, req.Biz, req.Tid, est)
		}

		resp, err := next.Handle(ctx, req)
		if err != nil {
			return resp, err
		}

		// 只在调用成功之后记账，记的是估算值而不是平台上报的实际值
		h.tracker.Consume(quota.ClassGenerativeTokens, est)
		if resp.Tokens > est {
			h.logger.Debug("实际 token 消耗超出估算",
				elog.String("tid", req.Tid),
				elog.Int64("estimated", est),
				elog.Int64("actual", resp.Tokens))
		}
		return resp, nil
	})
}

var _ handler.Builder = &HandlerBuilder{}
