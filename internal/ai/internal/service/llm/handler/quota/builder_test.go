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
	"strings"
	"testing"

	"github.com/ecodeclub/insight/internal/ai/internal/domain"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/insight/internal/quota"
	quotamocks "github.com/ecodeclub/insight/internal/quota/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandlerBuilder_Next(t *testing.T) {
	t.Parallel()
	// 40 个字符的输入，估算 10 个 token
	input := strings.Repeat("x", 40)
	platformErr := errors.New("平台挂了")

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) quota.Service
		next     handler.Handler
		req      domain.LLMRequest
		wantResp domain.LLMResponse
		wantErr  error
	}{
		{
			name: "配额足够_调用成功后按估算值记账",
			mock: func(ctrl *gomock.Controller) quota.Service {
				tracker := quotamocks.NewMockTracker(ctrl)
				tracker.EXPECT().CanConsume(quota.ClassGenerativeTokens, int64(10)).Return(true)
				tracker.EXPECT().Consume(quota.ClassGenerativeTokens, int64(10))
				return tracker
			},
			next: handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{Tokens: 123, Answer: "ok"}, nil
			}),
			req: domain.LLMRequest{
				Biz:    domain.BizEnrichSentiment,
				Tid:    "tid-1",
				Input:  []string{input},
				Config: domain.BizConfig{PromptTemplate: "%s"},
			},
			wantResp: domain.LLMResponse{Tokens: 123, Answer: "ok"},
		},
		{
			name: "配额不足_直接拦截不碰平台",
			mock: func(ctrl *gomock.Controller) quota.Service {
				tracker := quotamocks.NewMockTracker(ctrl)
				tracker.EXPECT().CanConsume(quota.ClassGenerativeTokens, int64(10)).Return(false)
				return tracker
			},
			next: handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				t.Fatal("配额不足时不应该调用平台")
				return domain.LLMResponse{}, nil
			}),
			req: domain.LLMRequest{
				Biz:    domain.BizEnrichSentiment,
				Tid:    "tid-2",
				Input:  []string{input},
				Config: domain.BizConfig{PromptTemplate: "%s"},
			},
			wantErr: ErrQuotaExceeded,
		},
		{
			name: "平台调用失败_不记账",
			mock: func(ctrl *gomock.Controller) quota.Service {
				tracker := quotamocks.NewMockTracker(ctrl)
				tracker.EXPECT().CanConsume(quota.ClassGenerativeTokens, int64(10)).Return(true)
				// 没有 Consume 的期望，如果记账了测试会失败
				return tracker
			},
			next: handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{}, platformErr
			}),
			req: domain.LLMRequest{
				Biz:    domain.BizEnrichSentiment,
				Tid:    "tid-3",
				Input:  []string{input},
				Config: domain.BizConfig{PromptTemplate: "%s"},
			},
			wantErr: platformErr,
		},
		{
			name: "空输入_不做配额检查",
			mock: func(ctrl *gomock.Controller) quota.Service {
				return quotamocks.NewMockTracker(ctrl)
			},
			next: handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				return domain.LLMResponse{Answer: "empty"}, nil
			}),
			req: domain.LLMRequest{
				Biz:    domain.BizEnrichSentiment,
				Tid:    "tid-4",
				Input:  []string{""},
				Config: domain.BizConfig{PromptTemplate: "%s"},
			},
			wantResp: domain.LLMResponse{Answer: "empty"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			builder := NewHandlerBuilder(tc.mock(ctrl))
			root := builder.Next(tc.next)
			resp, err := root.Handle(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}
