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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/ecodeclub/insight/internal/feedback/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 给采集侧和运营后台用，走内部鉴权
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/feedback")
	g.POST("/batch", ginx.B[BatchReq](h.Batch))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *AdminHandler) Batch(ctx *ginx.Context, req BatchReq) (ginx.Result, error) {
	records := slice.Map(req.Records, func(idx int, src FeedbackRecord) domain.Feedback {
		return src.toDomain()
	})
	saved := h.svc.UpsertBatch(ctx, records)
	return ginx.Result{
		Data: BatchResp{Saved: saved},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	records, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: FeedbackList{
			Total: total,
			Records: slice.Map(records, func(idx int, src domain.Feedback) FeedbackRecord {
				return newFeedbackRecord(src)
			}),
		},
	}, nil
}
