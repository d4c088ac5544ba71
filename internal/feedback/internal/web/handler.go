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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
	"github.com/ecodeclub/insight/internal/feedback/internal/service"
	"github.com/ecodeclub/insight/internal/pkg/snowflake"
	"github.com/gin-gonic/gin"
)

// formSurface 是表单接入面在 id 生成器里的编号
const formSurface uint = 0

// Handler 是仪表盘直接访问的公开接口
type Handler struct {
	svc service.Service
	sn  *snowflake.CustomSnowFlake
}

func NewHandler(svc service.Service, sn *snowflake.CustomSnowFlake) *Handler {
	return &Handler{
		svc: svc,
		sn:  sn,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/feedback")
	g.GET("/summary", ginx.W(h.Summary))
	g.GET("/insights", ginx.W(h.Insights))
	g.GET("/visualization", ginx.W(h.Visualization))
	g.POST("/form", ginx.B[FormReq](h.SubmitForm))
}

func (h *Handler) Summary(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: h.svc.Summary(ctx),
	}, nil
}

func (h *Handler) Insights(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: h.svc.Insights(ctx),
	}, nil
}

func (h *Handler) Visualization(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: h.svc.Visualization(ctx),
	}, nil
}

func (h *Handler) SubmitForm(ctx *ginx.Context, req FormReq) (ginx.Result, error) {
	if strings.TrimSpace(req.Content) == "" {
		return invalidInputResult, nil
	}
	id, err := h.sn.Generate(formSurface)
	if err != nil {
		return systemErrorResult, err
	}
	record := domain.Feedback{
		ID:       fmt.Sprintf("dashboard-%d", id.Int64()),
		Source:   domain.SourceDashboardForm,
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Ctime:    time.Now(),
		Labels:   req.Labels,
		Priority: req.Priority,
	}
	h.svc.UpsertBatch(ctx, []domain.Feedback{record})
	return ginx.Result{
		Data: FormResp{ID: record.ID},
	}, nil
}
