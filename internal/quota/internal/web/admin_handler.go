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
	"github.com/ecodeclub/insight/internal/quota/internal/domain"
	"github.com/ecodeclub/insight/internal/quota/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Tracker
}

func NewAdminHandler(svc service.Tracker) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/quota")
	g.GET("/usage", ginx.W(h.Usage))
}

func (h *AdminHandler) Usage(ctx *ginx.Context) (ginx.Result, error) {
	usages := h.svc.Usages()
	return ginx.Result{
		Data: slice.Map(usages, func(idx int, src domain.Usage) Usage {
			return Usage{
				Class:          src.Class,
				Used:           src.Used,
				Remaining:      src.Remaining,
				HardLimit:      src.HardLimit,
				ReservedMargin: src.ReservedMargin,
				Window:         src.Window,
				ResetAt:        src.ResetAt,
			}
		}),
	}, nil
}

type Usage struct {
	Class          string `json:"class"`
	Used           int64  `json:"used"`
	Remaining      int64  `json:"remaining"`
	HardLimit      int64  `json:"hardLimit"`
	ReservedMargin int64  `json:"reservedMargin"`
	Window         string `json:"window"`
	ResetAt        int64  `json:"resetAt"`
}
