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

package ai

import (
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/platform/deepseek"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/platform/zhipu"
	aiquota "github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/quota"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

// InitPlatform 按配置选择平台出口，默认走智谱
func InitPlatform() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
		APIKey   string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	switch cfg.Platform {
	case "deepseek":
		return deepseek.NewHandler(cfg.APIKey)
	default:
		h, err := zhipu.NewHandler(cfg.APIKey)
		if err != nil {
			panic(err)
		}
		return h
	}
}

func InitCommonHandlers(log *log.HandlerBuilder,
	quota *aiquota.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	// log -> quota -> record -> platform
	return []handler.Builder{log, quota, record}
}

func InitLLMService(common []handler.Builder, platform handler.Handler) llm.Service {
	return llm.NewLLMService(handler.NewCompositionHandler(common, platform))
}
