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

package ioc

import (
	"fmt"

	"github.com/ecodeclub/insight/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

// 目前只有表单一个接入面
const surfaces uint = 1

func initSnowflake() *snowflake.CustomSnowFlake {
	type Config struct {
		NodeID uint `yaml:"nodeID"`
	}
	var cfg Config
	err := econf.UnmarshalKey("snowflake", &cfg)
	if err != nil {
		panic(fmt.Errorf("读取 snowflake 配置失败 %w", err))
	}
	sn, err := snowflake.NewCustomSnowFlake(cfg.NodeID, surfaces)
	if err != nil {
		panic(err)
	}
	return sn
}
