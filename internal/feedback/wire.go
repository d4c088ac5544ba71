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

//go:build wireinject

package feedback

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/insight/internal/ai"
	"github.com/ecodeclub/insight/internal/feedback/internal/event"
	"github.com/ecodeclub/insight/internal/feedback/internal/job"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository/cache"
	"github.com/ecodeclub/insight/internal/feedback/internal/repository/dao"
	"github.com/ecodeclub/insight/internal/feedback/internal/service"
	"github.com/ecodeclub/insight/internal/feedback/internal/web"
	"github.com/ecodeclub/insight/internal/pkg/snowflake"
	"github.com/ecodeclub/insight/internal/quota"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	sn *snowflake.CustomSnowFlake,
	quotaModule *quota.Module,
	aiModule *ai.Module) (*Module, error) {
	wire.Build(
		InitFeedbackDAO,
		repository.NewFeedbackRepo,
		cache.NewAggregateCache,
		event.NewSyncEventProducer,
		service.NewEnricher,
		service.NewService,
		job.NewWarmAggregateCacheJob,
		initIngestConsumer,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*quota.Module), "Svc"),
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitFeedbackDAO(db *egorm.Component) dao.FeedbackDAO {
	InitTableOnce(db)
	return dao.NewGORMFeedbackDAO(db)
}

func initIngestConsumer(svc service.Service, q mq.MQ) *event.IngestConsumer {
	c, err := event.NewIngestConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}
