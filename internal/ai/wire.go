//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/insight/internal/ai/internal/repository"
	"github.com/ecodeclub/insight/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/log"
	aiquota "github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/quota"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/record"
	"github.com/ecodeclub/insight/internal/quota"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, q *quota.Module) *Module {
	wire.Build(
		log.NewHandler,
		record.NewHandler,
		aiquota.NewHandlerBuilder,

		repository.NewLLMLogRepo,
		InitLLMRecordDAO,

		InitCommonHandlers,
		InitPlatform,
		InitLLMService,

		wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*quota.Module), "Svc"),
	)
	return new(Module)
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

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}
