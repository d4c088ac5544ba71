//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/insight/internal/ai"
	"github.com/ecodeclub/insight/internal/feedback"
	"github.com/ecodeclub/insight/internal/pkg/middleware"
	"github.com/ecodeclub/insight/internal/quota"
	"github.com/ecodeclub/insight/internal/search"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitMQ,
		InitES,
		InitSession,
		initSnowflake,
		middleware.NewMetricsBuilder,
		quota.InitModule,
		ai.InitModule,
		feedback.InitModule,
		search.InitModule,
		wire.FieldsOf(new(*feedback.Module), "Hdl", "AdminHdl", "WarmJob", "Consumer"),
		wire.FieldsOf(new(*search.Module), "Hdl"),
		wire.FieldsOf(new(*quota.Module), "AdminHandler"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
