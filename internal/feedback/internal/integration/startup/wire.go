//go:build wireinject

package startup

import (
	"github.com/ecodeclub/insight/internal/ai"
	"github.com/ecodeclub/insight/internal/feedback"
	"github.com/ecodeclub/insight/internal/pkg/snowflake"
	"github.com/ecodeclub/insight/internal/quota"
	testioc "github.com/ecodeclub/insight/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(quotaModule *quota.Module, aiModule *ai.Module) (*feedback.Module, error) {
	wire.Build(testioc.BaseSet, initSnowflake, feedback.InitModule)
	return new(feedback.Module), nil
}

func initSnowflake() *snowflake.CustomSnowFlake {
	sn, err := snowflake.NewCustomSnowFlake(0, 1)
	if err != nil {
		panic(err)
	}
	return sn
}
