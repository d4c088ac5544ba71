//go:build wireinject

package quota

import (
	"github.com/ecodeclub/insight/internal/quota/internal/service"
	"github.com/ecodeclub/insight/internal/quota/internal/web"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	service.NewTracker,
	web.NewAdminHandler,
)

func InitModule() *Module {
	wire.Build(
		ModuleSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
