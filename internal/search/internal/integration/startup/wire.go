//go:build wireinject

package startup

import (
	"github.com/ecodeclub/insight/internal/search"
	testioc "github.com/ecodeclub/insight/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*search.Module, error) {
	wire.Build(testioc.InitES, testioc.InitMQ, search.InitModule)
	return new(search.Module), nil
}
