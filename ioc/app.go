package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Crons     []ecron.Ecron
	Consumers []Consumer
}

// Consumer 后台消费者，Start 之后自己循环消费
type Consumer interface {
	Start(ctx context.Context)
}
