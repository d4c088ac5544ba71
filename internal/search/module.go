package search

import "github.com/ecodeclub/insight/internal/search/internal/event"

type Module struct {
	SearchSvc SearchService
	SyncSvc   SyncService
	c         *event.SyncConsumer
	Hdl       *AdminHandler
}
