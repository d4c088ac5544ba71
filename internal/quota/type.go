package quota

import (
	"github.com/ecodeclub/insight/internal/quota/internal/domain"
	"github.com/ecodeclub/insight/internal/quota/internal/service"
	"github.com/ecodeclub/insight/internal/quota/internal/web"
)

type Service = service.Tracker
type Usage = domain.Usage
type AdminHandler = web.AdminHandler

// 资源类别，跨模块消费时统一用这里的常量
const (
	ClassGenerativeTokens = domain.ClassGenerativeTokens
	ClassStoreReads       = domain.ClassStoreReads
	ClassStoreWrites      = domain.ClassStoreWrites
	ClassCacheReads       = domain.ClassCacheReads
	ClassCacheWrites      = domain.ClassCacheWrites
)
