package domain

// ResourceClass 资源类别。不同类别的配额独立计数，互不影响。
const (
	ClassGenerativeTokens = "generative-tokens"
	ClassStoreReads       = "store-reads"
	ClassStoreWrites      = "store-writes"
	ClassCacheReads       = "cache-reads"
	ClassCacheWrites      = "cache-writes"
)

// Usage 某一资源类别在当前窗口内的用量快照
type Usage struct {
	Class string
	// 当前窗口内已消耗的量
	Used int64
	// 还可以消耗的量，已扣除预留余量
	Remaining int64
	// 硬性上限
	HardLimit int64
	// 预留余量，用来吸收并发场景下的少量超卖
	ReservedMargin int64
	// daily 或者 monthly
	Window string
	// 当前窗口重置时间，毫秒时间戳
	ResetAt int64
}
