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

package service

import (
	"sort"
	"sync"
	"time"

	"github.com/ecodeclub/insight/internal/quota/internal/domain"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	WindowDaily   = "daily"
	WindowMonthly = "monthly"

	// monthly 窗口固定按 30 天滚动，不对齐自然月。
	// 这是刻意保留的近似：窗口从首次使用时刻起算，满 30 天整窗推进。
	monthlyWindow = 30 * 24 * time.Hour
)

// Limit 某一资源类别的配额配置
type Limit struct {
	Hard     int64
	Reserved int64
	Window   string
}

// Tracker 进程内的资源配额计数器。
// 注意这只是单实例的近似计数，不是分布式限流：
// 进程重启计数清零，CanConsume 和 Consume 也不是原子的一对，
// 并发之下可能双双放行导致小幅超卖，靠预留余量 Reserved 来吸收。
// 不要把它改成锁住整个外部调用的悲观实现。
//
//go:generate mockgen -source=./tracker.go -destination=../../mocks/quota.mock.go -package=quotamocks Tracker
type Tracker interface {
	// CanConsume 判断当前窗口内还能否消耗 amount。
	// 判定规则是 used + amount < hard - reserved，临界相等视为不允许。
	CanConsume(class string, amount int64) bool
	// Consume 记录一次消耗。永远成功，超限也会记上，
	// 超限的后果只会体现在下一次 CanConsume 上。
	Consume(class string, amount int64)
	// Usage 返回某一类别当前窗口的用量快照
	Usage(class string) domain.Usage
	// Usages 返回全部类别的快照，按类别名排序
	Usages() []domain.Usage
}

type counter struct {
	used        int64
	windowStart time.Time
}

type resourceTracker struct {
	mu       sync.Mutex
	limits   map[string]Limit
	counters map[string]*counter

	// 测试里用来拨时钟
	nowFn func() time.Time

	usedGauge      *prometheus.GaugeVec
	remainingGauge *prometheus.GaugeVec

	logger *elog.Component
}

// LimitConfig 对应配置文件里 quota.limits 的一项
type LimitConfig struct {
	Class    string `yaml:"class"`
	Hard     int64  `yaml:"hard"`
	Reserved int64  `yaml:"reserved"`
	Window   string `yaml:"window"`
}

// NewTracker 按配置初始化配额计数器，配置缺失的类别使用默认值
func NewTracker() Tracker {
	var cfgs []LimitConfig
	// 没配置就全部走默认值
	_ = econf.UnmarshalKey("quota.limits", &cfgs)
	limits := defaultLimits()
	for _, cfg := range cfgs {
		if cfg.Class == "" || cfg.Hard <= 0 {
			continue
		}
		window := cfg.Window
		if window != WindowMonthly {
			window = WindowDaily
		}
		limits[cfg.Class] = Limit{
			Hard:     cfg.Hard,
			Reserved: cfg.Reserved,
			Window:   window,
		}
	}
	t := newResourceTracker(limits, time.Now)
	t.usedGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "quota_used",
		Help: "Quota used in the current window",
	}, []string{"class"})
	t.remainingGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "quota_remaining",
		Help: "Quota remaining in the current window",
	}, []string{"class"})
	return t
}

func newResourceTracker(limits map[string]Limit, nowFn func() time.Time) *resourceTracker {
	return &resourceTracker{
		limits:   limits,
		counters: make(map[string]*counter, len(limits)),
		nowFn:    nowFn,
		logger:   elog.DefaultLogger,
	}
}

func defaultLimits() map[string]Limit {
	return map[string]Limit{
		domain.ClassGenerativeTokens: {Hard: 100000, Reserved: 10000, Window: WindowMonthly},
		domain.ClassStoreReads:       {Hard: 100000, Reserved: 1000, Window: WindowDaily},
		domain.ClassStoreWrites:      {Hard: 50000, Reserved: 500, Window: WindowDaily},
		domain.ClassCacheReads:       {Hard: 200000, Reserved: 2000, Window: WindowDaily},
		domain.ClassCacheWrites:      {Hard: 200000, Reserved: 2000, Window: WindowDaily},
	}
}

func (t *resourceTracker) CanConsume(class string, amount int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	lim, c := t.current(class)
	// 临界相等视为不允许
	ok := c.used+amount < lim.Hard-lim.Reserved
	if !ok {
		t.logger.Warn("配额余量不足",
			elog.String("class", class),
			elog.Int64("used", c.used),
			elog.Int64("amount", amount),
			elog.Int64("hard", lim.Hard),
			elog.Int64("reserved", lim.Reserved))
	}
	return ok
}

func (t *resourceTracker) Consume(class string, amount int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	lim, c := t.current(class)
	c.used += amount
	t.report(class, lim, c)
}

func (t *resourceTracker) Usage(class string) domain.Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.usageLocked(class)
}

func (t *resourceTracker) Usages() []domain.Usage {
	t.mu.Lock()
	defer t.mu.Unlock()
	classes := make([]string, 0, len(t.limits))
	for class := range t.limits {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	res := make([]domain.Usage, 0, len(classes))
	for _, class := range classes {
		res = append(res, t.usageLocked(class))
	}
	return res
}

func (t *resourceTracker) usageLocked(class string) domain.Usage {
	lim, c := t.current(class)
	remaining := lim.Hard - lim.Reserved - c.used
	if remaining < 0 {
		remaining = 0
	}
	return domain.Usage{
		Class:          class,
		Used:           c.used,
		Remaining:      remaining,
		HardLimit:      lim.Hard,
		ReservedMargin: lim.Reserved,
		Window:         lim.Window,
		ResetAt:        t.windowEnd(lim, c).UnixMilli(),
	}
}

// current 返回类别的限额和计数器，调用前必须持有锁。
// 每次访问都先做一次惰性的窗口滚动检查。
func (t *resourceTracker) current(class string) (Limit, *counter) {
	now := t.nowFn()
	lim, ok := t.limits[class]
	if !ok {
		// 未知类别不限量，按天滚动只是为了让快照有意义
		lim = Limit{Hard: 1 << 62, Reserved: 0, Window: WindowDaily}
		t.limits[class] = lim
	}
	c, ok := t.counters[class]
	if !ok {
		c = &counter{windowStart: t.windowStart(lim, now)}
		t.counters[class] = c
	}
	t.rollover(lim, c, now)
	return lim, c
}

func (t *resourceTracker) windowStart(lim Limit, now time.Time) time.Time {
	if lim.Window == WindowMonthly {
		// 月窗口从首次使用时刻起算
		return now
	}
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location())
}

func (t *resourceTracker) windowEnd(lim Limit, c *counter) time.Time {
	if lim.Window == WindowMonthly {
		return c.windowStart.Add(monthlyWindow)
	}
	return c.windowStart.AddDate(0, 0, 1)
}

// rollover 跨过窗口边界时把计数清零。
// 日窗口直接对齐到当天零点，月窗口按整窗推进，
// 中间隔了几个窗口就推进几个窗口。
func (t *resourceTracker) rollover(lim Limit, c *counter, now time.Time) {
	switch lim.Window {
	case WindowMonthly:
		for !now.Before(c.windowStart.Add(monthlyWindow)) {
			c.windowStart = c.windowStart.Add(monthlyWindow)
			c.used = 0
		}
	default:
		dayStart := t.windowStart(lim, now)
		if c.windowStart.Before(dayStart) {
			c.windowStart = dayStart
			c.used = 0
		}
	}
}

func (t *resourceTracker) report(class string, lim Limit, c *counter) {
	if t.usedGauge == nil {
		return
	}
	t.usedGauge.WithLabelValues(class).Set(float64(c.used))
	remaining := lim.Hard - lim.Reserved - c.used
	if remaining < 0 {
		remaining = 0
	}
	t.remainingGauge.WithLabelValues(class).Set(float64(remaining))
}
