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
	"testing"
	"time"

	"github.com/ecodeclub/insight/internal/quota/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock 手动拨动的时钟
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestTracker(limits map[string]Limit) (*resourceTracker, *fakeClock) {
	clock := &fakeClock{
		// 周二中午，避开窗口边界
		now: time.Date(2024, 6, 11, 12, 0, 0, 0, time.Local),
	}
	return newResourceTracker(limits, clock.Now), clock
}

func TestTracker_CanConsume(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		used   int64
		amount int64
		want   bool
	}{
		{
			name:   "余量充足",
			used:   0,
			amount: 3000,
			want:   true,
		},
		{
			name:   "已用逼近上限",
			used:   95000,
			amount: 3000,
			want:   false,
		},
		{
			name:   "刚好触到预留边界",
			used:   87000,
			amount: 3000,
			want:   false,
		},
		{
			name:   "差一个就到边界",
			used:   86999,
			amount: 3000,
			want:   true,
		},
		{
			name:   "已经超限",
			used:   120000,
			amount: 1,
			want:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tracker, _ := newTestTracker(map[string]Limit{
				domain.ClassGenerativeTokens: {Hard: 100000, Reserved: 10000, Window: WindowMonthly},
			})
			if tc.used > 0 {
				tracker.Consume(domain.ClassGenerativeTokens, tc.used)
			}
			assert.Equal(t, tc.want, tracker.CanConsume(domain.ClassGenerativeTokens, tc.amount))
		})
	}
}

func TestTracker_ConsumeNeverFails(t *testing.T) {
	t.Parallel()
	tracker, _ := newTestTracker(map[string]Limit{
		domain.ClassGenerativeTokens: {Hard: 1000, Reserved: 100, Window: WindowMonthly},
	})
	// 一次性记超出上限的量，Consume 本身不报错
	tracker.Consume(domain.ClassGenerativeTokens, 5000)
	usage := tracker.Usage(domain.ClassGenerativeTokens)
	assert.Equal(t, int64(5000), usage.Used)
	assert.Equal(t, int64(0), usage.Remaining)
	// 超限的后果体现在下一次检查上
	assert.False(t, tracker.CanConsume(domain.ClassGenerativeTokens, 1))
}

func TestTracker_DailyRollover(t *testing.T) {
	t.Parallel()
	tracker, clock := newTestTracker(map[string]Limit{
		domain.ClassStoreWrites: {Hard: 100, Reserved: 10, Window: WindowDaily},
	})
	tracker.Consume(domain.ClassStoreWrites, 89)
	require.False(t, tracker.CanConsume(domain.ClassStoreWrites, 1))

	// 当天之内不重置
	clock.Advance(11*time.Hour + 59*time.Minute)
	assert.False(t, tracker.CanConsume(domain.ClassStoreWrites, 1))

	// 跨过本地零点之后重置
	clock.Advance(time.Minute)
	assert.True(t, tracker.CanConsume(domain.ClassStoreWrites, 1))
	assert.Equal(t, int64(0), tracker.Usage(domain.ClassStoreWrites).Used)
}

func TestTracker_MonthlyRollover(t *testing.T) {
	t.Parallel()
	tracker, clock := newTestTracker(map[string]Limit{
		domain.ClassGenerativeTokens: {Hard: 1000, Reserved: 100, Window: WindowMonthly},
	})
	// 月窗口从首次使用起算
	tracker.Consume(domain.ClassGenerativeTokens, 850)
	first := tracker.Usage(domain.ClassGenerativeTokens)
	require.False(t, tracker.CanConsume(domain.ClassGenerativeTokens, 100))

	// 第 29 天还在同一个窗口
	clock.Advance(29 * 24 * time.Hour)
	assert.False(t, tracker.CanConsume(domain.ClassGenerativeTokens, 100))

	// 满 30 天清零
	clock.Advance(24 * time.Hour)
	assert.True(t, tracker.CanConsume(domain.ClassGenerativeTokens, 100))
	assert.Equal(t, int64(0), tracker.Usage(domain.ClassGenerativeTokens).Used)

	// 长时间没有流量，窗口按整窗推进而不是挪到当前时刻
	tracker.Consume(domain.ClassGenerativeTokens, 1)
	clock.Advance(65 * 24 * time.Hour)
	usage := tracker.Usage(domain.ClassGenerativeTokens)
	assert.Equal(t, int64(0), usage.Used)
	// 95 天 = 3 个整窗 + 5 天，窗口起点应当停在第 90 天
	wantReset := first.ResetAt + 3*30*24*time.Hour.Milliseconds()
	assert.Equal(t, wantReset, usage.ResetAt)
}

func TestTracker_ClassesAreIndependent(t *testing.T) {
	t.Parallel()
	tracker, _ := newTestTracker(map[string]Limit{
		domain.ClassStoreReads:  {Hard: 100, Reserved: 10, Window: WindowDaily},
		domain.ClassStoreWrites: {Hard: 100, Reserved: 10, Window: WindowDaily},
	})
	tracker.Consume(domain.ClassStoreReads, 89)
	assert.False(t, tracker.CanConsume(domain.ClassStoreReads, 1))
	assert.True(t, tracker.CanConsume(domain.ClassStoreWrites, 1))
}

func TestTracker_UnknownClass(t *testing.T) {
	t.Parallel()
	tracker, _ := newTestTracker(map[string]Limit{})
	// 未知类别不会 panic，也不会拦截
	assert.True(t, tracker.CanConsume("never-configured", 1_000_000))
	tracker.Consume("never-configured", 1_000_000)
	assert.Equal(t, int64(1_000_000), tracker.Usage("never-configured").Used)
}

func TestTracker_Usages(t *testing.T) {
	t.Parallel()
	tracker, _ := newTestTracker(map[string]Limit{
		domain.ClassStoreWrites:      {Hard: 100, Reserved: 10, Window: WindowDaily},
		domain.ClassCacheReads:       {Hard: 200, Reserved: 20, Window: WindowDaily},
		domain.ClassGenerativeTokens: {Hard: 1000, Reserved: 100, Window: WindowMonthly},
	})
	tracker.Consume(domain.ClassCacheReads, 30)
	usages := tracker.Usages()
	require.Len(t, usages, 3)
	// 按类别名排序，保证快照输出稳定
	assert.Equal(t, domain.ClassCacheReads, usages[0].Class)
	assert.Equal(t, domain.ClassGenerativeTokens, usages[1].Class)
	assert.Equal(t, domain.ClassStoreWrites, usages[2].Class)
	assert.Equal(t, int64(30), usages[0].Used)
	assert.Equal(t, int64(150), usages[0].Remaining)
	assert.Equal(t, WindowMonthly, usages[1].Window)
}
