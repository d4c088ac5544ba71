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
	"time"

	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
)

// seedRecords 是数据网关不可用或者还没有任何数据时的兜底数据集。
// 内容固定，保证聚合接口在冷启动阶段也能给出结构完整的结果。
func seedRecords() []domain.Feedback {
	return []domain.Feedback{
		{
			ID:       "seed-1",
			Source:   domain.SourceGithub,
			SourceID: "1042",
			Title:    "Dashboard crashes when switching workspaces",
			Content:  "The dashboard crashes every time I switch between workspaces. This is blocking our rollout.",
			Author:   "alice",
			Ctime:    time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
			Labels:   []string{"bug", "critical"},
			Priority: "high",
			Extra:    map[string]string{"repo": "insight-dashboard"},
		},
		{
			ID:       "seed-2",
			Source:   domain.SourceSlack,
			SourceID: "C024-177",
			Title:    "Install guide is confusing",
			Content:  "The install and setup steps are confusing. I had to guess the configuration format.",
			Author:   "bob",
			Ctime:    time.Date(2024, 6, 2, 14, 5, 0, 0, time.UTC),
		},
		{
			ID:       "seed-3",
			Source:   domain.SourceJira,
			SourceID: "OPS-311",
			Title:    "Report export is slow",
			Content:  "Exporting the weekly report is slow and cpu usage spikes. Performance got worse after the upgrade.",
			Author:   "carol",
			Ctime:    time.Date(2024, 6, 3, 8, 45, 0, 0, time.UTC),
			Labels:   []string{"performance"},
			Priority: "high",
		},
		{
			ID:       "seed-4",
			Source:   domain.SourceEmail,
			SourceID: "msg-5590",
			Title:    "Love the new monitoring view",
			Content:  "The daily monitor view is great. Really helpful for our on-call rotation, excellent work.",
			Author:   "dave",
			Ctime:    time.Date(2024, 6, 4, 19, 20, 0, 0, time.UTC),
		},
		{
			ID:       "seed-5",
			Source:   domain.SourceBugReport,
			SourceID: "br-88",
			Title:    "TCP sessions drop behind the proxy",
			Content:  "Long lived tcp sessions drop with a timeout when the agent runs behind our proxy.",
			Author:   "erin",
			Ctime:    time.Date(2024, 6, 5, 11, 10, 0, 0, time.UTC),
			Labels:   []string{"network"},
		},
		{
			ID:       "seed-6",
			Source:   domain.SourceTeams,
			SourceID: "19:abc",
			Title:    "Webhook integration for alerts",
			Content:  "Feature request: push alerts through a webhook integration so we can wire them into our automation.",
			Author:   "frank",
			Ctime:    time.Date(2024, 6, 6, 16, 0, 0, 0, time.UTC),
			Labels:   []string{"feature"},
		},
		{
			ID:       "seed-7",
			Source:   domain.SourceDashboardForm,
			SourceID: "form-23",
			Title:    "Login token expires too quickly",
			Content:  "Our login token expires after a few minutes and users keep seeing an auth error on the dashboard.",
			Author:   "grace",
			Ctime:    time.Date(2024, 6, 7, 10, 25, 0, 0, time.UTC),
		},
		{
			ID:       "seed-8",
			Source:   "hackerone",
			SourceID: "h1-2093",
			Title:    "Debug endpoint leaks session tokens",
			Content:  "The debug endpoint exposes session tokens. This is a security vulnerability and should be closed quickly.",
			Author:   "heidi",
			Ctime:    time.Date(2024, 6, 8, 7, 55, 0, 0, time.UTC),
			Labels:   []string{"critical"},
		},
	}
}
