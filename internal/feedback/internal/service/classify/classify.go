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

// Package classify 是对一批反馈做规则分析的纯函数集合。
// 所有函数都是确定性的：同一批输入永远得到同一个输出，
// 这也是聚合结果可以放心缓存的前提。
package classify

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ecodeclub/insight/internal/feedback/internal/domain"
)

const (
	// 严重程度的上下界
	minSeverity = 1
	maxSeverity = 5

	// 关键问题列表最多保留 8 条
	maxCriticalIssues = 8
	// 痛点列表最多保留 6 条
	maxPainPoints = 6
)

// Severity 给单条反馈打严重程度分，范围 [1,5]。
// 从 1 起步，每个条件最多加一次，最后截到 5。
func Severity(f domain.Feedback) int {
	score := minSeverity
	text := fullText(f)
	// critical 标签和 security 文案属于同一档，命中其一就加，不重复加
	if hasLabel(f, "critical") || strings.Contains(text, "security") ||
		strings.Contains(text, "vulnerability") {
		score += 3
	}
	if strings.Contains(text, "crash") || strings.Contains(text, "data loss") {
		score += 2
	}
	if hasLabel(f, "blocking") || strings.Contains(text, "blocking") {
		score += 2
	}
	if strings.EqualFold(f.Priority, "high") {
		score++
	}
	switch f.Source {
	case domain.SourceBugReport:
		score++
	case "hackerone", "security-report":
		// 安全研究渠道报上来的问题整体上压一级
		score += 2
	}
	if score > maxSeverity {
		score = maxSeverity
	}
	return score
}

// AvgSeverity 平均严重程度，保留两位小数。空批次返回 0
func AvgSeverity(fbs []domain.Feedback) float64 {
	if len(fbs) == 0 {
		return 0
	}
	var sum int
	for _, f := range fbs {
		sum += Severity(f)
	}
	avg := float64(sum) / float64(len(fbs))
	return math.Round(avg*100) / 100
}

// derivedCategories 从正文关键词推导出来的分类，
// 顺序固定，决定同票时的先后
var derivedCategories = []struct {
	name     string
	keywords []string
}{
	{"docker", []string{"docker", "container"}},
	{"performance", []string{"performance", "cpu", "memory"}},
	{"security", []string{"security", "vulnerability"}},
	{"feature-request", []string{"feature", "enhancement"}},
	{"networking", []string{"network", "connectivity"}},
}

// Categorize 统计分类：标签全部计入，再按关键词推导，
// 结果按次数降序，同票保持首次出现的先后。
func Categorize(fbs []domain.Feedback) []domain.CategoryCount {
	t := newTally()
	for _, f := range fbs {
		for _, label := range f.Labels {
			t.add(strings.ToLower(label))
		}
		content := strings.ToLower(f.Content)
		for _, c := range derivedCategories {
			if containsAny(content, c.keywords) {
				t.add(c.name)
			}
		}
	}
	pairs := t.sorted()
	res := make([]domain.CategoryCount, 0, len(pairs))
	for _, p := range pairs {
		res = append(res, domain.CategoryCount{Category: p.key, Count: p.count})
	}
	return res
}

// Sources 各来源渠道的数量，按数量降序，同票保持首次出现的先后
func Sources(fbs []domain.Feedback) []domain.SourceCount {
	t := newTally()
	for _, f := range fbs {
		t.add(f.Source)
	}
	pairs := t.sorted()
	res := make([]domain.SourceCount, 0, len(pairs))
	for _, p := range pairs {
		res = append(res, domain.SourceCount{Source: p.key, Count: p.count})
	}
	return res
}

// DateRange 这批反馈覆盖的时间区间，空批次返回 "No data"
func DateRange(fbs []domain.Feedback) string {
	if len(fbs) == 0 {
		return "No data"
	}
	oldest, newest := fbs[0].Ctime, fbs[0].Ctime
	for _, f := range fbs[1:] {
		if f.Ctime.Before(oldest) {
			oldest = f.Ctime
		}
		if f.Ctime.After(newest) {
			newest = f.Ctime
		}
	}
	const layout = "2006-01-02"
	return fmt.Sprintf("%s - %s", oldest.Format(layout), newest.Format(layout))
}

// criticalKeywords 命中任何一个就算关键问题
var criticalKeywords = []string{
	"critical", "security", "vulnerability", "crash",
	"data loss", "blocking", "urgent", "broken",
}

// CriticalIssues 提取关键问题，按严重程度降序、同分按时间降序，
// 最多保留 8 条，格式是 "标题 (来源)"。
func CriticalIssues(fbs []domain.Feedback) []string {
	matched := make([]domain.Feedback, 0, len(fbs))
	for _, f := range fbs {
		haystack := fullText(f) + " " + strings.ToLower(strings.Join(f.Labels, " "))
		if containsAny(haystack, criticalKeywords) {
			matched = append(matched, f)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		si, sj := Severity(matched[i]), Severity(matched[j])
		if si != sj {
			return si > sj
		}
		return matched[i].Ctime.After(matched[j].Ctime)
	})
	if len(matched) > maxCriticalIssues {
		matched = matched[:maxCriticalIssues]
	}
	res := make([]string, 0, len(matched))
	for _, f := range matched {
		res = append(res, fmt.Sprintf("%s (%s)", f.Title, f.Source))
	}
	return res
}

// painKeywords 负面情绪词，顺序固定，决定同票时的先后
var painKeywords = []string{
	"slow", "crash", "confusing", "error", "broken",
	"difficult", "frustrating", "timeout", "fails", "unstable",
}

// PainPoints 统计负面情绪词在全部正文里出现的总次数，
// 取前 6 个，格式是 "关键词 (N mentions)"。
func PainPoints(fbs []domain.Feedback) []string {
	counts := make([]int, len(painKeywords))
	for _, f := range fbs {
		content := strings.ToLower(f.Content)
		for i, kw := range painKeywords {
			counts[i] += strings.Count(content, kw)
		}
	}
	idx := make([]int, 0, len(painKeywords))
	for i := range painKeywords {
		if counts[i] > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return counts[idx[i]] > counts[idx[j]]
	})
	if len(idx) > maxPainPoints {
		idx = idx[:maxPainPoints]
	}
	res := make([]string, 0, len(idx))
	for _, i := range idx {
		res = append(res, fmt.Sprintf("%s (%d mentions)", painKeywords[i], counts[i]))
	}
	return res
}

// journeyStages 用户旅程的四个固定阶段。
// 一条反馈可以同时落进多个阶段。
var journeyStages = []struct {
	name     string
	keywords []string
}{
	{"setup", []string{"setup", "install", "configuration", "onboarding"}},
	{"daily-usage", []string{"dashboard", "report", "daily", "monitor"}},
	{"troubleshooting", []string{"error", "debug", "troubleshoot", "problem"}},
	{"advanced", []string{"integration", "api", "automation", "webhook"}},
}

var positiveWords = []string{"great", "love", "excellent", "good", "awesome", "helpful"}
var negativeWords = []string{"bad", "terrible", "hate", "awful", "broken", "frustrating"}

// Journey 按阶段切分反馈并给每个阶段算满意度：
// 正面词数量超过负面词两倍是 high，反过来是 low，其余是 medium。
func Journey(fbs []domain.Feedback) []domain.JourneyStage {
	res := make([]domain.JourneyStage, 0, len(journeyStages))
	for _, stage := range journeyStages {
		var count, pos, neg int
		for _, f := range fbs {
			if !containsAny(fullText(f), stage.keywords) {
				continue
			}
			count++
			content := strings.ToLower(f.Content)
			for _, w := range positiveWords {
				pos += strings.Count(content, w)
			}
			for _, w := range negativeWords {
				neg += strings.Count(content, w)
			}
		}
		res = append(res, domain.JourneyStage{
			Stage:        stage.name,
			Count:        count,
			Satisfaction: satisfaction(pos, neg),
		})
	}
	return res
}

func satisfaction(pos, neg int) string {
	switch {
	case pos > 2*neg:
		return "high"
	case neg > 2*pos:
		return "low"
	default:
		return "medium"
	}
}

// priorityTopics 优先级矩阵的五个固定主题和它们的固定优先级
var priorityTopics = []struct {
	category string
	priority string
	keywords []string
}{
	{"security", "urgent", []string{"security", "vulnerability", "exploit"}},
	{"performance", "high", []string{"performance", "slow", "cpu", "memory", "latency"}},
	{"compatibility", "medium", []string{"compatibility", "version", "upgrade", "platform"}},
	{"features", "medium", []string{"feature", "enhancement", "request"}},
	{"usability", "low", []string{"usability", "ui", "ux", "confusing", "design"}},
}

// PriorityMatrix 把每条反馈归进零个或多个主题，
// 主题的优先级是固定映射，输出顺序固定。
func PriorityMatrix(fbs []domain.Feedback) []domain.PriorityItem {
	res := make([]domain.PriorityItem, 0, len(priorityTopics))
	for _, topic := range priorityTopics {
		var count int
		for _, f := range fbs {
			haystack := fullText(f) + " " + strings.ToLower(strings.Join(f.Labels, " "))
			if containsAny(haystack, topic.keywords) {
				count++
			}
		}
		res = append(res, domain.PriorityItem{
			Category: topic.category,
			Priority: topic.priority,
			Count:    count,
		})
	}
	return res
}

func fullText(f domain.Feedback) string {
	return strings.ToLower(f.Title + " " + f.Content)
}

func hasLabel(f domain.Feedback, label string) bool {
	for _, l := range f.Labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

type pair struct {
	key   string
	count int
}

// tally 保序计数器：记录每个键首次出现的先后，
// 排序时同票按这个先后稳定输出
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *tally) sorted() []pair {
	pairs := make([]pair, 0, len(t.order))
	for _, key := range t.order {
		pairs = append(pairs, pair{key: key, count: t.counts[key]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].count > pairs[j].count
	})
	return pairs
}
