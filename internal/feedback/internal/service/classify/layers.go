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

package classify

import "github.com/ecodeclub/insight/internal/feedback/internal/domain"

// layerRules 七层模型和各层的关键词。
// 层的匹配按整词算而不是子串，避免 report 误命中 port 这类问题。
var layerRules = []struct {
	name     string
	keywords []string
}{
	{"Physical", []string{"cable", "connector", "fiber", "hardware", "power"}},
	{"Data Link", []string{"switch", "vlan", "ethernet", "mac", "frame"}},
	{"Network", []string{"ip", "routing", "router", "subnet", "firewall"}},
	{"Transport", []string{"tcp", "udp", "port", "qos"}},
	{"Session", []string{"session", "auth", "login", "token", "timeout"}},
	{"Presentation", []string{"tls", "ssl", "certificate", "encryption", "encoding"}},
	{"Application", []string{"api", "http", "dns", "dashboard", "browser"}},
}

// securityKeywords 安全相关的词同时计入 Session 和 Presentation 两层
var securityKeywords = []string{"security", "vulnerability", "exploit", "breach"}

const (
	layerSession      = 4
	layerPresentation = 5

	statusHealthy  = "healthy"
	statusWarning  = "warning"
	statusCritical = "critical"
)

// HealthReport 七层健康打分的结果
type HealthReport struct {
	Layers        []domain.Layer
	TotalIssues   int
	HealthScore   int
	OverallStatus string
}

// LayerHealth 把每条反馈归到命中的层上并打总体健康分。
// 每条反馈对每一层最多计一次。
// 层状态：问题数 >=5 是 critical，>=2 是 warning，其余 healthy。
// 健康分 = 100 - 5*总问题数 - 15*critical层数 - 5*warning层数，截到 [0,100]。
func LayerHealth(fbs []domain.Feedback) HealthReport {
	counts := make([]int, len(layerRules))
	for _, f := range fbs {
		words := tokenize(fullText(f))
		matched := make([]bool, len(layerRules))
		for i, rule := range layerRules {
			if matchesAnyWord(words, rule.keywords) {
				matched[i] = true
			}
		}
		if matchesAnyWord(words, securityKeywords) {
			matched[layerSession] = true
			matched[layerPresentation] = true
		}
		for i, ok := range matched {
			if ok {
				counts[i]++
			}
		}
	}

	var total, critical, warning int
	layers := make([]domain.Layer, 0, len(layerRules))
	for i, rule := range layerRules {
		status := statusHealthy
		switch {
		case counts[i] >= 5:
			status = statusCritical
			critical++
		case counts[i] >= 2:
			status = statusWarning
			warning++
		}
		total += counts[i]
		layers = append(layers, domain.Layer{
			Name:       rule.name,
			IssueCount: counts[i],
			Status:     status,
		})
	}

	score := 100 - 5*total - 15*critical - 5*warning
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return HealthReport{
		Layers:        layers,
		TotalIssues:   total,
		HealthScore:   score,
		OverallStatus: overallStatus(score),
	}
}

func overallStatus(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}

// tokenize 把文本切成小写单词集合
func tokenize(text string) map[string]struct{} {
	words := make(map[string]struct{})
	start := -1
	for i, r := range text {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words[text[start:i]] = struct{}{}
			start = -1
		}
	}
	if start >= 0 {
		words[text[start:]] = struct{}{}
	}
	return words
}

func matchesAnyWord(words map[string]struct{}, keywords []string) bool {
	for _, kw := range keywords {
		if _, ok := words[kw]; ok {
			return true
		}
	}
	return false
}
