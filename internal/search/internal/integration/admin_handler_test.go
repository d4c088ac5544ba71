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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/insight/internal/search/internal/event"
	"github.com/ecodeclub/insight/internal/search/internal/integration/startup"
	"github.com/ecodeclub/insight/internal/search/internal/repository/dao"
	"github.com/ecodeclub/insight/internal/search/internal/web"
	"github.com/ecodeclub/insight/internal/test"
	testioc "github.com/ecodeclub/insight/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

type AdminHandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	es       *elastic.Client
	producer mq.Producer
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"creator": "true"},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	s.es = testioc.InitES()
	testmq := testioc.InitMQ()
	p, err := testmq.Producer(event.SyncTopic)
	require.NoError(s.T(), err)
	s.producer = p
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	// 测试文档的 id 统一带 e2e- 前缀，按前缀清掉
	query := elastic.NewPrefixQuery("id", "e2e-")
	_, err := s.es.DeleteByQuery(dao.FeedbackIndexName).
		Query(query).
		Refresh("true").
		Do(context.Background())
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) TestSearch() {
	testCases := []struct {
		name    string
		before  func(t *testing.T)
		after   func(t *testing.T, wantRes web.SearchResult, actual web.SearchResult)
		wantRes web.SearchResult
		req     web.SearchReq
	}{
		{
			name: "按标题检索",
			before: func(t *testing.T) {
				s.seedFeedbacks()
			},
			after: func(t *testing.T, wantRes web.SearchResult, actual web.SearchResult) {
				actual = s.zeroCreatedAt(t, actual)
				assert.Equal(t, wantRes, actual)
			},
			wantRes: web.SearchResult{
				Feedbacks: []web.Feedback{
					{
						ID:       "e2e-gh-1",
						Source:   "github",
						SourceID: "1001",
						Title: web.EsVal{
							Val:        "Login crash on startup",
							Highlights: []string{"Login <em>crash</em> on startup"},
						},
						Content: web.EsVal{
							Val: "App crashes immediately after login on Android",
						},
						Author:   "alice",
						Labels:   []string{"bug", "mobile"},
						Priority: "high",
					},
				},
			},
			req: web.SearchReq{
				Keywords: "title:crash",
				Offset:   0,
				Limit:    20,
			},
		},
		{
			name: "按标签精确检索",
			before: func(t *testing.T) {
				s.seedFeedbacks()
			},
			after: func(t *testing.T, wantRes web.SearchResult, actual web.SearchResult) {
				actual = s.zeroCreatedAt(t, actual)
				assert.Equal(t, wantRes, actual)
			},
			wantRes: web.SearchResult{
				Feedbacks: []web.Feedback{
					{
						ID:       "e2e-gh-1",
						Source:   "github",
						SourceID: "1001",
						Title: web.EsVal{
							Val: "Login crash on startup",
						},
						Content: web.EsVal{
							Val: "App crashes immediately after login on Android",
						},
						Author:   "alice",
						Labels:   []string{"bug", "mobile"},
						Priority: "high",
					},
				},
			},
			req: web.SearchReq{
				Keywords: "labels:bug",
				Offset:   0,
				Limit:    20,
			},
		},
		{
			name: "裸词检索全部列",
			before: func(t *testing.T) {
				s.seedFeedbacks()
			},
			after: func(t *testing.T, wantRes web.SearchResult, actual web.SearchResult) {
				actual = s.zeroCreatedAt(t, actual)
				assert.Equal(t, wantRes, actual)
			},
			wantRes: web.SearchResult{
				Feedbacks: []web.Feedback{
					{
						ID:       "e2e-sl-1",
						Source:   "slack",
						SourceID: "C42",
						Title: web.EsVal{
							Val:        "Docker networking broken",
							Highlights: []string{"<em>Docker</em> networking broken"},
						},
						Content: web.EsVal{
							Val: "Container loses network connectivity under load",
						},
						Author:   "bob",
						Labels:   []string{"infra"},
						Priority: "medium",
					},
				},
			},
			req: web.SearchReq{
				Keywords: "Docker",
				Offset:   0,
				Limit:    20,
			},
		},
		{
			name: "裸词和列限定混用",
			before: func(t *testing.T) {
				s.seedFeedbacks()
			},
			after: func(t *testing.T, wantRes web.SearchResult, actual web.SearchResult) {
				actual = s.zeroCreatedAt(t, actual)
				assert.Equal(t, wantRes, actual)
			},
			wantRes: web.SearchResult{
				Feedbacks: []web.Feedback{
					{
						ID:       "e2e-gh-1",
						Source:   "github",
						SourceID: "1001",
						Title: web.EsVal{
							Val:        "Login crash on startup",
							Highlights: []string{"Login <em>crash</em> on startup"},
						},
						Content: web.EsVal{
							Val: "App crashes immediately after login on Android",
						},
						Author:   "alice",
						Labels:   []string{"bug", "mobile"},
						Priority: "high",
					},
					{
						ID:       "e2e-gh-2",
						Source:   "github",
						SourceID: "1002",
						Title: web.EsVal{
							Val: "Dark mode toggle missing",
						},
						Content: web.EsVal{
							Val: "Please add a dark mode to the settings page",
						},
						Author:   "carol",
						Labels:   []string{"feature"},
						Priority: "low",
					},
				},
			},
			req: web.SearchReq{
				Keywords: "crash source:github",
				Offset:   0,
				Limit:    20,
			},
		},
		{
			name: "分页",
			before: func(t *testing.T) {
				s.seedFeedbacks()
			},
			after: func(t *testing.T, wantRes web.SearchResult, actual web.SearchResult) {
				actual = s.zeroCreatedAt(t, actual)
				assert.Equal(t, wantRes, actual)
			},
			wantRes: web.SearchResult{
				Feedbacks: []web.Feedback{
					{
						ID:       "e2e-gh-2",
						Source:   "github",
						SourceID: "1002",
						Title: web.EsVal{
							Val: "Dark mode toggle missing",
						},
						Content: web.EsVal{
							Val: "Please add a dark mode to the settings page",
						},
						Author:   "carol",
						Labels:   []string{"feature"},
						Priority: "low",
					},
				},
			},
			req: web.SearchReq{
				Keywords: "source:github",
				Offset:   1,
				Limit:    1,
			},
		},
		{
			name: "没有命中",
			before: func(t *testing.T) {
				s.seedFeedbacks()
			},
			after: func(t *testing.T, wantRes web.SearchResult, actual web.SearchResult) {
				assert.Equal(t, wantRes, actual)
			},
			wantRes: web.SearchResult{},
			req: web.SearchReq{
				Keywords: "title:nonexistent",
				Offset:   0,
				Limit:    20,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/search/feedback", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.SearchResult]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			tc.after(t, tc.wantRes, recorder.MustScan().Data)
			s.TearDownTest()
		})
	}
}

func (s *AdminHandlerTestSuite) TestSync() {
	t := s.T()
	// 旧文档会被同名的新文档覆盖
	s.insertFeedback([]dao.Feedback{
		{
			ID:        "e2e-sync-1",
			Source:    "github",
			SourceID:  "2001",
			Title:     "old title",
			Content:   "old content",
			Author:    "dave",
			Labels:    []string{"old"},
			Priority:  "low",
			CreatedAt: 1709251200000,
		},
	})
	want := dao.Feedback{
		ID:        "e2e-sync-1",
		Source:    "github",
		SourceID:  "2001",
		Title:     "Payment fails on checkout",
		Content:   "Checkout returns 500 when paying with card",
		Author:    "dave",
		Labels:    []string{"bug", "payments"},
		Priority:  "urgent",
		CreatedAt: 1709337600000,
	}
	data, err := json.Marshal(want)
	require.NoError(t, err)
	evt := event.SyncEvent{
		Biz:   "feedback",
		BizID: "e2e-sync-1",
		Data:  string(data),
	}
	val, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = s.producer.Produce(context.Background(), &mq.Message{Value: val})
	require.NoError(t, err)

	time.Sleep(3 * time.Second)
	_, err = s.es.Refresh(dao.FeedbackIndexName).Do(context.Background())
	require.NoError(t, err)
	resp, err := s.es.Get().
		Index(dao.FeedbackIndexName).
		Id("e2e-sync-1").
		Do(context.Background())
	require.NoError(t, err)
	var got dao.Feedback
	require.NoError(t, json.Unmarshal(resp.Source, &got))
	assert.Equal(t, want, got)
}

// seedFeedbacks 写入三条检索结果可以手算的反馈文档
func (s *AdminHandlerTestSuite) seedFeedbacks() {
	s.insertFeedback([]dao.Feedback{
		{
			ID:        "e2e-gh-1",
			Source:    "github",
			SourceID:  "1001",
			Title:     "Login crash on startup",
			Content:   "App crashes immediately after login on Android",
			Author:    "alice",
			Labels:    []string{"bug", "mobile"},
			Priority:  "high",
			CreatedAt: 1709251200000,
		},
		{
			ID:        "e2e-sl-1",
			Source:    "slack",
			SourceID:  "C42",
			Title:     "Docker networking broken",
			Content:   "Container loses network connectivity under load",
			Author:    "bob",
			Labels:    []string{"infra"},
			Priority:  "medium",
			CreatedAt: 1709337600000,
		},
		{
			ID:        "e2e-gh-2",
			Source:    "github",
			SourceID:  "1002",
			Title:     "Dark mode toggle missing",
			Content:   "Please add a dark mode to the settings page",
			Author:    "carol",
			Labels:    []string{"feature"},
			Priority:  "low",
			CreatedAt: 1709424000000,
		},
	})
}

func (s *AdminHandlerTestSuite) insertFeedback(fbs []dao.Feedback) {
	for _, fb := range fbs {
		_, err := s.es.Index().
			Index(dao.FeedbackIndexName).
			Id(fb.ID).
			BodyJson(fb).
			Refresh("true").
			Do(context.Background())
		require.NoError(s.T(), err)
	}
}

func (s *AdminHandlerTestSuite) zeroCreatedAt(t *testing.T, res web.SearchResult) web.SearchResult {
	for idx := range res.Feedbacks {
		require.True(t, res.Feedbacks[idx].CreatedAt != "")
		res.Feedbacks[idx].CreatedAt = ""
	}
	return res
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
