package ioc

import (
	"github.com/ecodeclub/insight/internal/search/internal/repository/dao"
	"github.com/olivere/elastic/v7"
)

const (
	feedbackTitleBoost   = 30
	feedbackLabelBoost   = 29
	feedbackContentBoost = 2
)

func InitFeedbackDAO(client *elastic.Client) dao.FeedbackDAO {
	metas := map[string]dao.FieldConfig{
		"title": {
			Name:            "title",
			Boost:           feedbackTitleBoost,
			HighLightConfig: dao.DefaultHighlightConfig,
		},
		"labels": {
			Name:   "labels",
			Boost:  feedbackLabelBoost,
			IsTerm: true,
		},
		"source": {
			Name:   "source",
			IsTerm: true,
		},
		"priority": {
			Name:   "priority",
			IsTerm: true,
		},
		"author": {
			Name:   "author",
			IsTerm: true,
		},
		"content": {
			Name:            "content",
			Boost:           feedbackContentBoost,
			HighLightConfig: dao.DefaultHighlightConfig,
		},
	}
	return dao.NewFeedbackElasticDAO(client, metas, dao.FeedbackIndexName)
}
