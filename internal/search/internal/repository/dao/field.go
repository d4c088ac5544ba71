package dao

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/insight/internal/search/internal/domain"
	"github.com/olivere/elastic/v7"
)

// FieldConfig 描述参与检索的列
type FieldConfig struct {
	// 列名
	Name string
	// 权重
	Boost int
	// keyword 类型的列用精确匹配
	IsTerm          bool
	HighLightConfig HighlightConfig
}

type HighlightConfig struct {
	Open           bool
	NumOfFragments int
	FragmentSize   int
}

var DefaultHighlightConfig = HighlightConfig{
	Open:           true,
	NumOfFragments: 3,
	FragmentSize:   100,
}

// searchBuilder 把查询元数据按列聚合成 ES 查询
type searchBuilder struct {
}

func newSearchBuilder() searchBuilder {
	return searchBuilder{}
}

func (b searchBuilder) build(metas map[string]FieldConfig,
	queryMetas []domain.QueryMeta) ([]elastic.Query, []*elastic.HighlighterField) {
	colMap := make(map[string][]string, len(metas))
	for _, meta := range queryMetas {
		if meta.IsAll {
			for _, col := range metas {
				colMap = setCol(colMap, col.Name, meta.Keyword)
			}
			continue
		}
		// 不认识的列直接忽略
		if _, ok := metas[meta.Col]; ok {
			colMap = setCol(colMap, meta.Col, meta.Keyword)
		}
	}
	queries := make([]elastic.Query, 0, len(colMap))
	highlights := make([]*elastic.HighlighterField, 0, len(colMap))
	for name, keywords := range colMap {
		col := metas[name]
		if col.IsTerm {
			vals := slice.Map(keywords, func(idx int, src string) any {
				return src
			})
			query := elastic.NewTermsQuery(name, vals...)
			if col.Boost != 0 {
				query = query.Boost(float64(col.Boost))
			}
			queries = append(queries, query)
		} else {
			query := elastic.NewMatchQuery(name, strings.Join(keywords, " "))
			if col.Boost != 0 {
				query = query.Boost(float64(col.Boost))
			}
			queries = append(queries, query)
		}
		if col.HighLightConfig.Open {
			field := elastic.NewHighlighterField(name).
				NumOfFragments(col.HighLightConfig.NumOfFragments).
				FragmentSize(col.HighLightConfig.FragmentSize)
			highlights = append(highlights, field)
		}
	}
	return queries, highlights
}

func setCol(colMap map[string][]string, col, keyword string) map[string][]string {
	ks, ok := colMap[col]
	if ok {
		ks = append(ks, keyword)
		colMap[col] = ks
	} else {
		colMap[col] = []string{
			keyword,
		}
	}
	return colMap
}

func getEsHighLights(field elastic.SearchHitHighlight) map[string][]string {
	highlights := make(map[string][]string)
	if field != nil {
		highlights = field
	}
	return highlights
}
