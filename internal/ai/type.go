package ai

import (
	"github.com/ecodeclub/insight/internal/ai/internal/domain"
	"github.com/ecodeclub/insight/internal/ai/internal/service/llm"
	aiquota "github.com/ecodeclub/insight/internal/ai/internal/service/llm/handler/quota"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type BizConfig = domain.BizConfig
type LLMService = llm.Service

const (
	BizEnrichSentiment       = domain.BizEnrichSentiment
	BizEnrichTopics          = domain.BizEnrichTopics
	BizEnrichRecommendations = domain.BizEnrichRecommendations
	BizEnrichActions         = domain.BizEnrichActions
)

// ErrQuotaExceeded 配额预检不通过。调用方应当降级而不是重试
var ErrQuotaExceeded = aiquota.ErrQuotaExceeded
