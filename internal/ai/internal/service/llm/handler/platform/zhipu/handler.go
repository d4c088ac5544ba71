package zhipu

import (
	"context"

	"github.com/ecodeclub/insight/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

// Handler 智谱平台的出口，它不会再调用 next
type Handler struct {
	client *zhipu.Client
}

func NewHandler(apikey string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.buildReq(req).Do(ctx)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildReq(req domain.LLMRequest) *zhipu.ChatCompletionService {
	chatReq := h.client.ChatCompletion(req.Config.Model).
		AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleUser,
			Content: req.Prompt(),
		})

	if req.Config.Temperature > 0 {
		chatReq = chatReq.SetTemperature(req.Config.Temperature)
	}

	if req.Config.TopP > 0 {
		chatReq = chatReq.SetTopP(req.Config.TopP)
	}

	if req.Config.SystemPrompt != "" {
		chatReq = chatReq.AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: req.Config.SystemPrompt,
		})
	}
	return chatReq
}
