package ai

type Module struct {
	Svc LLMService
}
