package llm

import (
    "context"

    openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal interface the classifier needs to call a chat
// model. It mirrors the go-openai CreateChatCompletion signature so any
// OpenAI-compatible backend, including Azure deployments, can be adapted.
type Client interface {
    CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to the Client interface.
type OpenAIProvider struct {
    Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
    return p.Inner.CreateChatCompletion(ctx, request)
}

// New builds a provider for an OpenAI-compatible endpoint. When azure is
// true the endpoint is treated as an Azure OpenAI resource and the model
// name doubles as the deployment name.
func New(baseURL, apiKey string, azure bool) *OpenAIProvider {
    var cfg openai.ClientConfig
    if azure {
        cfg = openai.DefaultAzureConfig(apiKey, baseURL)
    } else {
        cfg = openai.DefaultConfig(apiKey)
        if baseURL != "" {
            cfg.BaseURL = baseURL
        }
    }
    return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)}
}
