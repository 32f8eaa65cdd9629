package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient captures the subset of the go-openai client the provider uses,
// so tests can substitute a scripted implementation.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (
		openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements Provider via the OpenAI Chat Completions API.
type OpenAIProvider struct {
	chat  ChatClient
	model string
}

// NewOpenAIProvider builds a provider over an existing chat client.
func NewOpenAIProvider(chat ChatClient, model string) (*OpenAIProvider, error) {
	if chat == nil {
		return nil, errors.New("openai chat client is required")
	}
	if model == "" {
		return nil, errors.New("openai model identifier is required")
	}
	return &OpenAIProvider{chat: chat, model: model}, nil
}

// NewOpenAIProviderFromAPIKey constructs a provider using the default
// go-openai HTTP client.
func NewOpenAIProviderFromAPIKey(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	return NewOpenAIProvider(openai.NewClient(apiKey), model)
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// Model implements Provider.
func (p *OpenAIProvider) Model() string { return p.model }

// Complete implements Provider.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (Response, error) {
	if req.User == "" {
		return Response{}, errors.New("openai: user prompt is required")
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	resp, err := p.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return Response{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("openai: response has no choices")
	}

	return Response{
		Text:         resp.Choices[0].Message.Content,
		Provider:     p.Name(),
		Model:        p.model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
	}, nil
}
