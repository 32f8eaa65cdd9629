package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// MessagesClient captures the subset of the Anthropic SDK client the
// provider uses. It is satisfied by *sdk.MessageService so callers can pass
// either a real client or a scripted one in tests.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicProvider implements Provider via the Claude Messages API.
type AnthropicProvider struct {
	msg       MessagesClient
	model     string
	maxTokens int
}

// NewAnthropicProvider builds a provider over an existing Messages client.
// maxTokens is the completion cap used when a request does not set one; the
// Messages API requires it to be positive.
func NewAnthropicProvider(msg MessagesClient, model string, maxTokens int) (*AnthropicProvider, error) {
	if msg == nil {
		return nil, errors.New("anthropic messages client is required")
	}
	if model == "" {
		return nil, errors.New("anthropic model identifier is required")
	}
	if maxTokens <= 0 {
		return nil, errors.New("anthropic max tokens must be positive")
	}
	return &AnthropicProvider{msg: msg, model: model, maxTokens: maxTokens}, nil
}

// NewAnthropicProviderFromAPIKey constructs a provider using the default
// Anthropic HTTP client.
func NewAnthropicProviderFromAPIKey(apiKey, model string, maxTokens int) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropicProvider(&ac.Messages, model, maxTokens)
}

// Name implements Provider.
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Model implements Provider.
func (p *AnthropicProvider) Model() string { return p.model }

// Complete implements Provider.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (Response, error) {
	if req.User == "" {
		return Response{}, errors.New("anthropic: user prompt is required")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.maxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: int64(maxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.User)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(float64(req.Temperature))
	}

	msg, err := p.msg.New(ctx, params)
	if err != nil {
		return Response{}, fmt.Errorf("anthropic messages.new: %w", err)
	}
	if msg == nil {
		return Response{}, errors.New("anthropic: response message is nil")
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			text.WriteString(block.Text)
		}
	}

	return Response{
		Text:         text.String(),
		Provider:     p.Name(),
		Model:        p.model,
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}, nil
}
