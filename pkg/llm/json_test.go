package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a": 1}`, `{"a": 1}`},
		{"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"  {\"a\": 1}  ", `{"a": 1}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripFences(tt.in))
	}
}

func TestCompleteJSON_DecodesFencedResponse(t *testing.T) {
	primary := &fakeProvider{name: "openai", model: "m"}
	g := NewGateway(primary, &fakeProvider{name: "anthropic", model: "m"}, fastConfig())

	var out struct {
		OK bool `json:"ok"`
	}
	err := g.CompleteJSON(context.Background(), Request{Op: "analysis"}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
}

type textProvider struct {
	fakeProvider
	text string
}

func (p *textProvider) Complete(ctx context.Context, req Request) (Response, error) {
	resp, err := p.fakeProvider.Complete(ctx, req)
	resp.Text = p.text
	return resp, err
}

func TestCompleteJSON_ParseError(t *testing.T) {
	primary := &textProvider{fakeProvider: fakeProvider{name: "openai", model: "m"}, text: "not json at all"}
	g := NewGateway(primary, &fakeProvider{name: "anthropic", model: "m"}, fastConfig())

	var out map[string]any
	err := g.CompleteJSON(context.Background(), Request{Op: "analysis"}, &out)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "analysis", parseErr.Op)
	assert.Contains(t, parseErr.Raw, "not json")
}
