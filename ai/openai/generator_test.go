package openai

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel implements llms.Model for testing without a live service.
type fakeModel struct {
	response *llms.ContentResponse
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func newTestGenerator(model llms.Model) *Generator {
	return &Generator{
		client:       model,
		maxTokens:    4000,
		systemPrompt: defaultSystemPrompt,
		logger:       slog.Default(),
	}
}

func contentResponse(payload string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: payload}},
	}
}

func TestGeneratePairs(t *testing.T) {
	g := newTestGenerator(&fakeModel{
		response: contentResponse(`{"qa_pairs":[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]}`),
	})

	result, err := g.GeneratePairs(context.Background(), "some chunk\n")
	require.NoError(t, err)
	require.True(t, result.OK())
	assert.Equal(t, []core.QAPair{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}, result.Pairs)
}

func TestGeneratePairsServiceFailure(t *testing.T) {
	serviceErr := errors.New("connection refused")
	g := newTestGenerator(&fakeModel{err: serviceErr})

	result, err := g.GeneratePairs(context.Background(), "some chunk\n")
	require.NoError(t, err, "service failures must be recoverable outcomes")
	assert.Equal(t, ai.StatusRequestFailed, result.Status)
	assert.ErrorIs(t, result.Err, serviceErr)
	assert.Empty(t, result.Pairs)
}

func TestGeneratePairsNoChoices(t *testing.T) {
	g := newTestGenerator(&fakeModel{response: &llms.ContentResponse{}})

	result, err := g.GeneratePairs(context.Background(), "some chunk\n")
	require.NoError(t, err)
	assert.Equal(t, ai.StatusRequestFailed, result.Status)
	assert.ErrorIs(t, result.Err, ErrNoContent)
}

func TestGeneratePairsEmptyContent(t *testing.T) {
	g := newTestGenerator(&fakeModel{response: contentResponse("  \n")})

	result, err := g.GeneratePairs(context.Background(), "some chunk\n")
	require.NoError(t, err)
	assert.Equal(t, ai.StatusRequestFailed, result.Status)
	assert.ErrorIs(t, result.Err, ErrNoContent)
}

func TestGeneratePairsMalformedPayload(t *testing.T) {
	g := newTestGenerator(&fakeModel{response: contentResponse("not json")})

	result, err := g.GeneratePairs(context.Background(), "some chunk\n")
	require.NoError(t, err)
	assert.Equal(t, ai.StatusParseFailed, result.Status)
	assert.Error(t, result.Err)
	assert.Empty(t, result.Pairs)
}

func TestGeneratePairsMissingKey(t *testing.T) {
	g := newTestGenerator(&fakeModel{response: contentResponse(`{"something_else":[]}`)})

	result, err := g.GeneratePairs(context.Background(), "some chunk\n")
	require.NoError(t, err)
	assert.Equal(t, ai.StatusOK, result.Status, "a missing qa_pairs key is zero results, not an error")
	assert.Empty(t, result.Pairs)
}

func TestNewGeneratorValidatesConfig(t *testing.T) {
	_, err := NewGenerator(&ai.Config{})
	assert.Error(t, err)
}
