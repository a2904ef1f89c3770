// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/qaforge/ai"
	"github.com/poiesic/qaforge/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrNoContent indicates the service returned a choice without message content.
var ErrNoContent = errors.New("no content returned from model")

// Generator implements ai.PairGenerator using OpenAI-compatible chat APIs.
type Generator struct {
	client       llms.Model
	maxTokens    int
	systemPrompt string
	logger       *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	token := config.Token
	if token == "" {
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	systemPrompt := config.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	return &Generator{
		client:       client,
		maxTokens:    config.MaxTokens,
		systemPrompt: systemPrompt,
		logger:       slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a pair generator using the provided configuration.
//
// Returns ai.PairGenerator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.PairGenerator, error) {
	return newGenerator(config)
}

// GeneratePairs requests Q&A pairs for a single chunk via a JSON-mode chat
// completion. Exactly one choice is requested and consulted. Service failures
// and undecodable payloads become recoverable Result outcomes so the caller
// can continue with the next chunk.
func (g *Generator) GeneratePairs(ctx context.Context, chunk core.TextChunk) (*ai.Result, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(g.systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildUserPrompt(chunk)),
			},
		},
	}

	response, err := g.client.GenerateContent(ctx, content,
		llms.WithJSONMode(),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		g.logger.Error("failed to generate content", "err", err)
		return &ai.Result{Status: ai.StatusRequestFailed, Err: err}, nil
	}

	if len(response.Choices) < 1 || strings.TrimSpace(response.Choices[0].Content) == "" {
		g.logger.Debug("no content returned from model")
		return &ai.Result{Status: ai.StatusRequestFailed, Err: ErrNoContent}, nil
	}

	pairs, err := decodePairs(response.Choices[0].Content)
	if err != nil {
		g.logger.Error("failed to decode pairs payload", "err", err)
		return &ai.Result{Status: ai.StatusParseFailed, Err: err}, nil
	}

	g.logger.Debug("generated pairs", "count", len(pairs))
	return &ai.Result{Status: ai.StatusOK, Pairs: pairs}, nil
}
