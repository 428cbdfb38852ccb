package openai

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
	"github.com/w-h-a/modelkit/generator"
)

type openAIGenerator struct {
	options generator.Options
	client  *openai.Client
}

// Generate sends a single-turn chat completion. Model may be a base model
// or a fine-tuned "ft:" identifier.
func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (*generator.Response, error) {
	messages := []openai.ChatCompletionMessage{}

	if len(g.options.SystemPrompt) > 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: g.options.SystemPrompt,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       g.options.Model,
		Messages:    messages,
		MaxTokens:   g.options.MaxTokens,
		Temperature: g.options.Temperature,
	}

	rsp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Message.Content) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	return &generator.Response{
		Content:     rsp.Choices[0].Message.Content,
		TotalTokens: rsp.Usage.TotalTokens,
	}, nil
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &openAIGenerator{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	g.client = client

	return g
}
