package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"github.com/w-h-a/modelkit/embedder"
)

// The embeddings endpoint accepts up to 2048 inputs per request; stay well
// under that.
const maxBatchSize = 100

type openAIEmbedder struct {
	options embedder.Options
	client  *openai.Client
}

func (e *openAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	rsp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(e.options.Model),
	})
	if err != nil {
		return nil, err
	}

	if len(rsp.Data) == 0 || len(rsp.Data[0].Embedding) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	return rsp.Data[0].Embedding, nil
}

func (e *openAIEmbedder) EmbedBatch(ctx context.Context, texts []string) (*embedder.BatchResult, error) {
	result := &embedder.BatchResult{
		Vectors: make([][]float32, 0, len(texts)),
	}

	for start := 0; start < len(texts); start += maxBatchSize {
		end := min(start+maxBatchSize, len(texts))

		rsp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: texts[start:end],
			Model: openai.EmbeddingModel(e.options.Model),
		})
		if err != nil {
			return nil, err
		}

		if len(rsp.Data) != end-start {
			return nil, fmt.Errorf("OpenAI returned %d embeddings for %d inputs", len(rsp.Data), end-start)
		}

		for _, data := range rsp.Data {
			result.Vectors = append(result.Vectors, data.Embedding)
		}

		result.TotalTokens += rsp.Usage.TotalTokens
	}

	return result, nil
}

func NewEmbedder(opts ...embedder.Option) embedder.Embedder {
	options := embedder.NewOptions(opts...)

	e := &openAIEmbedder{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	e.client = client

	return e
}
