package google

import (
	"context"
	"errors"

	"github.com/google/generative-ai-go/genai"
	"github.com/w-h-a/modelkit/embedder"
	genaiopt "google.golang.org/api/option"
)

// contentEmbedder is the slice of *genai.EmbeddingModel the embedder needs.
type contentEmbedder interface {
	EmbedContent(ctx context.Context, parts ...genai.Part) (*genai.EmbedContentResponse, error)
}

type googleEmbedder struct {
	options embedder.Options
	model   contentEmbedder
}

func (e *googleEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	rsp, err := e.model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}

	if rsp == nil || rsp.Embedding == nil || len(rsp.Embedding.Values) == 0 {
		return nil, errors.New("no response from Google")
	}

	return rsp.Embedding.Values, nil
}

// EmbedBatch embeds one text per request. The genai API does not report
// token usage for embeddings, so TotalTokens stays zero.
func (e *googleEmbedder) EmbedBatch(ctx context.Context, texts []string) (*embedder.BatchResult, error) {
	result := &embedder.BatchResult{
		Vectors: make([][]float32, 0, len(texts)),
	}

	for _, text := range texts {
		vec, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		result.Vectors = append(result.Vectors, vec)
	}

	return result, nil
}

func NewEmbedder(opts ...embedder.Option) embedder.Embedder {
	options := embedder.NewOptions(opts...)

	e := &googleEmbedder{
		options: options,
	}

	client, err := genai.NewClient(
		context.Background(),
		genaiopt.WithAPIKey(options.ApiKey),
	)
	if err != nil {
		panic(err)
	}

	e.model = client.EmbeddingModel(options.Model)

	return e
}
