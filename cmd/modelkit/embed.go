package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/w-h-a/modelkit/embedder"
	googleembedder "github.com/w-h-a/modelkit/embedder/google"
	openaiembedder "github.com/w-h-a/modelkit/embedder/openai"
	"github.com/w-h-a/modelkit/ranker"
)

const embeddingModels = "text-embedding-3-small,text-embedding-3-large,text-embedding-ada-002"

// newTextEmbedder selects an embedding provider. An empty model falls back
// to the provider's default.
func newTextEmbedder(rt *runtime, provider string, model string) (embedder.Embedder, string, error) {
	switch provider {
	case "google":
		if len(rt.googleKey) == 0 {
			return nil, "", errors.New("GOOGLE_API_KEY environment variable not set")
		}
		if len(model) == 0 {
			model = "text-embedding-004"
		}
		e := googleembedder.NewEmbedder(
			embedder.WithApiKey(rt.googleKey),
			embedder.WithModel(model),
		)
		return e, model, nil
	default:
		key, err := rt.requireOpenAIKey()
		if err != nil {
			return nil, "", err
		}
		if len(model) == 0 {
			model = "text-embedding-3-small"
		}
		e := openaiembedder.NewEmbedder(
			embedder.WithApiKey(key),
			embedder.WithModel(model),
		)
		return e, model, nil
	}
}

type EmbedCmd struct {
	Text string `arg:"" help:"Text to embed."`

	Provider string `help:"Embedding provider." enum:"openai,google" default:"openai"`
	Model    string `help:"Embedding model; defaults per provider."`
	Save     string `help:"Write the embedding to a JSON file." type:"path"`
}

func (c *EmbedCmd) Run(rt *runtime) error {
	e, model, err := newTextEmbedder(rt, c.Provider, c.Model)
	if err != nil {
		return err
	}
	c.Model = model

	fmt.Println(banner(70))
	fmt.Println("Text Embeddings Generator")
	fmt.Println(banner(70))
	fmt.Printf("\nText: %s\n", c.Text)
	fmt.Printf("Model: %s\n", c.Model)
	fmt.Println("\nGenerating embedding...")

	batch, err := e.EmbedBatch(rt.ctx, []string{c.Text})
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	vector := batch.Vectors[0]

	fmt.Println()
	fmt.Println(banner(70))
	fmt.Printf("Dimensions: %d\n", len(vector))
	fmt.Printf("Tokens used: %d\n", batch.TotalTokens)

	fmt.Println("\nFirst 10 values (preview):")
	fmt.Println("[")
	for i := 0; i < min(10, len(vector)); i++ {
		fmt.Printf("  %.8f,\n", vector[i])
	}
	fmt.Println("  ...")
	fmt.Println("]")

	stats := ranker.Summarize(vector)
	fmt.Println("\nStatistics:")
	fmt.Printf("  Mean: %.8f\n", stats.Mean)
	fmt.Printf("  Std Dev: %.8f\n", stats.StdDev)
	fmt.Printf("  Min: %.8f\n", stats.Min)
	fmt.Printf("  Max: %.8f\n", stats.Max)
	fmt.Printf("  L2 Norm: %.8f\n", stats.Norm)

	if len(c.Save) > 0 {
		if err := c.save(vector, batch.TotalTokens); err != nil {
			return err
		}
		fmt.Printf("\n✓ Embedding saved to: %s\n", c.Save)
	}

	fmt.Println(banner(70))

	return nil
}

func (c *EmbedCmd) save(vector []float32, tokens int) error {
	doc := map[string]any{
		"text":         c.Text,
		"model":        c.Model,
		"embedding":    vector,
		"dimensions":   len(vector),
		"total_tokens": tokens,
	}

	f, err := os.Create(c.Save)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Save, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

type CompareCmd struct {
	Text1 string `arg:"" help:"First text."`
	Text2 string `arg:"" help:"Second text."`

	Provider string `help:"Embedding provider." enum:"openai,google" default:"openai"`
	Model    string `help:"Embedding model; defaults per provider."`
}

func (c *CompareCmd) Run(rt *runtime) error {
	e, model, err := newTextEmbedder(rt, c.Provider, c.Model)
	if err != nil {
		return err
	}
	c.Model = model

	fmt.Println(banner(70))
	fmt.Println("Text Similarity")
	fmt.Println(banner(70))
	fmt.Printf("\nModel: %s\n", c.Model)
	fmt.Printf("Text 1: %s\n", c.Text1)
	fmt.Printf("Text 2: %s\n", c.Text2)
	fmt.Println("\nGenerating embeddings...")

	batch, err := e.EmbedBatch(rt.ctx, []string{c.Text1, c.Text2})
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	if len(batch.Vectors) != 2 {
		return errors.New("expected two embeddings")
	}

	similarity, err := ranker.CosineSimilarity(batch.Vectors[0], batch.Vectors[1])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(banner(70))
	fmt.Println("Results:")
	fmt.Println(banner(70))
	fmt.Printf("Dimensions: %d\n", len(batch.Vectors[0]))
	fmt.Printf("\nCosine Similarity: %.6f\n", similarity)
	fmt.Printf("Similarity Percentage: %.2f%%\n", similarity*100)
	fmt.Printf("\nInterpretation:\n  %s\n", interpret(similarity))
	fmt.Printf("\nTokens used: %d\n", batch.TotalTokens)
	fmt.Println(banner(70))

	return nil
}

func interpret(similarity float64) string {
	switch {
	case similarity > 0.9:
		return "✓ Very similar - Nearly identical meaning"
	case similarity > 0.7:
		return "✓ Similar - Related concepts"
	case similarity > 0.5:
		return "~ Somewhat similar - Some relation"
	case similarity > 0.3:
		return "~ Weakly similar - Distant relation"
	default:
		return "✗ Different - Unrelated concepts"
	}
}
