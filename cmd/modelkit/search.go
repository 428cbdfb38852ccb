package main

import (
	"fmt"

	"github.com/w-h-a/modelkit/embedder"
	openaiembedder "github.com/w-h-a/modelkit/embedder/openai"
	"github.com/w-h-a/modelkit/ranker"
	"github.com/w-h-a/modelkit/searcher"
	memorysearcher "github.com/w-h-a/modelkit/searcher/memory"
	postgressearcher "github.com/w-h-a/modelkit/searcher/postgres"
)

type SearchCmd struct {
	Store string `arg:"" help:"Path to a store document." type:"existingfile"`
	Query string `arg:"" help:"Query text."`
	TopK  int    `arg:"" optional:"" help:"Number of results." default:"5"`

	Model string `help:"Embedding model override; defaults to the store's model."`
	Dsn   string `help:"Search a pgvector-backed Postgres instead of ranking in memory."`
}

func (c *SearchCmd) Run(rt *runtime) error {
	key, err := rt.requireOpenAIKey()
	if err != nil {
		return err
	}

	if c.TopK < 1 {
		return fmt.Errorf("top-k must be at least 1, got %d", c.TopK)
	}

	store, err := ranker.LoadStore(c.Store)
	if err != nil {
		return err
	}

	model := c.Model
	if len(model) == 0 {
		model = store.Model
	}
	if len(model) == 0 {
		model = "text-embedding-3-small"
	}

	e := openaiembedder.NewEmbedder(
		embedder.WithApiKey(key),
		embedder.WithModel(model),
	)

	vector, err := e.Embed(rt.ctx, c.Query)
	if err != nil {
		return fmt.Errorf("failed to embed query: %w", err)
	}

	var s searcher.Searcher
	if len(c.Dsn) > 0 {
		s = postgressearcher.NewSearcher(
			searcher.WithLocation(c.Dsn),
			searcher.WithDimensions(store.Dimensions),
		)
	} else {
		s = memorysearcher.NewSearcher(store)
	}

	results, err := s.Search(rt.ctx, vector, c.TopK)
	if err != nil {
		return err
	}

	fmt.Printf("Query: %s\n", c.Query)
	fmt.Println(banner(70))
	for i, result := range results {
		fmt.Printf("%2d. [%.6f] %s\n", i+1, result.Score, result.Text)
	}
	fmt.Println(banner(70))

	return nil
}
