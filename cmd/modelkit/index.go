package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/w-h-a/modelkit/embedder"
	openaiembedder "github.com/w-h-a/modelkit/embedder/openai"
	"github.com/w-h-a/modelkit/ranker"
	"github.com/w-h-a/modelkit/searcher"
	postgressearcher "github.com/w-h-a/modelkit/searcher/postgres"
)

type IndexCmd struct {
	Input  string `arg:"" help:"Input file with one text per line." type:"existingfile"`
	Output string `arg:"" optional:"" help:"Store document to write." default:"embeddings.json"`

	Model string `help:"Embedding model." enum:"${embedding_models}" default:"text-embedding-3-small"`
	Dsn   string `help:"Also load the records into a pgvector-backed Postgres."`
}

func (c *IndexCmd) Run(rt *runtime) error {
	key, err := rt.requireOpenAIKey()
	if err != nil {
		return err
	}

	texts, err := readLines(c.Input)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return fmt.Errorf("input file %s is empty", c.Input)
	}

	fmt.Println(banner(70))
	fmt.Println("Batch Embeddings Generator")
	fmt.Println(banner(70))
	fmt.Printf("\nFound %d texts to process\n", len(texts))
	fmt.Printf("Model: %s\n", c.Model)
	fmt.Println("\nGenerating embeddings...")

	e := openaiembedder.NewEmbedder(
		embedder.WithApiKey(key),
		embedder.WithModel(c.Model),
	)

	batch, err := e.EmbedBatch(rt.ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	if len(batch.Vectors) != len(texts) {
		return errors.New("embedding count does not match input count")
	}

	store := &ranker.Store{
		Model:       c.Model,
		Dimensions:  len(batch.Vectors[0]),
		TotalTokens: batch.TotalTokens,
		Records:     make([]ranker.Record, 0, len(texts)),
	}

	for i, text := range texts {
		store.Records = append(store.Records, ranker.Record{
			Text:   text,
			Vector: batch.Vectors[i],
		})
	}

	fmt.Printf("\nSaving embeddings to: %s\n", c.Output)
	if err := ranker.WriteStore(c.Output, store); err != nil {
		return err
	}

	if len(c.Dsn) > 0 {
		fmt.Println("Loading records into Postgres...")
		pg := postgressearcher.NewSearcher(
			searcher.WithLocation(c.Dsn),
			searcher.WithDimensions(store.Dimensions),
		)
		if err := pg.Index(rt.ctx, store.Records); err != nil {
			return fmt.Errorf("failed to load Postgres: %w", err)
		}
	}

	info, err := os.Stat(c.Output)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(banner(70))
	fmt.Println("✓ Success!")
	fmt.Println(banner(70))
	fmt.Printf("Processed: %d texts\n", len(store.Records))
	fmt.Printf("Dimensions: %d\n", store.Dimensions)
	fmt.Printf("Tokens used: %d\n", store.TotalTokens)
	fmt.Printf("Output file: %s\n", c.Output)
	fmt.Printf("File size: %s\n", formatSize(info.Size()))
	fmt.Println(banner(70))

	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}
