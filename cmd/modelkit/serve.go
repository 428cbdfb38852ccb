package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/w-h-a/modelkit/embedder"
	openaiembedder "github.com/w-h-a/modelkit/embedder/openai"
	"github.com/w-h-a/modelkit/ranker"
	"github.com/w-h-a/modelkit/searcher"
	memorysearcher "github.com/w-h-a/modelkit/searcher/memory"
	postgressearcher "github.com/w-h-a/modelkit/searcher/postgres"
	"github.com/w-h-a/modelkit/server"
	httpserver "github.com/w-h-a/modelkit/server/http"
)

type ServeCmd struct {
	Address string `help:"Listen address." default:":8080"`
	Store   string `help:"Path to a store document to search." type:"existingfile"`
	Dsn     string `help:"Search a pgvector-backed Postgres instead of a store document."`
	Model   string `help:"Embedding model for queries." default:"text-embedding-3-small"`
}

func (c *ServeCmd) Run(rt *runtime) error {
	key, err := rt.requireOpenAIKey()
	if err != nil {
		return err
	}

	if len(c.Store) == 0 && len(c.Dsn) == 0 {
		return errors.New("provide --store or --dsn")
	}

	e := openaiembedder.NewEmbedder(
		embedder.WithApiKey(key),
		embedder.WithModel(c.Model),
	)

	var s searcher.Searcher
	if len(c.Dsn) > 0 {
		s = postgressearcher.NewSearcher(
			searcher.WithLocation(c.Dsn),
		)
	} else {
		store, err := ranker.LoadStore(c.Store)
		if err != nil {
			return err
		}
		s = memorysearcher.NewSearcher(store)
	}

	srv := httpserver.NewServer(e, s, server.WithAddress(c.Address))

	slog.Info("serving semantic search", "address", c.Address)

	if err := srv.Run(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}
