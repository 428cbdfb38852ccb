package memory

import (
	"context"
	"sync"

	"github.com/w-h-a/modelkit/ranker"
	"github.com/w-h-a/modelkit/searcher"
)

type memorySearcher struct {
	options searcher.Options
	store   *ranker.Store
	mtx     sync.RWMutex
}

func (s *memorySearcher) Index(ctx context.Context, records []ranker.Record) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, rec := range records {
		cpy := make([]float32, len(rec.Vector))
		copy(cpy, rec.Vector)
		s.store.Records = append(s.store.Records, ranker.Record{Text: rec.Text, Vector: cpy})
	}

	return nil
}

func (s *memorySearcher) Search(ctx context.Context, vector []float32, limit int) ([]ranker.Result, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return ranker.Rank(vector, s.store, limit)
}

// NewSearcher wraps an in-memory store. A nil store starts empty.
func NewSearcher(store *ranker.Store, opts ...searcher.Option) searcher.Searcher {
	options := searcher.NewOptions(opts...)

	if store == nil {
		store = &ranker.Store{}
	}

	s := &memorySearcher{
		options: options,
		store:   store,
		mtx:     sync.RWMutex{},
	}

	return s
}
