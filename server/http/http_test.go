package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/modelkit/embedder"
	"github.com/w-h-a/modelkit/ranker"
	memorysearcher "github.com/w-h-a/modelkit/searcher/memory"
)

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return s.vector, s.err
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) (*embedder.BatchResult, error) {
	return nil, errors.New("not used")
}

func newTestRouter(t *testing.T, e embedder.Embedder) http.Handler {
	t.Helper()

	s := memorysearcher.NewSearcher(&ranker.Store{
		Records: []ranker.Record{
			{Text: "cat", Vector: []float32{1, 0}},
			{Text: "dog", Vector: []float32{0.9, 0.1}},
			{Text: "car", Vector: []float32{0, 1}},
		},
	})

	return Router(e, s)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &stubEmbedder{vector: []float32{1, 0}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearch(t *testing.T) {
	t.Run("returns ranked results", func(t *testing.T) {
		router := newTestRouter(t, &stubEmbedder{vector: []float32{1, 0}})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search?q=feline&k=2", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Query   string          `json:"query"`
			Results []ranker.Result `json:"results"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

		assert.Equal(t, "feline", body.Query)
		require.Len(t, body.Results, 2)
		assert.Equal(t, "cat", body.Results[0].Text)
	})

	t.Run("requires a query", func(t *testing.T) {
		router := newTestRouter(t, &stubEmbedder{vector: []float32{1, 0}})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a bad k", func(t *testing.T) {
		router := newTestRouter(t, &stubEmbedder{vector: []float32{1, 0}})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search?q=x&k=zero", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reports embedder failure", func(t *testing.T) {
		router := newTestRouter(t, &stubEmbedder{err: errors.New("rate limited")})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search?q=x", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("reports search failure", func(t *testing.T) {
		// Wrong query dimension trips the ranker.
		router := newTestRouter(t, &stubEmbedder{vector: []float32{1, 0, 0}})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search?q=x", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
