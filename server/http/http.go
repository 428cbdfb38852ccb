// Package http serves semantic search over JSON/HTTP.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/w-h-a/modelkit/embedder"
	"github.com/w-h-a/modelkit/searcher"
	"github.com/w-h-a/modelkit/server"
)

const defaultLimit = 5

type httpServer struct {
	options  server.Options
	embedder embedder.Embedder
	searcher searcher.Searcher
	srv      *http.Server
}

func (s *httpServer) Run() error {
	return s.srv.ListenAndServe()
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *httpServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /v1/search?q=<query>&k=<limit>
func (s *httpServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) == 0 {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("k"); len(raw) > 0 {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "k must be a positive integer")
			return
		}
		limit = parsed
	}

	vector, err := s.embedder.Embed(r.Context(), query)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to embed query", "error", err)
		writeError(w, http.StatusBadGateway, "embedding service failed")
		return
	}

	results, err := s.searcher.Search(r.Context(), vector, limit)
	if err != nil {
		slog.ErrorContext(r.Context(), "search failed", "error", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"results": results,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"error": detail})
}

func (s *httpServer) router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/v1/search", s.handleSearch).Methods(http.MethodGet)
	return router
}

func NewServer(e embedder.Embedder, s searcher.Searcher, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	h := &httpServer{
		options:  options,
		embedder: e,
		searcher: s,
	}

	h.srv = &http.Server{
		Addr:    options.Address,
		Handler: h.router(),
	}

	return h
}

// Router builds the bare handler, which tests drive directly.
func Router(e embedder.Embedder, s searcher.Searcher) http.Handler {
	h := &httpServer{
		embedder: e,
		searcher: s,
	}
	return h.router()
}
