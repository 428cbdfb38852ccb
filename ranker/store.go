package ranker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrInvalidRecord = errors.New("invalid store record")

// Store is an immutable, ordered corpus of records sharing one embedding
// model and dimension. Build it once, then treat it as read-only.
type Store struct {
	Model       string
	Dimensions  int
	TotalTokens int
	Records     []Record
}

// storeDocument is the persisted form: the JSON a batch embedding run
// writes, with a model/dimension header for validation on reload.
type storeDocument struct {
	Model       string        `json:"model"`
	Dimensions  int           `json:"dimensions"`
	TotalTexts  int           `json:"total_texts"`
	TotalTokens int           `json:"total_tokens"`
	Embeddings  []storeRecord `json:"embeddings"`
}

type storeRecord struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// LoadStore reads and validates a persisted store document.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer f.Close()

	store, err := DecodeStore(f)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", path, err)
	}

	return store, nil
}

// DecodeStore parses a store document and rejects malformed entries before
// they can reach the ranker: empty text, empty vectors, and vectors whose
// length disagrees with the header dimension (or, absent a header, with the
// first record).
func DecodeStore(r io.Reader) (*Store, error) {
	var doc storeDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	if len(doc.Embeddings) == 0 {
		return nil, fmt.Errorf("%w: store holds no embeddings", ErrInvalidRecord)
	}

	dimensions := doc.Dimensions
	if dimensions <= 0 {
		dimensions = len(doc.Embeddings[0].Embedding)
	}

	store := &Store{
		Model:       doc.Model,
		Dimensions:  dimensions,
		TotalTokens: doc.TotalTokens,
		Records:     make([]Record, 0, len(doc.Embeddings)),
	}

	for i, rec := range doc.Embeddings {
		if len(rec.Text) == 0 {
			return nil, fmt.Errorf("%w: record %d has no text", ErrInvalidRecord, i)
		}
		if len(rec.Embedding) == 0 {
			return nil, fmt.Errorf("%w: record %d %q has no embedding", ErrInvalidRecord, i, rec.Text)
		}
		if len(rec.Embedding) != dimensions {
			return nil, fmt.Errorf("%w: record %d %q has dimension %d, want %d", ErrInvalidRecord, i, rec.Text, len(rec.Embedding), dimensions)
		}
		store.Records = append(store.Records, Record{Text: rec.Text, Vector: rec.Embedding})
	}

	return store, nil
}

// WriteStore persists the store in the document format DecodeStore reads.
func WriteStore(path string, store *Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer f.Close()

	return EncodeStore(f, store)
}

// EncodeStore writes the store document with indentation, matching the
// layout earlier batch runs produced.
func EncodeStore(w io.Writer, store *Store) error {
	doc := storeDocument{
		Model:       store.Model,
		Dimensions:  store.Dimensions,
		TotalTexts:  len(store.Records),
		TotalTokens: store.TotalTokens,
		Embeddings:  make([]storeRecord, 0, len(store.Records)),
	}

	for i, rec := range store.Records {
		doc.Embeddings = append(doc.Embeddings, storeRecord{
			Text:      rec.Text,
			Embedding: rec.Vector,
			Index:     i,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
