package ranker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store := &Store{
		Model:       "text-embedding-3-small",
		Dimensions:  3,
		TotalTokens: 42,
		Records: []Record{
			{Text: "cat", Vector: []float32{1, 0, 0}},
			{Text: "dog", Vector: []float32{0, 1, 0}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeStore(&buf, store))

	decoded, err := DecodeStore(&buf)
	require.NoError(t, err)

	assert.Equal(t, store.Model, decoded.Model)
	assert.Equal(t, store.Dimensions, decoded.Dimensions)
	assert.Equal(t, store.TotalTokens, decoded.TotalTokens)
	assert.Equal(t, store.Records, decoded.Records)
}

func TestDecodeStoreValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "not json",
			doc:  "not json at all",
		},
		{
			name: "no embeddings",
			doc:  `{"model": "m", "embeddings": []}`,
		},
		{
			name: "record without text",
			doc:  `{"embeddings": [{"text": "", "embedding": [1, 2]}]}`,
		},
		{
			name: "record without embedding",
			doc:  `{"embeddings": [{"text": "cat", "embedding": []}]}`,
		},
		{
			name: "record with non-numeric values",
			doc:  `{"embeddings": [{"text": "cat", "embedding": ["x", "y"]}]}`,
		},
		{
			name: "record disagrees with header dimension",
			doc:  `{"dimensions": 3, "embeddings": [{"text": "cat", "embedding": [1, 2]}]}`,
		},
		{
			name: "records disagree with each other",
			doc:  `{"embeddings": [{"text": "cat", "embedding": [1, 2]}, {"text": "dog", "embedding": [1, 2, 3]}]}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := DecodeStore(strings.NewReader(test.doc))
			require.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestDecodeStoreInfersDimensionFromFirstRecord(t *testing.T) {
	doc := `{"embeddings": [{"text": "cat", "embedding": [1, 2, 3]}, {"text": "dog", "embedding": [4, 5, 6]}]}`

	store, err := DecodeStore(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, store.Dimensions)
	assert.Len(t, store.Records, 2)
}

func TestLoadStore(t *testing.T) {
	t.Run("reads a written store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "embeddings.json")

		store := &Store{
			Model:      "text-embedding-3-small",
			Dimensions: 2,
			Records:    []Record{{Text: "cat", Vector: []float32{1, 0}}},
		}
		require.NoError(t, WriteStore(path, store))

		loaded, err := LoadStore(path)
		require.NoError(t, err)
		assert.Equal(t, store.Records, loaded.Records)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadStore(filepath.Join(t.TempDir(), "nope.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
