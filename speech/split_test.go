package speech

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("short text stays in one chunk", func(t *testing.T) {
		chunks := Split("Hello, world.", 100)
		assert.Equal(t, []string{"Hello, world."}, chunks)
	})

	t.Run("adds missing trailing period", func(t *testing.T) {
		chunks := Split("Hello, world", 100)
		assert.Equal(t, []string{"Hello, world."}, chunks)
	})

	t.Run("empty text yields no chunks", func(t *testing.T) {
		assert.Empty(t, Split("", 100))
		assert.Empty(t, Split("   \n  ", 100))
	})

	t.Run("packs sentences up to the limit", func(t *testing.T) {
		text := "One sentence here. Another sentence here. A third sentence here."

		chunks := Split(text, 45)
		require.Len(t, chunks, 2)
		assert.Equal(t, "One sentence here. Another sentence here.", chunks[0])
		assert.Equal(t, "A third sentence here.", chunks[1])
	})

	t.Run("no chunk exceeds the limit", func(t *testing.T) {
		text := strings.Repeat("This is a sentence of reasonable length. ", 500)

		chunks := Split(text, 4096)
		require.NotEmpty(t, chunks)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 4096)
		}
	})

	t.Run("hard-splits an oversized sentence", func(t *testing.T) {
		text := strings.Repeat("a", 250)

		chunks := Split(text, 100)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 100)
		}
		assert.Equal(t, len(text)+1, len(strings.Join(chunks, "")))
	})

	t.Run("hard-splits on rune boundaries", func(t *testing.T) {
		text := strings.Repeat("héllo wörld ", 30)

		chunks := Split(text, 50)
		require.Greater(t, len(chunks), 1)
		for _, chunk := range chunks {
			assert.True(t, utf8.ValidString(chunk), "chunk %q cuts a rune", chunk)
			assert.LessOrEqual(t, len(chunk), 50)
		}
		assert.Equal(t, strings.Count(text, "ö"), strings.Count(strings.Join(chunks, ""), "ö"))
	})

	t.Run("newlines become spaces", func(t *testing.T) {
		chunks := Split("First line\nsecond line.", 100)
		assert.Equal(t, []string{"First line second line."}, chunks)
	})
}
