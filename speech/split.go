package speech

import (
	"strings"
	"unicode/utf8"
)

// Split breaks text into chunks of at most limit characters, preferring
// sentence boundaries. Sentences keep their trailing period; a single
// sentence longer than the limit is split mid-sentence, on a rune boundary.
func Split(text string, limit int) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var chunks []string
	var current strings.Builder

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); len(chunk) > 0 {
			chunks = append(chunks, chunk)
		}
		current.Reset()
	}

	for _, sentence := range strings.Split(text, ". ") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) == 0 {
			continue
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}

		for len(sentence) > limit {
			flush()
			cut := limit
			for cut > 0 && !utf8.RuneStart(sentence[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
			chunks = append(chunks, sentence[:cut])
			sentence = sentence[cut:]
		}
		if len(sentence) == 0 {
			continue
		}

		if current.Len()+len(sentence)+1 > limit {
			flush()
		}

		current.WriteString(sentence)
		current.WriteString(" ")
	}

	flush()

	return chunks
}
