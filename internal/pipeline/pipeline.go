// Package pipeline wires the Special-Token Splitter, BPE Engine, and Visual
// Assembler into the single path spec §2's data-flow diagram describes:
// text -> splitter -> per-chunk BPE -> visual assembly. Both the root
// facade's one-shot Tokenize and the Incremental Engine's partial
// re-tokenize share this path so they can never drift apart.
package pipeline

import (
	"github.com/tokviz/tokviz/internal/bpe"
	"github.com/tokviz/tokviz/internal/specials"
	"github.com/tokviz/tokviz/internal/token"
	"github.com/tokviz/tokviz/internal/visual"
	"github.com/tokviz/tokviz/internal/vocab"
)

// Tokenize runs the full pipeline over text from scratch.
func Tokenize(v *vocab.Vocabulary, text string) []token.Visual {
	return TokenizeSlice(v, text, 0, 0)
}

// TokenizeSlice runs the full pipeline over a substring of some larger
// input, rebasing byte offsets by byteBase and character offsets by
// charBase so the result can be spliced back into a larger token sequence.
func TokenizeSlice(v *vocab.Vocabulary, text string, byteBase, charBase int) []token.Visual {
	chunks := specials.Split(v, text)

	var raw []token.Raw
	for _, c := range chunks {
		if c.Kind == specials.SpecialKind {
			raw = append(raw, token.Raw{
				ID:        c.ID,
				Text:      c.Literal,
				ByteStart: c.ByteStart,
				ByteEnd:   c.ByteEnd,
			})
			continue
		}

		pieceTokens := bpe.EncodeChunk(v, []byte(c.Text))
		for _, t := range pieceTokens {
			t.ByteStart += c.ByteStart
			t.ByteEnd += c.ByteStart
			raw = append(raw, t)
		}
	}

	for i := range raw {
		raw[i].ByteStart += byteBase
		raw[i].ByteEnd += byteBase
	}

	return visual.Assemble(raw, v.VocabSize(), charBase)
}
