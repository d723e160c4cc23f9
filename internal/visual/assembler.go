// Package visual assembles raw tokens into display-ready visual tokens, per
// spec §4.6: it adds Unicode-scalar character offsets and consults the
// Token Classifier exactly once per token.
package visual

import (
	"unicode/utf8"

	"github.com/tokviz/tokviz/internal/classify"
	"github.com/tokviz/tokviz/internal/token"
)

// Assemble turns raw tokens into visual tokens. charBase is the scalar
// count of whatever text precedes raw[0] in the caller's coordinate space
// (0 for a full tokenize, or the scalar count of the retained prefix for a
// partial re-tokenize in the Incremental Engine).
func Assemble(raw []token.Raw, vocabSize int, charBase int) []token.Visual {
	out := make([]token.Visual, len(raw))
	charPos := charBase
	for i, r := range raw {
		scalars := utf8.RuneCountInString(r.Text)
		cat := classify.Categorize(r.ID, r.Text)
		out[i] = token.Visual{
			Raw:       r,
			CharStart: charPos,
			CharEnd:   charPos + scalars,
			Color:     classify.ColorFor(cat),
			Category:  cat,
			Weight:    classify.WeightFor(r.ID, vocabSize),
		}
		charPos += scalars
	}
	return out
}
