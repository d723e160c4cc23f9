// Package specials implements the splitter described in spec §4.3: it
// segments raw text into literal special-token chunks and the plain text
// between them, before any byte-pair merging happens.
//
// It follows split_special_tokens in
// original_source/crates/prompt-quant-core/src/bpe.rs (earliest-position
// scan over the remaining text), generalized to Go's Chunk sum type per
// spec §7's polymorphism note.
package specials

import (
	"strings"

	"github.com/tokviz/tokviz/internal/vocab"
)

// Kind distinguishes the two Chunk variants.
type Kind int

const (
	// Text is a run of ordinary input bytes to be BPE-encoded.
	Text Kind = iota
	// SpecialKind is a literal special-token match.
	SpecialKind
)

// Chunk is the tagged union spec §7 asks for: exactly two cases, realized
// as a sum type rather than an inheritance hierarchy.
type Chunk struct {
	Kind      Kind
	Text      string
	Literal   string
	ID        int
	ByteStart int
	ByteEnd   int
}

// candidate is a special-token literal considered for the next match, along
// with its registration order for tie-breaking.
type candidate struct {
	literal string
	id      int
	order   int
}

// Split scans text left to right, repeatedly locating the earliest special
// token literal in the remainder. Ties at the same earliest position are
// broken by literal length (longest first), then by the vocabulary's
// registration order, both of which are stable across identical inputs —
// satisfying spec §4.3's "must be stable" requirement without pinning down
// a single universal policy.
func Split(v *vocab.Vocabulary, text string) []Chunk {
	literals := v.SpecialTokens()
	if literals == nil || literals.Len() == 0 {
		if text == "" {
			return nil
		}
		return []Chunk{{Kind: Text, Text: text, ByteStart: 0, ByteEnd: len(text)}}
	}

	cands := make([]candidate, 0, literals.Len())
	order := 0
	for pair := literals.Oldest(); pair != nil; pair = pair.Next() {
		cands = append(cands, candidate{literal: pair.Key, id: pair.Value, order: order})
		order++
	}

	var chunks []Chunk
	offset := 0
	remaining := text

	for {
		bestPos := -1
		var best candidate
		for _, c := range cands {
			pos := strings.Index(remaining, c.literal)
			if pos == -1 {
				continue
			}
			if bestPos == -1 || pos < bestPos ||
				(pos == bestPos && isBetterTie(c, best)) {
				bestPos = pos
				best = c
			}
		}

		if bestPos == -1 {
			if len(remaining) > 0 {
				chunks = append(chunks, Chunk{
					Kind: Text, Text: remaining,
					ByteStart: offset, ByteEnd: offset + len(remaining),
				})
			}
			break
		}

		if bestPos > 0 {
			chunks = append(chunks, Chunk{
				Kind: Text, Text: remaining[:bestPos],
				ByteStart: offset, ByteEnd: offset + bestPos,
			})
		}

		litStart := offset + bestPos
		litEnd := litStart + len(best.literal)
		chunks = append(chunks, Chunk{
			Kind: SpecialKind, Literal: best.literal, ID: best.id,
			ByteStart: litStart, ByteEnd: litEnd,
		})

		offset = litEnd
		remaining = remaining[bestPos+len(best.literal):]
	}

	return chunks
}

func isBetterTie(a, b candidate) bool {
	if len(a.literal) != len(b.literal) {
		return len(a.literal) > len(b.literal)
	}
	return a.order < b.order
}
