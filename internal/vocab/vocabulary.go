package vocab

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Vocabulary is the immutable bundle described in spec §3: encoder/decoder
// tables, the merge table, the special-token map, and a cached vocab size.
// Once built it is never mutated, so concurrent readers need no locking —
// the guarantee §5 asks the registry to provide.
type Vocabulary struct {
	id              string
	codec           *codec
	merges          *MergeTable
	special         *orderedmap.OrderedMap[string, int]
	vocabSize       int
	maxTokenByteLen int
}

// ID is the vocabulary's registry identifier (e.g. "cl100k_base").
func (v *Vocabulary) ID() string { return v.id }

// VocabSize is |encoder| + |special_tokens|, cached at construction.
func (v *Vocabulary) VocabSize() int { return v.vocabSize }

// MaxTokenByteLen is the longest token (in bytes) this vocabulary contains.
// The Incremental Engine derives its context margin from this instead of
// assuming a fixed 32 bytes (spec §4.7 correctness note).
func (v *Vocabulary) MaxTokenByteLen() int { return v.maxTokenByteLen }

// Merges exposes the merge table to the BPE engine.
func (v *Vocabulary) Merges() *MergeTable { return v.merges }

// ByteToken returns the base single-byte token id for a raw byte.
func (v *Vocabulary) ByteToken(b byte) int { return v.codec.byteToToken[b] }

// EncodePiece looks up a fully-merged piece, falling back to id 0 (§4.2).
func (v *Vocabulary) EncodePiece(piece []byte) int { return v.codec.encodePiece(piece) }

// TokenBytes returns the exact byte sequence for id, or nil if out of range.
func (v *Vocabulary) TokenBytes(id int) []byte { return v.codec.tokenBytes(id) }

// TokenLen is the byte length of a token, or 0 if id is out of range.
func (v *Vocabulary) TokenLen(id int) int { return len(v.codec.tokenBytes(id)) }

// Decode concatenates decoder[id] for each id (§4.2).
func (v *Vocabulary) Decode(ids []int) []byte { return v.codec.decodeIDs(ids) }

// SpecialTokens returns the literal->id map in insertion order, used by the
// splitter to break position ties deterministically (§4.3).
func (v *Vocabulary) SpecialTokens() *orderedmap.OrderedMap[string, int] { return v.special }

// builder accumulates base bytes, learned merges, and special tokens into an
// immutable Vocabulary, starting from byte-sequence merge definitions instead
// of a vocab.json + merges.txt pair.
type builder struct {
	decoder [][]byte
	byBytes map[string]int
	entries []MergeEntry
	special *orderedmap.OrderedMap[string, int]
}

func newBuilder() *builder {
	b := &builder{
		decoder: make([][]byte, 256),
		byBytes: make(map[string]int, 256),
		special: orderedmap.New[string, int](),
	}
	for i := 0; i < 256; i++ {
		b.decoder[i] = []byte{byte(i)}
		b.byBytes[string([]byte{byte(i)})] = i
	}
	return b
}

// merge appends a learned merge (left, right) to the vocabulary, in order.
// Both operands must already be present as tokens (single bytes or earlier
// merges) or the vocabulary is malformed.
func (b *builder) merge(left, right []byte) error {
	leftID, ok := b.byBytes[string(left)]
	if !ok {
		return fmt.Errorf("vocab: merge operand %q is not a known token", left)
	}
	rightID, ok := b.byBytes[string(right)]
	if !ok {
		return fmt.Errorf("vocab: merge operand %q is not a known token", right)
	}

	merged := make([]byte, 0, len(left)+len(right))
	merged = append(merged, left...)
	merged = append(merged, right...)
	if _, exists := b.byBytes[string(merged)]; exists {
		return fmt.Errorf("vocab: merge produces duplicate token %q", merged)
	}

	mergedID := len(b.decoder)
	b.decoder = append(b.decoder, merged)
	b.byBytes[string(merged)] = mergedID

	b.entries = append(b.entries, MergeEntry{
		Left:     leftID,
		Right:    rightID,
		MergedID: mergedID,
		Rank:     len(b.entries),
	})
	return nil
}

// addSpecial registers a literal special token under an explicit id.
func (b *builder) addSpecial(literal string, id int) {
	b.special.Set(literal, id)
}

// nextID is the id the next learned merge or special token would receive.
func (b *builder) nextID() int { return len(b.decoder) }

func (b *builder) build(id string) (*Vocabulary, error) {
	mt, err := NewMergeTable(b.entries)
	if err != nil {
		return nil, err
	}
	c, err := newCodec(b.decoder)
	if err != nil {
		return nil, err
	}

	maxLen := 0
	for _, bs := range b.decoder {
		if len(bs) > maxLen {
			maxLen = len(bs)
		}
	}

	return &Vocabulary{
		id:              id,
		codec:           c,
		merges:          mt,
		special:         b.special,
		vocabSize:       len(b.decoder) + b.special.Len(),
		maxTokenByteLen: maxLen,
	}, nil
}
