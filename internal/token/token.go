// Package token holds the two token shapes that flow through the
// tokenization pipeline: the raw, byte-addressed token the BPE engine
// produces, and the visual token the assembler augments it into.
package token

import "github.com/tokviz/tokviz/internal/classify"

// Raw is a token before any visual metadata is attached. ByteEnd-ByteStart
// always equals len(Text) in bytes, and ByteStart/ByteEnd are offsets into
// the original input the token came from.
type Raw struct {
	ID        int
	Text      string
	ByteStart int
	ByteEnd   int
}

// Visual augments a Raw token with the char-offset and classification
// metadata a live token-stream display needs.
type Visual struct {
	Raw
	CharStart int
	CharEnd   int
	Color     [3]uint8
	Category  classify.Category
	Weight    float32
}
