// Package tokviz is the public facade of a keystroke-latency BPE tokenizer
// and live token-stream visualizer: byte-level BPE encoding, a vocabulary
// registry with several built-in approximate tables, a closed-set token
// classifier, and an incremental engine that, for a small edit, reuses the
// cached tokens ahead of the edit and re-tokenizes only from just before the
// edit to the end of the input.
//
// The package mirrors the external-interface table of the design this
// module implements: Tokenize, NewIncrementalTokenizer and its handle
// methods, ListVocabs, VocabInfo, TokenCategory, and CategoryColor.
package tokviz

import (
	"fmt"

	"github.com/tokviz/tokviz/internal/classify"
	"github.com/tokviz/tokviz/internal/incremental"
	"github.com/tokviz/tokviz/internal/pipeline"
	"github.com/tokviz/tokviz/internal/registry"
	"github.com/tokviz/tokviz/internal/token"
)

// RawToken is a token before visual metadata is attached.
type RawToken struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	ByteStart int    `json:"byte_start"`
	ByteEnd   int    `json:"byte_end"`
}

// VisualToken is a raw token augmented with the char-offset, color,
// category and rarity weight a live token-stream display needs.
type VisualToken struct {
	ID        int            `json:"id"`
	Text      string         `json:"text"`
	ByteStart int            `json:"byte_start"`
	ByteEnd   int            `json:"byte_end"`
	CharStart int            `json:"char_start"`
	CharEnd   int            `json:"char_end"`
	Color     [3]uint8       `json:"color"`
	Category  string         `json:"category"`
	Weight    float32        `json:"weight"`
}

// TokenizeResult is the wire shape returned by Tokenize and by each
// IncrementalTokenizer update.
type TokenizeResult struct {
	Tokens      []VisualToken `json:"tokens"`
	TotalTokens int           `json:"total_tokens"`
	VocabID     string        `json:"vocab_id"`
}

func toWire(vis []token.Visual) []VisualToken {
	out := make([]VisualToken, len(vis))
	for i, v := range vis {
		out[i] = VisualToken{
			ID:        v.ID,
			Text:      v.Text,
			ByteStart: v.ByteStart,
			ByteEnd:   v.ByteEnd,
			CharStart: v.CharStart,
			CharEnd:   v.CharEnd,
			Color:     v.Color,
			Category:  v.Category.String(),
			Weight:    v.Weight,
		}
	}
	return out
}

// Tokenize runs the full pipeline over text using the named vocabulary,
// falling back to the default vocabulary if vocabID is unregistered.
func Tokenize(text, vocabID string) (TokenizeResult, error) {
	reg, err := registry.Global()
	if err != nil {
		return TokenizeResult{}, fmt.Errorf("tokviz: %w", err)
	}

	v := reg.Get(vocabID)
	vis := pipeline.Tokenize(v, text)
	wire := toWire(vis)
	return TokenizeResult{Tokens: wire, TotalTokens: len(wire), VocabID: v.ID()}, nil
}

// ListVocabs returns the registered vocabulary ids.
func ListVocabs() ([]string, error) {
	reg, err := registry.Global()
	if err != nil {
		return nil, fmt.Errorf("tokviz: %w", err)
	}
	return reg.Available(), nil
}

// VocabMeta is the metadata vocab_info surfaces for UI display.
type VocabMeta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VocabSize   int    `json:"vocab_size"`
}

// VocabInfo returns display metadata for id, or ok=false if unregistered.
func VocabInfo(id string) (VocabMeta, bool, error) {
	reg, err := registry.Global()
	if err != nil {
		return VocabMeta{}, false, fmt.Errorf("tokviz: %w", err)
	}
	info, ok := reg.VocabInfo(id)
	if !ok {
		return VocabMeta{}, false, nil
	}
	return VocabMeta{ID: info.ID, Name: info.Name, Description: info.Description, VocabSize: info.VocabSize}, true, nil
}

// TokenCategory classifies a single token by id and text, returning its
// snake_case category name.
func TokenCategory(id int, text string) string {
	return classify.Categorize(id, text).String()
}

// CategoryColor returns the RGB triple for a snake_case category name,
// falling back to the default cyan for an unrecognized name.
func CategoryColor(name string) [3]uint8 {
	cat, ok := classify.ParseCategory(name)
	if !ok {
		return classify.ColorFor(classify.Word)
	}
	return classify.ColorFor(cat)
}

// IncrementalTokenizer is the opaque handle type the external interface
// table calls `new IncrementalTokenizer(vocab_id)`.
type IncrementalTokenizer struct {
	engine *incremental.Engine
}

// NewIncrementalTokenizer creates a handle bound to vocabID, falling back
// to the default vocabulary if it is unregistered.
func NewIncrementalTokenizer(vocabID string) (*IncrementalTokenizer, error) {
	reg, err := registry.Global()
	if err != nil {
		return nil, fmt.Errorf("tokviz: %w", err)
	}
	v := reg.Get(vocabID)
	return &IncrementalTokenizer{engine: incremental.New(v, v.ID())}, nil
}

// Update is handle.update(text): re-tokenizes, reusing cached tokens where
// possible, and reports which token indices changed.
func (h *IncrementalTokenizer) Update(text string) (result TokenizeResult, changedStart, changedEnd int, changed bool) {
	r := h.engine.Update(text)
	wire := toWire(r.Tokens)
	return TokenizeResult{Tokens: wire, TotalTokens: len(wire), VocabID: r.VocabID}, r.ChangedStart, r.ChangedEnd, r.HasChanged
}

// SetVocab is handle.set_vocab(id): switches vocabularies and resets cache.
func (h *IncrementalTokenizer) SetVocab(vocabID string) error {
	reg, err := registry.Global()
	if err != nil {
		return fmt.Errorf("tokviz: %w", err)
	}
	v := reg.Get(vocabID)
	h.engine.SetVocab(v, v.ID())
	return nil
}

// GetVocab is handle.get_vocab(): the handle's current vocabulary id.
func (h *IncrementalTokenizer) GetVocab() string {
	return h.engine.VocabID()
}

// Reset is handle.reset(): clears cached state.
func (h *IncrementalTokenizer) Reset() {
	h.engine.Reset()
}
