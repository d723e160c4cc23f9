// Package incremental implements the Incremental Engine of spec §4.7: it
// keeps the last input and last token list for one editing session and
// decides, on each update, whether a small edit can be satisfied by reusing
// the cached tokens ahead of the edit and re-tokenizing from there to the
// end of the input, instead of re-tokenizing the whole input. Cached tokens
// after the edit are not reused.
//
// The decision tree and the common-prefix/suffix detection follow
// IncrementalTokenizer::update and find_common_affixes
// (original_source/crates/prompt-quant-core/src/incremental.rs). Unlike an
// append-only streaming commit, this engine handles edits anywhere in the
// input: insertions, deletions, and replacements, not just appends.
package incremental

import (
	"unicode/utf8"

	"github.com/tokviz/tokviz/internal/pipeline"
	"github.com/tokviz/tokviz/internal/token"
	"github.com/tokviz/tokviz/internal/vocab"
)

// Result is what Update returns: the full current token list plus the
// half-open index range within it that changed, if anything did.
type Result struct {
	Tokens       []token.Visual
	VocabID      string
	HasChanged   bool
	ChangedStart int
	ChangedEnd   int
}

// Engine owns the state of exactly one editing session (spec §5: "not
// reentrant"). It is not safe for concurrent use by multiple goroutines.
type Engine struct {
	vocabID    string
	vocab      *vocab.Vocabulary
	lastInput  string
	lastTokens []token.Visual
}

// New creates an engine bound to v, with empty cached state.
func New(v *vocab.Vocabulary, vocabID string) *Engine {
	return &Engine{vocab: v, vocabID: vocabID}
}

// VocabID reports the engine's current vocabulary id.
func (e *Engine) VocabID() string { return e.vocabID }

// SetVocab switches the engine to a different vocabulary and resets its
// cache, since cached tokens are meaningless under a different vocab.
func (e *Engine) SetVocab(v *vocab.Vocabulary, vocabID string) {
	e.vocab = v
	e.vocabID = vocabID
	e.Reset()
}

// Reset clears cached state; the next Update takes the full-tokenize path.
func (e *Engine) Reset() {
	e.lastInput = ""
	e.lastTokens = nil
}

// Update re-tokenizes input, reusing cached tokens where possible.
func (e *Engine) Update(input string) Result {
	if input == e.lastInput {
		return Result{Tokens: e.lastTokens, VocabID: e.vocabID, HasChanged: false}
	}

	if e.lastInput == "" || input == "" {
		return e.fullRetokenize(input)
	}

	prefix, suffix := findCommonAffixes(e.lastInput, input)
	changedStart := prefix
	changedEnd := len(input) - suffix
	changeSize := changedEnd - changedStart
	if changeSize < 0 {
		changeSize = 0
	}

	if changeSize >= len(input)/2 || len(e.lastTokens) == 0 {
		return e.fullRetokenize(input)
	}

	return e.partialRetokenize(input, changedStart, changedEnd)
}

func (e *Engine) fullRetokenize(input string) Result {
	tokens := pipeline.Tokenize(e.vocab, input)
	e.lastInput = input
	e.lastTokens = tokens
	return Result{
		Tokens: tokens, VocabID: e.vocabID, HasChanged: true,
		ChangedStart: 0, ChangedEnd: len(tokens),
	}
}

// partialRetokenize keeps the cached tokens that end at least a context
// margin before the edit and re-encodes everything after them: first the
// span from there through the same margin past the edit, then the rest of
// the input as a separate piece. The margin is sized from the vocabulary's
// longest token so BPE can restore a merge that crosses either edge of the
// edit (spec §4.7 correctness note).
func (e *Engine) partialRetokenize(input string, changedStart, changedEnd int) Result {
	margin := e.vocab.MaxTokenByteLen()
	if margin <= 0 {
		margin = 32
	}

	firstAffected := 0
	for i, t := range e.lastTokens {
		if t.ByteEnd > changedStart-margin {
			firstAffected = i
			break
		}
	}

	retokStart := 0
	if firstAffected > 0 {
		retokStart = e.lastTokens[firstAffected].ByteStart
	}

	retokEnd := changedEnd + margin
	if retokEnd > len(input) {
		retokEnd = len(input)
	}

	charBase := utf8.RuneCountInString(input[:retokStart])
	middle := pipeline.TokenizeSlice(e.vocab, input[retokStart:retokEnd], retokStart, charBase)

	var tail []token.Visual
	if retokEnd < len(input) {
		tailCharBase := utf8.RuneCountInString(input[:retokEnd])
		tail = pipeline.TokenizeSlice(e.vocab, input[retokEnd:], retokEnd, tailCharBase)
	}

	all := make([]token.Visual, 0, firstAffected+len(middle)+len(tail))
	all = append(all, e.lastTokens[:firstAffected]...)
	changedStartIdx := len(all)
	all = append(all, middle...)
	all = append(all, tail...)
	changedEndIdx := len(all)

	e.lastInput = input
	e.lastTokens = all

	return Result{
		Tokens: all, VocabID: e.vocabID, HasChanged: true,
		ChangedStart: changedStartIdx, ChangedEnd: changedEndIdx,
	}
}

// findCommonAffixes returns the length of the common byte prefix of old and
// new, and the length of the common byte suffix of the remainders after
// that prefix (so prefix and suffix never overlap).
func findCommonAffixes(old, new string) (prefix, suffix int) {
	maxPrefix := len(old)
	if len(new) < maxPrefix {
		maxPrefix = len(new)
	}
	for prefix < maxPrefix && old[prefix] == new[prefix] {
		prefix++
	}

	maxSuffix := len(old)
	if len(new) < maxSuffix {
		maxSuffix = len(new)
	}
	maxSuffix -= prefix
	for suffix < maxSuffix && old[len(old)-1-suffix] == new[len(new)-1-suffix] {
		suffix++
	}

	return prefix, suffix
}
