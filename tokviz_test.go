package tokviz

import (
	"testing"

	"github.com/tokviz/tokviz/internal/classify"
)

func TestTokenizeDefaultVocab(t *testing.T) {
	res, err := Tokenize("the quick brown fox", "cl100k_base")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.TotalTokens != len(res.Tokens) {
		t.Fatalf("TotalTokens = %d, want %d", res.TotalTokens, len(res.Tokens))
	}
	if res.VocabID != "cl100k_base" {
		t.Fatalf("VocabID = %q, want cl100k_base", res.VocabID)
	}
	if len(res.Tokens) == 0 {
		t.Fatalf("expected nonempty tokens")
	}
}

func TestTokenizeUnknownVocabFallsBackToDefault(t *testing.T) {
	res, err := Tokenize("hello", "not-a-real-vocab")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.VocabID == "not-a-real-vocab" {
		t.Fatalf("expected fallback vocab id, got the unregistered one back")
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	res, err := Tokenize("", "cl100k_base")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Tokens) != 0 || res.TotalTokens != 0 {
		t.Fatalf("expected zero tokens for empty input, got %+v", res)
	}
}

func TestTokenizeWireShapeHasSnakeCaseCategory(t *testing.T) {
	res, err := Tokenize("the fox", "cl100k_base")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	for _, tk := range res.Tokens {
		if tk.Category == "" {
			t.Fatalf("token %+v has empty category", tk)
		}
		if _, ok := classify.ParseCategory(tk.Category); !ok {
			t.Fatalf("token category %q does not round-trip through ParseCategory", tk.Category)
		}
	}
}

func TestListVocabsIncludesBuiltins(t *testing.T) {
	ids, err := ListVocabs()
	if err != nil {
		t.Fatalf("ListVocabs: %v", err)
	}
	want := map[string]bool{"cl100k_base": false, "o200k_base": false, "p50k_base": false}
	for _, id := range ids {
		if _, ok := want[id]; ok {
			want[id] = true
		}
	}
	for id, seen := range want {
		if !seen {
			t.Fatalf("expected %q in ListVocabs() = %v", id, ids)
		}
	}
}

func TestVocabInfoKnownAndUnknown(t *testing.T) {
	meta, ok, err := VocabInfo("cl100k_base")
	if err != nil {
		t.Fatalf("VocabInfo: %v", err)
	}
	if !ok || meta.ID != "cl100k_base" || meta.VocabSize <= 0 {
		t.Fatalf("got meta=%+v ok=%v, want a populated cl100k_base entry", meta, ok)
	}

	_, ok, err = VocabInfo("does-not-exist")
	if err != nil {
		t.Fatalf("VocabInfo: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for an unregistered vocab id")
	}
}

func TestTokenCategoryAndCategoryColorRoundTrip(t *testing.T) {
	cat := TokenCategory(300, "<|endoftext|>")
	if cat != "special" {
		t.Fatalf("TokenCategory(special literal) = %q, want special", cat)
	}
	color := CategoryColor(cat)
	if color == [3]uint8{} {
		t.Fatalf("CategoryColor(%q) returned zero color", cat)
	}
}

func TestCategoryColorUnknownNameFallsBack(t *testing.T) {
	color := CategoryColor("not-a-real-category")
	if color == [3]uint8{} {
		t.Fatalf("expected a fallback color for an unknown category name")
	}
}

func TestIncrementalTokenizerLifecycle(t *testing.T) {
	h, err := NewIncrementalTokenizer("cl100k_base")
	if err != nil {
		t.Fatalf("NewIncrementalTokenizer: %v", err)
	}
	if h.GetVocab() != "cl100k_base" {
		t.Fatalf("GetVocab() = %q, want cl100k_base", h.GetVocab())
	}

	res, changedStart, changedEnd, changed := h.Update("the thing")
	if !changed {
		t.Fatalf("expected changed=true on first update")
	}
	if changedStart != 0 || changedEnd != len(res.Tokens) {
		t.Fatalf("expected full changed range, got [%d,%d) of %d", changedStart, changedEnd, len(res.Tokens))
	}

	_, _, _, changedAgain := h.Update("the thing")
	if changedAgain {
		t.Fatalf("expected changed=false for a repeated identical update")
	}

	h.Reset()
	_, _, _, changedAfterReset := h.Update("the thing")
	if !changedAfterReset {
		t.Fatalf("expected changed=true immediately after Reset")
	}
}

func TestIncrementalTokenizerSetVocabResetsState(t *testing.T) {
	h, err := NewIncrementalTokenizer("cl100k_base")
	if err != nil {
		t.Fatalf("NewIncrementalTokenizer: %v", err)
	}
	h.Update("the thing")

	if err := h.SetVocab("p50k_base"); err != nil {
		t.Fatalf("SetVocab: %v", err)
	}
	if h.GetVocab() != "p50k_base" {
		t.Fatalf("GetVocab() = %q, want p50k_base", h.GetVocab())
	}

	_, changedStart, changedEnd, changed := h.Update("the thing")
	if !changed || changedStart != 0 || changedEnd == 0 {
		t.Fatalf("expected a full retokenize after switching vocabularies")
	}
}
