package vocab

import (
	"bytes"
	"testing"
)

func TestBuilderSeedsAllBaseBytes(t *testing.T) {
	v, err := NewFromMerges("empty", nil)
	if err != nil {
		t.Fatalf("NewFromMerges: %v", err)
	}
	for b := 0; b < 256; b++ {
		id := v.ByteToken(byte(b))
		got := v.TokenBytes(id)
		if len(got) != 1 || got[0] != byte(b) {
			t.Fatalf("byte 0x%02x: base token bytes = %v, want [%d]", b, got, b)
		}
	}
	if v.VocabSize() != 256 {
		t.Fatalf("VocabSize() = %d, want 256", v.VocabSize())
	}
}

func TestMergeDuplicateOperandRejected(t *testing.T) {
	_, err := NewFromMerges("dup", [][2]string{{"t", "h"}, {"t", "h"}})
	if err == nil {
		t.Fatalf("expected error on duplicate merge pair")
	}
}

func TestMergeUnknownOperandRejected(t *testing.T) {
	_, err := NewFromMerges("bad", [][2]string{{"th", "e"}})
	if err == nil {
		t.Fatalf("expected error: 'th' isn't a token before the merge producing it exists")
	}
}

func TestDecodeRoundTripBaseOnly(t *testing.T) {
	v, err := NewFromMerges("base", nil)
	if err != nil {
		t.Fatalf("NewFromMerges: %v", err)
	}

	in := []byte("the quick brown fox\x00\xff\x10")
	ids := make([]int, len(in))
	for i, b := range in {
		ids[i] = v.ByteToken(b)
	}

	out := v.Decode(ids)
	if !bytes.Equal(out, in) {
		t.Fatalf("round trip mismatch: got %q want %q", out, in)
	}
}

func TestDecodeUnknownIDContributesNothing(t *testing.T) {
	v, err := NewFromMerges("base", nil)
	if err != nil {
		t.Fatalf("NewFromMerges: %v", err)
	}
	out := v.Decode([]int{v.ByteToken('a'), 99999, v.ByteToken('b')})
	if string(out) != "ab" {
		t.Fatalf("got %q, want %q", out, "ab")
	}
}

func TestMaxTokenByteLenGrowsWithMerges(t *testing.T) {
	v, err := NewFromMerges("toy", [][2]string{{"t", "h"}, {"h", "e"}, {"th", "e"}})
	if err != nil {
		t.Fatalf("NewFromMerges: %v", err)
	}
	if got := v.MaxTokenByteLen(); got != 3 {
		t.Fatalf("MaxTokenByteLen() = %d, want 3 (\"the\")", got)
	}
}

func TestBuiltinApproximationsConstructCleanly(t *testing.T) {
	for _, build := range []func() (*Vocabulary, error){BuildCL100kApprox, BuildO200kApprox, BuildP50kApprox} {
		v, err := build()
		if err != nil {
			t.Fatalf("builtin construction failed: %v", err)
		}
		if v.VocabSize() <= 256 {
			t.Fatalf("%s: vocab size %d not larger than base 256", v.ID(), v.VocabSize())
		}
		if _, ok := v.SpecialTokens().Get("<|endoftext|>"); !ok {
			t.Fatalf("%s: missing <|endoftext|> special token", v.ID())
		}
	}
}

func TestMergeRanksDenseAndOrdered(t *testing.T) {
	v, err := NewFromMerges("toy", [][2]string{{"t", "h"}, {"h", "e"}, {"i", "n"}, {"th", "e"}, {"in", "g"}})
	if err != nil {
		t.Fatalf("NewFromMerges: %v", err)
	}
	if v.Merges().MaxRank() != 4 {
		t.Fatalf("MaxRank() = %d, want 4", v.Merges().MaxRank())
	}
}
