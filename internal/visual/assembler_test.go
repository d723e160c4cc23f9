package visual

import (
	"testing"

	"github.com/tokviz/tokviz/internal/classify"
	"github.com/tokviz/tokviz/internal/token"
)

func TestAssembleEmpty(t *testing.T) {
	out := Assemble(nil, 1000, 0)
	if len(out) != 0 {
		t.Fatalf("Assemble(nil) = %+v, want empty", out)
	}
}

func TestAssembleCharOffsetsASCII(t *testing.T) {
	raw := []token.Raw{
		{ID: 256, Text: "th", ByteStart: 0, ByteEnd: 2},
		{ID: 260, Text: "ing", ByteStart: 2, ByteEnd: 5},
	}
	out := Assemble(raw, 1000, 0)
	if out[0].CharStart != 0 || out[0].CharEnd != 2 {
		t.Fatalf("token 0 char span = [%d,%d), want [0,2)", out[0].CharStart, out[0].CharEnd)
	}
	if out[1].CharStart != 2 || out[1].CharEnd != 5 {
		t.Fatalf("token 1 char span = [%d,%d), want [2,5)", out[1].CharStart, out[1].CharEnd)
	}
}

func TestAssembleCharOffsetsMultibyteUTF8(t *testing.T) {
	// "caf" + e-acute (2-byte UTF-8) then a 3-byte CJK character.
	raw := []token.Raw{
		{ID: 1000, Text: "café", ByteStart: 0, ByteEnd: 5},
		{ID: 1001, Text: "中", ByteStart: 5, ByteEnd: 8},
	}
	out := Assemble(raw, 2000, 0)
	if out[0].CharStart != 0 || out[0].CharEnd != 4 {
		t.Fatalf("token 0 char span = [%d,%d), want [0,4) (4 scalars, 5 bytes)", out[0].CharStart, out[0].CharEnd)
	}
	if out[1].CharStart != 4 || out[1].CharEnd != 5 {
		t.Fatalf("token 1 char span = [%d,%d), want [4,5)", out[1].CharStart, out[1].CharEnd)
	}
}

func TestAssembleCharBaseOffset(t *testing.T) {
	raw := []token.Raw{{ID: 1, Text: "ab", ByteStart: 10, ByteEnd: 12}}
	out := Assemble(raw, 100, 7)
	if out[0].CharStart != 7 || out[0].CharEnd != 9 {
		t.Fatalf("char span with base 7 = [%d,%d), want [7,9)", out[0].CharStart, out[0].CharEnd)
	}
}

func TestAssemblePreservesRawFields(t *testing.T) {
	raw := []token.Raw{{ID: 42, Text: "hi", ByteStart: 3, ByteEnd: 5}}
	out := Assemble(raw, 100, 0)
	if out[0].Raw != raw[0] {
		t.Fatalf("Assemble did not preserve the embedded Raw token: got %+v, want %+v", out[0].Raw, raw[0])
	}
}

func TestAssembleAttachesColorAndCategory(t *testing.T) {
	raw := []token.Raw{{ID: 1, Text: " ", ByteStart: 0, ByteEnd: 1}}
	out := Assemble(raw, 100, 0)
	if out[0].Category != classify.Whitespace {
		t.Fatalf("Category = %v, want Whitespace", out[0].Category)
	}
	if out[0].Color != classify.ColorFor(classify.Whitespace) {
		t.Fatalf("Color = %v, want %v", out[0].Color, classify.ColorFor(classify.Whitespace))
	}
}

func TestAssembleWeightMatchesClassifyFormula(t *testing.T) {
	raw := []token.Raw{{ID: 50, Text: "x", ByteStart: 0, ByteEnd: 1}}
	out := Assemble(raw, 200, 0)
	want := classify.WeightFor(50, 200)
	if out[0].Weight != want {
		t.Fatalf("Weight = %v, want %v", out[0].Weight, want)
	}
}
