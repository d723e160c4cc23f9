package bpe

import (
	"testing"

	"github.com/tokviz/tokviz/internal/vocab"
)

// toyVocab builds the exact toy tokenizer from spec §4.1/§8:
// t+h->th(256), h+e->he(257), i+n->in(258), th+e->the(259), in+g->ing(260).
func toyVocab(t *testing.T) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.NewFromMerges("toy", [][2]string{
		{"t", "h"},
		{"h", "e"},
		{"i", "n"},
		{"th", "e"},
		{"in", "g"},
	})
	if err != nil {
		t.Fatalf("NewFromMerges: %v", err)
	}
	return v
}

func TestEncodeChunkThe(t *testing.T) {
	v := toyVocab(t)
	toks := EncodeChunk(v, []byte("the"))
	if len(toks) != 1 {
		t.Fatalf("len(toks) = %d, want 1: %+v", len(toks), toks)
	}
	tok := toks[0]
	if tok.ID != 259 || tok.Text != "the" || tok.ByteStart != 0 || tok.ByteEnd != 3 {
		t.Fatalf("got %+v, want {id:259 the [0,3)}", tok)
	}
}

func TestEncodeChunkThing(t *testing.T) {
	v := toyVocab(t)
	toks := EncodeChunk(v, []byte("thing"))
	if len(toks) != 2 {
		t.Fatalf("len(toks) = %d, want 2: %+v", len(toks), toks)
	}
	if toks[0].ID != 256 || toks[0].Text != "th" || toks[0].ByteStart != 0 || toks[0].ByteEnd != 2 {
		t.Fatalf("token 0 = %+v, want {id:256 th [0,2)}", toks[0])
	}
	if toks[1].ID != 260 || toks[1].Text != "ing" || toks[1].ByteStart != 2 || toks[1].ByteEnd != 5 {
		t.Fatalf("token 1 = %+v, want {id:260 ing [2,5)}", toks[1])
	}
}

func TestEncodeChunkEmpty(t *testing.T) {
	v := toyVocab(t)
	toks := EncodeChunk(v, nil)
	if len(toks) != 0 {
		t.Fatalf("expected empty result for empty input, got %+v", toks)
	}
}

func TestEncodeChunkByteForByteRoundTrip(t *testing.T) {
	v := toyVocab(t)
	for _, in := range []string{"the thing", "hhhhhh", "xyz", "\x00\xff the"} {
		toks := EncodeChunk(v, []byte(in))
		var out []byte
		for _, tk := range toks {
			out = append(out, []byte(tk.Text)...)
		}
		if string(out) != in {
			t.Fatalf("concatenated token text = %q, want %q", out, in)
		}
	}
}

func TestEncodeChunkSpansContiguous(t *testing.T) {
	v := toyVocab(t)
	toks := EncodeChunk(v, []byte("the thing is thin"))
	if len(toks) == 0 {
		t.Fatalf("expected nonempty tokens")
	}
	if toks[0].ByteStart != 0 {
		t.Fatalf("first token byte_start = %d, want 0", toks[0].ByteStart)
	}
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].ByteEnd != toks[i+1].ByteStart {
			t.Fatalf("gap between token %d (end %d) and token %d (start %d)",
				i, toks[i].ByteEnd, i+1, toks[i+1].ByteStart)
		}
	}
	if last := toks[len(toks)-1]; last.ByteEnd != len("the thing is thin") {
		t.Fatalf("last token byte_end = %d, want %d", last.ByteEnd, len("the thing is thin"))
	}
}

func TestEncodeChunkSingleByteWhenNoMergeApplies(t *testing.T) {
	v := toyVocab(t)
	toks := EncodeChunk(v, []byte("xyz"))
	if len(toks) != 3 {
		t.Fatalf("len(toks) = %d, want 3 (no merges defined for x,y,z)", len(toks))
	}
}

func TestEncodeChunkDeterministic(t *testing.T) {
	v := toyVocab(t)
	in := []byte("the thing is thin, the thing")
	a := EncodeChunk(v, in)
	b := EncodeChunk(v, in)
	if len(a) != len(b) {
		t.Fatalf("nondeterministic: len %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("nondeterministic at token %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
