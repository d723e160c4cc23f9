// Package bpe implements the merge loop described in spec §4.1: given a
// vocabulary's merge table and a single byte-addressed chunk, it repeatedly
// applies the lowest-rank available merge, leftmost first, until no merge
// applies.
//
// The algorithm is a doubly linked list over byte-seeded tokens plus a
// rank-bucketed priority queue (internal/utils.BucketQueue): stale queue
// entries are detected with a per-slot "live version" counter instead of
// being removed from the queue, which is what makes a bucket queue (rather
// than a full binary heap) cheap to use here.
package bpe

import (
	"github.com/tokviz/tokviz/internal/token"
	"github.com/tokviz/tokviz/internal/utils"
	"github.com/tokviz/tokviz/internal/vocab"
)

// EncodeChunk runs byte-pair merging over piece and returns the resulting
// tokens in left-to-right order, with ByteStart/ByteEnd offsets relative to
// the start of piece. Callers addressing a larger input (e.g. the special
// token splitter's non-special chunks) are responsible for shifting these
// offsets by the chunk's own start.
func EncodeChunk(v *vocab.Vocabulary, piece []byte) []token.Raw {
	n := len(piece)
	if n == 0 {
		return nil
	}

	tokens := make([]int, n)
	starts := make([]int, n)
	ends := make([]int, n)
	for i, b := range piece {
		tokens[i] = v.ByteToken(b)
		starts[i] = i
		ends[i] = i + 1
	}

	prev := make([]int, n)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		prev[i] = i - 1
		next[i] = i + 1
	}
	prev[0] = -1
	next[n-1] = -1

	live := make([]int, n)

	maxRank := v.Merges().MaxRank()
	if maxRank < 0 {
		maxRank = 0
	}
	h := utils.NewBucketQueue(maxRank)

	pushIfMergeable := func(i int) {
		if i == -1 {
			return
		}
		j := next[i]
		if j == -1 {
			return
		}
		a, b := tokens[i], tokens[j]
		rank, _, ok := v.Merges().Lookup(a, b)
		if !ok {
			return
		}
		h.Push(utils.MergeCand{
			Rank:       rank,
			Pos:        i,
			LeftToken:  a,
			RightToken: b,
			VerL:       live[i],
			VerR:       live[j],
		})
	}

	for i := 0; i != -1 && next[i] != -1; i = next[i] {
		pushIfMergeable(i)
	}

	for {
		c, ok := h.Pop()
		if !ok {
			break
		}
		i := c.Pos
		j := next[i]
		if j == -1 {
			continue
		}
		if live[i] != c.VerL || live[j] != c.VerR {
			continue
		}

		a, b := tokens[i], tokens[j]
		rankNow, mergedID, ok := v.Merges().Lookup(a, b)
		if !ok {
			continue
		}
		if rankNow != c.Rank || a != c.LeftToken || b != c.RightToken {
			continue
		}

		tokens[i] = mergedID
		ends[i] = ends[j]

		nj := next[j]
		next[i] = nj
		if nj != -1 {
			prev[nj] = i
		}
		prev[j], next[j] = -1, -1

		live[i]++
		live[j]++

		if pi := prev[i]; pi != -1 {
			pushIfMergeable(pi)
		}
		pushIfMergeable(i)
	}

	out := make([]token.Raw, 0, n)
	for i := 0; i != -1; i = next[i] {
		out = append(out, token.Raw{
			ID:        tokens[i],
			Text:      string(piece[starts[i]:ends[i]]),
			ByteStart: starts[i],
			ByteEnd:   ends[i],
		})
	}
	return out
}
