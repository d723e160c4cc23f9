package utils

// MergeCand is a candidate adjacent-pair merge waiting in a priority queue:
// its rank (lower merges first) and its left-token position (lower wins
// ties, enforcing leftmost-first merge order), plus the live-version
// markers the BPE engine uses to detect stale entries after an earlier
// merge has already consumed one of the two tokens.
type MergeCand struct {
	Rank       int
	Pos        int
	LeftToken  int
	RightToken int
	VerL       int
	VerR       int
}
