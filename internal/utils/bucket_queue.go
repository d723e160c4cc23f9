package utils

// BucketQueue is a priority queue over MergeCand values bucketed by Rank:
// one slice per rank, each kept sorted by Pos, so Pop always returns the
// lowest-rank, leftmost-position candidate without a binary heap's log-n
// rebalancing. internal/bpe.EncodeChunk pushes a MergeCand per adjacent
// pair as it becomes mergeable and relies on each entry's VerL/VerR to
// recognize a stale pair (one whose LeftToken or RightToken was already
// consumed by an earlier merge) and discard it on Pop instead of removing
// it from the bucket up front.
//
// It is a monotone queue: Pop never scans below the lowest rank already
// popped, so a candidate pushed with a rank below that is never returned.
// EncodeChunk never pushes one, since every pair involving a merged token
// ranks after the merge that created it.
type BucketQueue struct {
	buckets    [][]MergeCand
	current    int
	totalCount int
}

// NewBucketQueue allocates a bucket per rank in [0, maxRank], sized from
// the vocabulary's MergeTable.MaxRank() so no rank 0..maxRank ever needs
// the Push-time grow path.
func NewBucketQueue(maxRank int) *BucketQueue {
	return &BucketQueue{
		buckets: make([][]MergeCand, maxRank+1),
		current: 0,
	}
}

// Len reports the number of candidates currently queued, including any
// not-yet-discarded stale entries.
func (bq *BucketQueue) Len() int {
	return bq.totalCount
}

// Push inserts c into its rank's bucket, keeping the bucket sorted by Pos
// (linear insertion below 16 entries, binary search above).
func (bq *BucketQueue) Push(c MergeCand) {
	rank := c.Rank
	if rank >= len(bq.buckets) {
		newBuckets := make([][]MergeCand, rank+1)
		copy(newBuckets, bq.buckets)
		bq.buckets = newBuckets
	}

	bucket := bq.buckets[rank]
	bucketLen := len(bucket)

	var insertPos int
	if bucketLen < 16 {
		insertPos = bucketLen
		for i := 0; i < bucketLen; i++ {
			if bucket[i].Pos >= c.Pos {
				insertPos = i
				break
			}
		}
	} else {
		left, right := 0, bucketLen
		for left < right {
			mid := (left + right) / 2
			if bucket[mid].Pos < c.Pos {
				left = mid + 1
			} else {
				right = mid
			}
		}
		insertPos = left
	}

	if insertPos == bucketLen {
		bucket = append(bucket, c)
	} else {
		bucket = append(bucket, MergeCand{})
		copy(bucket[insertPos+1:], bucket[insertPos:])
		bucket[insertPos] = c
	}
	bq.buckets[rank] = bucket
	bq.totalCount++
}

// Pop removes and returns the lowest-rank, leftmost-position candidate at
// or above the lowest rank popped so far.
// Callers are expected to check VerL/VerR against the current token
// versions and skip a popped entry that's gone stale.
func (bq *BucketQueue) Pop() (MergeCand, bool) {
	for bq.current < len(bq.buckets) && len(bq.buckets[bq.current]) == 0 {
		bq.current++
	}

	if bq.current >= len(bq.buckets) {
		return MergeCand{}, false
	}

	bucket := bq.buckets[bq.current]
	c := bucket[0]
	bq.buckets[bq.current] = bucket[1:]
	bq.totalCount--

	return c, true
}

