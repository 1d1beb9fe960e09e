package solve

import "sync"

// OpenQueue is a sharded priority structure indexed by the boxes-on-correct-
// goal bucket (§4.3), one set of buckets per search direction. Workers
// dequeue from the highest-indexed non-empty bucket first (best-first); a
// failed dequeue (queue observed empty) is the signal the quiescence
// protocol watches for. Enqueue is O(1); dequeue scans buckets high-to-low.
//
// This is not a strict priority queue: ties within a bucket are FIFO, and a
// bucket can become non-empty again between a scan and the next poll (§9) --
// the heuristic is an ordering hint, not a correctness requirement.
//
// Grounded on the mutex-guarded queue in vxm-ppz/go-solution's
// PriorityQueue, simplified to a per-bucket FIFO since bucket order already
// captures the heuristic; no intra-bucket cost comparison is needed.
type OpenQueue struct {
	buckets [2][]fifo // [0]=forward, [1]=backward
}

// NewOpenQueue creates a queue with numBuckets buckets per direction.
// numBuckets is normally the number of boxes in the level, B.
func NewOpenQueue(numBuckets int) *OpenQueue {
	q := &OpenQueue{}
	for dir := range q.buckets {
		q.buckets[dir] = make([]fifo, numBuckets)
		for i := range q.buckets[dir] {
			q.buckets[dir][i].items = nil
		}
	}
	return q
}

func dirIndex(backward bool) int {
	if backward {
		return 1
	}
	return 0
}

// Enqueue adds bp to the given direction's queue, in bucket.
func (q *OpenQueue) Enqueue(backward bool, bucket int, bp Position) {
	q.buckets[dirIndex(backward)][bucket].push(bp)
}

// Dequeue removes and returns a position from the highest-indexed
// non-empty bucket in the given direction. Returns (nil, false) if every
// bucket in that direction was empty at scan time.
func (q *OpenQueue) Dequeue(backward bool) (Position, bool) {
	buckets := q.buckets[dirIndex(backward)]
	for i := len(buckets) - 1; i >= 0; i-- {
		if bp, ok := buckets[i].pop(); ok {
			return bp, true
		}
	}
	return nil, false
}

// fifo is a mutex-guarded concurrent-safe FIFO for a single bucket.
type fifo struct {
	mu    sync.Mutex
	items []Position
}

func (f *fifo) push(p Position) {
	f.mu.Lock()
	f.items = append(f.items, p)
	f.mu.Unlock()
}

func (f *fifo) pop() (Position, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.items) == 0 {
		return nil, false
	}
	p := f.items[0]
	f.items = f.items[1:]
	return p, true
}
