package frame

import "pagesim/file"

/*
OptimalStrategy implements Belady's offline algorithm: on a fault it evicts the resident page whose next
reference lies farthest in the future, or one that is never referenced again.

Instead of rescanning the remaining sequence on every fault, initialize precomputes for each position the
position of the next reference to the same page. Each slot remembers the next use of its page as of the
page's most recent reference. Since the page is not referenced between then and the current fault, that
value is exactly what a rescan from the current position would find.
*/
type OptimalStrategy struct {
	pool     *Pool
	nextUse  []int // nextUse[i] is the next position referencing refs[i], or len(refs)
	slotNext []int // next use of each slot's resident page
}

func NewOptimalStrategy() *OptimalStrategy {
	return &OptimalStrategy{}
}

func (o *OptimalStrategy) initialize(pool *Pool, refs []file.PageId) {
	o.pool = pool
	o.nextUse = nextOccurrences(refs)
	o.slotNext = make([]int, pool.Size())
}

// nextOccurrences scans refs backwards and returns, for every position, the next position holding the
// same page. Pages that never recur get len(refs), which is larger than any real position.
func nextOccurrences(refs []file.PageId) []int {
	next := make([]int, len(refs))
	seen := make(map[file.PageId]int)
	for i := len(refs) - 1; i >= 0; i-- {
		if j, ok := seen[refs[i]]; ok {
			next[i] = j
		} else {
			next[i] = len(refs)
		}
		seen[refs[i]] = i
	}
	return next
}

func (o *OptimalStrategy) accessed(slot int, pos int) {
	o.slotNext[slot] = o.nextUse[pos]
}

// chooseVictim prefers the lowest empty slot. Otherwise only a strictly farther next use replaces the
// current candidate, so ties keep the lowest slot index.
func (o *OptimalStrategy) chooseVictim(pos int) (int, int) {
	if slot, ok := o.pool.FirstEmpty(); ok {
		return slot, slot + 1
	}
	victim, farthest := 0, -1
	for i := 0; i < o.pool.Size(); i++ {
		if o.slotNext[i] > farthest {
			victim, farthest = i, o.slotNext[i]
		}
	}
	return victim, o.pool.Size()
}

func (o *OptimalStrategy) loaded(slot int, pos int) {
	o.slotNext[slot] = o.nextUse[pos]
}
