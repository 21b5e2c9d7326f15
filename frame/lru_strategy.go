package frame

import "pagesim/file"

// LRUStrategy evicts the least recently used page. Every reference advances a logical clock, and the slot
// it touches is stamped with the clock value in its order tag.
type LRUStrategy struct {
	pool  *Pool
	clock int64
}

func NewLRUStrategy() *LRUStrategy {
	return &LRUStrategy{}
}

func (ls *LRUStrategy) initialize(pool *Pool, refs []file.PageId) {
	ls.pool = pool
	ls.clock = 0
}

func (ls *LRUStrategy) accessed(slot int, pos int) {
	ls.touch(slot)
}

// chooseVictim prefers the lowest empty slot. Once the pool is full it picks the smallest order tag,
// keeping the lowest slot index among equal tags.
func (ls *LRUStrategy) chooseVictim(pos int) (int, int) {
	if slot, ok := ls.pool.FirstEmpty(); ok {
		return slot, slot + 1
	}
	victim := 0
	for i := 1; i < ls.pool.Size(); i++ {
		if ls.pool.Slot(i).orderTag < ls.pool.Slot(victim).orderTag {
			victim = i
		}
	}
	return victim, ls.pool.Size()
}

func (ls *LRUStrategy) loaded(slot int, pos int) {
	ls.touch(slot)
}

func (ls *LRUStrategy) touch(slot int) {
	ls.clock++
	ls.pool.Slot(slot).orderTag = ls.clock
}
