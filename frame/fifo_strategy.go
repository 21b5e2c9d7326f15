package frame

import "pagesim/file"

// FIFOStrategy evicts pages in the order they were loaded. A single cursor walks the slots circularly and
// only moves on faults, so hits never change the eviction order.
type FIFOStrategy struct {
	pool *Pool
	hand int
}

func NewFIFOStrategy() *FIFOStrategy {
	return &FIFOStrategy{}
}

func (fs *FIFOStrategy) initialize(pool *Pool, refs []file.PageId) {
	fs.pool = pool
	fs.hand = 0
}

// No action needed: load order alone decides the victim.
func (fs *FIFOStrategy) accessed(slot int, pos int) {}

func (fs *FIFOStrategy) chooseVictim(pos int) (int, int) {
	return fs.hand, 1
}

func (fs *FIFOStrategy) loaded(slot int, pos int) {
	fs.hand = (slot + 1) % fs.pool.Size()
}
