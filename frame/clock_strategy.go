package frame

import "pagesim/file"

/*
ClockStrategy is the second-chance approximation of LRU. A hit sets the slot's access bit. On a fault the
hand sweeps forward, clearing set bits, until it reaches an empty slot or one whose bit is clear; that slot
receives the new page with its bit set and the hand moves one past it.

A sweep examines at most 2N slots: after one full revolution every bit it passed is clear.
*/
type ClockStrategy struct {
	pool *Pool
	hand int
}

func NewClockStrategy() *ClockStrategy {
	return &ClockStrategy{}
}

func (cs *ClockStrategy) initialize(pool *Pool, refs []file.PageId) {
	cs.pool = pool
	cs.hand = 0
}

func (cs *ClockStrategy) accessed(slot int, pos int) {
	cs.pool.Slot(slot).accessBit = true
}

func (cs *ClockStrategy) chooseVictim(pos int) (int, int) {
	examined := 0
	for {
		s := cs.pool.Slot(cs.hand)
		examined++
		if s.IsEmpty() || !s.accessBit {
			return cs.hand, examined
		}
		s.accessBit = false
		cs.hand = (cs.hand + 1) % cs.pool.Size()
	}
}

func (cs *ClockStrategy) loaded(slot int, pos int) {
	cs.pool.Slot(slot).accessBit = true
	cs.hand = (slot + 1) % cs.pool.Size()
}
