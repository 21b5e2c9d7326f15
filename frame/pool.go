package frame

import (
	"fmt"
	"pagesim/file"
)

// Pool is the fixed set of frames shared by all replacement strategies. It is pure storage: it knows
// nothing about which slot should be evicted, it only keeps the slots and the membership index consistent.
type Pool struct {
	slots []Slot
	index *Index
}

// NewPool creates a pool of numFrames empty slots.
func NewPool(numFrames int) (*Pool, error) {
	if numFrames <= 0 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidFrameCount, numFrames)
	}
	return &Pool{
		slots: make([]Slot, numFrames),
		index: NewIndex(numFrames),
	}, nil
}

// Size returns the number of slots in the pool.
func (p *Pool) Size() int {
	return len(p.slots)
}

func (p *Pool) Slot(i int) *Slot {
	return &p.slots[i]
}

func (p *Pool) Contains(page file.PageId) bool {
	return p.index.Contains(page)
}

// Locate returns the slot holding page.
func (p *Pool) Locate(page file.PageId) (int, bool) {
	return p.index.Locate(page)
}

// FirstEmpty returns the lowest-numbered empty slot, or false once the pool is full.
func (p *Pool) FirstEmpty() (int, bool) {
	if p.index.Len() == len(p.slots) {
		return 0, false
	}
	for i := range p.slots {
		if p.slots[i].IsEmpty() {
			return i, true
		}
	}
	return 0, false
}

// HasEmpty returns true while at least one slot has never been filled.
func (p *Pool) HasEmpty() bool {
	return p.index.Len() < len(p.slots)
}

/*
Install loads page into slot. If the slot already held a page, that page is dropped from the index and
returned as the evicted page. The slot metadata is reset; strategies set their own metadata afterwards.
*/
func (p *Pool) Install(slot int, page file.PageId) (evicted file.PageId, hadVictim bool) {
	s := &p.slots[slot]
	if old, ok := s.Page(); ok {
		p.index.Remove(old)
		evicted, hadVictim = old, true
	}
	s.assign(page)
	p.index.Insert(page, slot)
	return evicted, hadVictim
}

// Resident returns the page of every slot in slot order, using -1 for empty slots.
func (p *Pool) Resident() []file.PageId {
	pages := make([]file.PageId, len(p.slots))
	for i := range p.slots {
		if page, ok := p.slots[i].Page(); ok {
			pages[i] = page
		} else {
			pages[i] = -1
		}
	}
	return pages
}
