package frame

import "pagesim/file"

// Index maps every resident page to the slot holding it, so residency checks don't have to scan the pool.
type Index struct {
	slots map[file.PageId]int
}

func NewIndex(capacity int) *Index {
	return &Index{slots: make(map[file.PageId]int, capacity)}
}

func (idx *Index) Contains(page file.PageId) bool {
	_, ok := idx.slots[page]
	return ok
}

// Locate returns the slot holding page, or false if the page is not resident.
func (idx *Index) Locate(page file.PageId) (int, bool) {
	slot, ok := idx.slots[page]
	return slot, ok
}

// Insert records that page lives in slot. The page must not already be present; the evicted occupant
// of the slot has to be removed first.
func (idx *Index) Insert(page file.PageId, slot int) {
	idx.slots[page] = slot
}

func (idx *Index) Remove(page file.PageId) {
	delete(idx.slots, page)
}

// Len returns the number of resident pages.
func (idx *Index) Len() int {
	return len(idx.slots)
}
