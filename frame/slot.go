package frame

import "pagesim/file"

/*
Slot is one frame of the pool. A slot is either empty or holds a resident page together with the
replacement metadata the policies keep about it: the order tag (load order or last use, depending on
the policy) and the access bit used by the clock policy.
*/
type Slot struct {
	page      file.PageId
	occupied  bool
	orderTag  int64
	accessBit bool
}

// Page returns the resident page and true, or false if the slot is empty.
func (s *Slot) Page() (file.PageId, bool) {
	return s.page, s.occupied
}

func (s *Slot) IsEmpty() bool {
	return !s.occupied
}

func (s *Slot) OrderTag() int64 {
	return s.orderTag
}

func (s *Slot) AccessBit() bool {
	return s.accessBit
}

// assign replaces the occupant and clears all metadata. The caller owns keeping the index in sync.
func (s *Slot) assign(page file.PageId) {
	s.page = page
	s.occupied = true
	s.orderTag = 0
	s.accessBit = false
}
