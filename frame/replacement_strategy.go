package frame

import "pagesim/file"

// ReplacementStrategy defines the interface for page replacement strategies.
type ReplacementStrategy interface {
	// initialize binds the strategy to a fresh pool and the reference sequence of the run.
	initialize(pool *Pool, refs []file.PageId)
	// accessed notifies the strategy that the reference at pos hit the page resident in slot.
	accessed(slot int, pos int)
	// chooseVictim selects the slot that receives the faulting reference at pos. It returns the slot and
	// how many slots were examined to find it.
	chooseVictim(pos int) (slot int, examined int)
	// loaded notifies the strategy that the reference at pos was installed in slot.
	loaded(slot int, pos int)
}

// NewStrategy creates the replacement strategy implementing policy.
func NewStrategy(policy Policy) (ReplacementStrategy, error) {
	switch policy {
	case FIFO:
		return NewFIFOStrategy(), nil
	case LRU:
		return NewLRUStrategy(), nil
	case Optimal:
		return NewOptimalStrategy(), nil
	case Clock:
		return NewClockStrategy(), nil
	default:
		return nil, ErrUnknownPolicy
	}
}
