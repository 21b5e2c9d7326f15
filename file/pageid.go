package file

import "fmt"

// PageId identifies a logical page referenced by a process. Page ids only carry identity; the
// simulator never orders them.
type PageId int

func (p PageId) Equals(other PageId) bool {
	return p == other
}

func (p PageId) String() string {
	return fmt.Sprintf("[page %d]", int(p))
}
