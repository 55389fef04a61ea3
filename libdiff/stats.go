package libdiff

import (
	"fmt"

	"github.com/signadot/jmerge/mergeop"
)

// Stats counts the edits in a diff tree.
type Stats struct {
	Removes int
	Sets    int
	Enters  int
}

func (s Stats) Total() int {
	return s.Removes + s.Sets + s.Enters
}

func (s Stats) String() string {
	return fmt.Sprintf("%d removed, %d set, %d entered", s.Removes, s.Sets, s.Enters)
}

// Count walks d and counts every edit, including the Enter edits leading
// to nested diffs.
func Count(d *mergeop.ObjectDiff) Stats {
	s := Stats{}
	countDiff(&s, d)
	return s
}

func countDiff[K comparable](s *Stats, d *mergeop.Diff[K]) {
	for _, op := range d.All() {
		countOp(s, op)
	}
}

func countOp(s *Stats, op mergeop.Op) {
	switch x := op.(type) {
	case mergeop.Remove:
		s.Removes++
	case mergeop.Set:
		s.Sets++
	case mergeop.EnterObject:
		s.Enters++
		countDiff(s, x.Diff)
	case mergeop.EnterPositionArray:
		s.Enters++
		countDiff(s, x.Diff)
	case mergeop.EnterIdentityArray:
		s.Enters++
		countDiff(s, x.Diff)
	}
}
