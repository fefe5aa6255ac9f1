package rwcell

// ReadSnapshot is an owned copy of a cell's value, taken at one
// instant. It holds nothing against the cell: there is no release duty,
// and writes landing after the copy go unseen.
type ReadSnapshot[T any] struct {
	value T
}

// Value returns the snapshot's copy. The caller owns it outright and
// may mutate it; nothing shared is affected.
func (s *ReadSnapshot[T]) Value() *T {
	return &s.value
}

// WriteSnapshot is an owned draft of a cell's value. The draft is
// edited without any lock held and stays invisible to every other
// holder until Commit publishes it. A draft dropped without Commit
// leaves the cell untouched.
type WriteSnapshot[T any] struct {
	cell  *Cell[T]
	value T
}

// Value returns the draft for unrestricted editing.
func (s *WriteSnapshot[T]) Value() *T {
	if s.cell == nil {
		panic("rwcell: use of committed WriteSnapshot")
	}
	return &s.value
}

// Set replaces the draft wholesale.
func (s *WriteSnapshot[T]) Set(value T) {
	if s.cell == nil {
		panic("rwcell: use of committed WriteSnapshot")
	}
	s.value = value
}

// Commit publishes the draft, consuming the snapshot. It spins for the
// writer flag, stores the cell's own duplicate of the draft, and
// releases. Committing twice panics.
//
// Commit can momentarily block other readers and writers, and it spins:
// the committing goroutine must be free to wait. Calling it while
// holding another guard on the same cell deadlocks. When drafts
// overlap, the one that commits last wins and the earlier result is
// silently overwritten; drafts are not conflict-checked.
func (s *WriteSnapshot[T]) Commit() {
	if s.cell == nil {
		panic("rwcell: WriteSnapshot committed twice")
	}
	c := s.cell
	var spins int
	for !c.state.tryWrite() {
		c.relax(&spins)
	}
	c.value = c.dup(s.value)
	c.state.releaseWriteAll()
	s.cell = nil
}
