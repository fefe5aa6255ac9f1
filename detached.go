package rwcell

// Detached is a handle onto a cell that exposes only the snapshot
// accessors. It shares the cell's backing block, never copies it, and
// is itself freely copyable.
//
// Use it on call paths that park between taking data out and handing
// data back: a reference guard held across a suspension point keeps the
// cell locked the whole time, a Detached holds nothing.
type Detached[T any] struct {
	cell *Cell[T]
}

// SnapshotRead copies the protected value at one instant.
func (d Detached[T]) SnapshotRead() ReadSnapshot[T] {
	if d.cell == nil {
		panic("rwcell: use of zero Detached")
	}
	return d.cell.SnapshotRead()
}

// SnapshotWrite returns an editable draft of the protected value.
func (d Detached[T]) SnapshotWrite() WriteSnapshot[T] {
	if d.cell == nil {
		panic("rwcell: use of zero Detached")
	}
	return d.cell.SnapshotWrite()
}
