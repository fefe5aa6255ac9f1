package rwcell

// Cell is a shared handle over one lock-protected value of type T.
//
// A cell arbitrates four access disciplines through a single packed
// atomic word, with no mutex underneath:
//   - Read: any number of shared holders.
//   - Write: one exclusive holder, no readers.
//   - UpgradableRead: a shared holder that can convert to exclusive
//     without letting a writer in between.
//   - SnapshotRead / SnapshotWrite: an owned copy of the value; the
//     lock is held only for the instant of the copy and, for drafts,
//     the instant of the commit.
//
// Share a cell by sharing the *Cell: every holder sees the same value
// and the same lock word, and the cell lives as long as any holder or
// guard does. All acquisition is spin-wait; a reader can wait
// unboundedly under sustained writer arrival, and no operation takes a
// timeout.
//
// The zero Cell is not usable. Construct with New or NewClone.
type Cell[T any] struct {
	_     noCopy
	state lockState
	value T
	dup   func(T) T
	relax Relax
}

// New returns a cell protecting value. Snapshot accessors copy the
// value by plain assignment; use NewClone when T holds maps, slices,
// pointers or anything else assignment would alias.
func New[T any](value T, options ...func(*Config)) *Cell[T] {
	return NewClone(value, func(v T) T { return v }, options...)
}

// NewClone is New for values that need an explicit duplication step.
// clone is called whenever a snapshot accessor copies the protected
// value, and once more when a draft commits.
func NewClone[T any](value T, clone func(T) T, options ...func(*Config)) *Cell[T] {
	if clone == nil {
		panic("rwcell: clone must not be nil")
	}
	var cfg Config
	for _, o := range options {
		o(&cfg)
	}
	if cfg.relax == nil {
		cfg.relax = Spin
	}
	return &Cell[T]{value: value, dup: clone, relax: cfg.relax}
}

// Read acquires shared access. It spins until no writer holds the cell
// and no upgrade is pending.
func (c *Cell[T]) Read() ReadGuard[T] {
	var spins int
	for !c.state.tryRead() {
		c.relax(&spins)
	}
	return ReadGuard[T]{cell: c}
}

// TryRead attempts shared access without waiting.
func (c *Cell[T]) TryRead() (ReadGuard[T], bool) {
	if c.state.tryRead() {
		return ReadGuard[T]{cell: c}, true
	}
	return ReadGuard[T]{}, false
}

// Write acquires exclusive access. It spins until the cell is entirely
// free.
func (c *Cell[T]) Write() WriteGuard[T] {
	var spins int
	for !c.state.tryWrite() {
		c.relax(&spins)
	}
	return WriteGuard[T]{cell: c}
}

// TryWrite attempts exclusive access without waiting.
func (c *Cell[T]) TryWrite() (WriteGuard[T], bool) {
	if c.state.tryWrite() {
		return WriteGuard[T]{cell: c}, true
	}
	return WriteGuard[T]{}, false
}

// UpgradableRead acquires shared access that can later be upgraded to
// exclusive. Until Upgrade is called the holder is an ordinary reader.
func (c *Cell[T]) UpgradableRead() UpgradableGuard[T] {
	var spins int
	for !c.state.tryRead() {
		c.relax(&spins)
	}
	return UpgradableGuard[T]{cell: c}
}

// TryUpgradableRead attempts upgradable shared access without waiting.
func (c *Cell[T]) TryUpgradableRead() (UpgradableGuard[T], bool) {
	if c.state.tryRead() {
		return UpgradableGuard[T]{cell: c}, true
	}
	return UpgradableGuard[T]{}, false
}

// SnapshotRead copies the protected value under a brief shared acquire
// and returns the copy. The snapshot never touches the lock again;
// writes landing after it returns go unseen.
func (c *Cell[T]) SnapshotRead() ReadSnapshot[T] {
	return ReadSnapshot[T]{value: c.snapshot()}
}

// SnapshotWrite copies the protected value under a brief shared acquire
// and returns a draft the caller mutates with exclusive access to the
// copy. No lock is held while the draft is edited; the edits become
// visible only when Commit publishes them. Overlapping drafts are not
// conflict-checked: whichever commits last overwrites the cell.
func (c *Cell[T]) SnapshotWrite() WriteSnapshot[T] {
	return WriteSnapshot[T]{cell: c, value: c.snapshot()}
}

// Detach returns a handle restricted to the snapshot accessors, for
// call paths that must carry the value across a suspension point and
// cannot hold a live guard into the lock while parked.
func (c *Cell[T]) Detach() Detached[T] {
	return Detached[T]{cell: c}
}

// Get returns a copy of the protected value under a brief shared
// acquire.
func (c *Cell[T]) Get() T {
	return c.snapshot()
}

// Set replaces the protected value under an exclusive acquire.
func (c *Cell[T]) Set(value T) {
	var spins int
	for !c.state.tryWrite() {
		c.relax(&spins)
	}
	c.value = value
	c.state.releaseWrite()
}

// snapshot duplicates the value inside a shared acquire, giving every
// copy a consistent starting point.
func (c *Cell[T]) snapshot() T {
	var spins int
	for !c.state.tryRead() {
		c.relax(&spins)
	}
	v := c.dup(c.value)
	c.state.releaseRead()
	return v
}

// Readers returns the number of shared holders at the instant of the
// call, upgradable holders included.
func (c *Cell[T]) Readers() int {
	return c.state.readers()
}

// HasWriter reports whether a writer held the cell at the instant of
// the call.
func (c *Cell[T]) HasWriter() bool {
	return c.state.hasWriter()
}

// UpgradePending reports whether an upgrade was in flight at the
// instant of the call.
func (c *Cell[T]) UpgradePending() bool {
	return c.state.upgradePending()
}
