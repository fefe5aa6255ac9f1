package rwcell

// ReadGuard is held shared access to a cell's value. Release it exactly
// once; the cell stays read-locked until every guard has.
//
// Guards are not goroutine-safe: a guard belongs to the goroutine that
// acquired it.
type ReadGuard[T any] struct {
	cell *Cell[T]
}

// Value returns the shared view of the protected value. The view is
// shared with every other reader and must not be mutated; it is valid
// only until Release.
func (g *ReadGuard[T]) Value() *T {
	if g.cell == nil {
		panic("rwcell: use of released ReadGuard")
	}
	return &g.cell.value
}

// Release gives the shared access back. Releasing twice panics.
func (g *ReadGuard[T]) Release() {
	if g.cell == nil {
		panic("rwcell: ReadGuard released twice")
	}
	g.cell.state.releaseRead()
	g.cell = nil
}

// WriteGuard is held exclusive access to a cell's value. No reader or
// other writer can touch the cell until Release, Downgrade, or
// DowngradeUpgradable.
type WriteGuard[T any] struct {
	cell *Cell[T]
}

// Value returns the exclusive view of the protected value, valid until
// the guard is released or downgraded.
func (g *WriteGuard[T]) Value() *T {
	if g.cell == nil {
		panic("rwcell: use of released WriteGuard")
	}
	return &g.cell.value
}

// Set replaces the protected value.
func (g *WriteGuard[T]) Set(value T) {
	if g.cell == nil {
		panic("rwcell: use of released WriteGuard")
	}
	g.cell.value = value
}

// Release gives the exclusive access back. Releasing twice panics.
func (g *WriteGuard[T]) Release() {
	if g.cell == nil {
		panic("rwcell: WriteGuard released twice")
	}
	g.cell.state.releaseWrite()
	g.cell = nil
}

// Downgrade converts the guard into shared access, consuming it. No
// other writer can slip in between: waiting readers and the downgraded
// holder proceed together.
func (g *WriteGuard[T]) Downgrade() ReadGuard[T] {
	if g.cell == nil {
		panic("rwcell: use of released WriteGuard")
	}
	c := g.cell
	c.state.downgradeWrite()
	g.cell = nil
	return ReadGuard[T]{cell: c}
}

// DowngradeUpgradable converts the guard into upgradable shared access,
// consuming it. Like Downgrade, but the result can be upgraded back to
// exclusive later.
func (g *WriteGuard[T]) DowngradeUpgradable() UpgradableGuard[T] {
	if g.cell == nil {
		panic("rwcell: use of released WriteGuard")
	}
	c := g.cell
	c.state.downgradeWrite()
	g.cell = nil
	return UpgradableGuard[T]{cell: c}
}

// UpgradableGuard is held shared access that can convert to exclusive
// access without a writer slipping in between. Until Upgrade it counts
// as an ordinary reader.
type UpgradableGuard[T any] struct {
	cell *Cell[T]
}

// Value returns the shared view of the protected value. The view is
// shared with every other reader and must not be mutated; it is valid
// only until Release or Upgrade.
func (g *UpgradableGuard[T]) Value() *T {
	if g.cell == nil {
		panic("rwcell: use of released UpgradableGuard")
	}
	return &g.cell.value
}

// Upgrade converts the guard into exclusive access, consuming it. It
// waits for every other reader to leave, flags the upgrade (new readers
// are refused from that point), then takes the writer flag.
//
// At most one guard may upgrade a given cell at a time: two concurrent
// upgrades spin forever, since neither can become the sole reader. The
// single-upgrader precondition keeps the word itself uncorrupted; the
// wait is the caller's bug. Use TryUpgrade where several holders race.
func (g *UpgradableGuard[T]) Upgrade() WriteGuard[T] {
	if g.cell == nil {
		panic("rwcell: use of released UpgradableGuard")
	}
	c := g.cell
	var spins int
	for !c.state.tryUpgrade() {
		c.relax(&spins)
	}
	for !c.state.releaseUpgradeToWrite() {
		c.relax(&spins)
	}
	g.cell = nil
	return WriteGuard[T]{cell: c}
}

// TryUpgrade attempts the conversion without waiting for other readers
// to leave. On failure the guard remains a valid shared holder.
func (g *UpgradableGuard[T]) TryUpgrade() (WriteGuard[T], bool) {
	if g.cell == nil {
		panic("rwcell: use of released UpgradableGuard")
	}
	c := g.cell
	if !c.state.tryUpgrade() {
		return WriteGuard[T]{}, false
	}
	var spins int
	for !c.state.releaseUpgradeToWrite() {
		c.relax(&spins)
	}
	g.cell = nil
	return WriteGuard[T]{cell: c}, true
}

// Release gives the shared access back without upgrading. Releasing
// twice panics.
func (g *UpgradableGuard[T]) Release() {
	if g.cell == nil {
		panic("rwcell: UpgradableGuard released twice")
	}
	g.cell.state.releaseRead()
	g.cell = nil
}
