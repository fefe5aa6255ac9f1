package rwcell

import (
	"github.com/llxisdsh/pb"
)

// CellGroup is a keyed family of cells, created on demand. Every caller
// asking for the same key shares one cell; unrelated keys never contend
// with each other.
//
// The zero value is ready to use and protects the zero value of T per
// key.
//
// Usage:
//
//	var group CellGroup[string, []string]
//
//	g := group.Cell("peers").Write()
//	g.Set(append(*g.Value(), addr))
//	g.Release()
type CellGroup[K comparable, T any] struct {
	_    noCopy
	m    pb.MapOf[K, *Cell[T]]
	init func(K) *Cell[T]
}

// NewCellGroup returns a group whose cells are built by init the first
// time each key is requested. init must not return nil. Use the zero
// CellGroup when zero-value cells are enough.
func NewCellGroup[K comparable, T any](init func(K) *Cell[T]) *CellGroup[K, T] {
	return &CellGroup[K, T]{init: init}
}

// Cell returns the cell for k, creating it on first use. Concurrent
// callers racing on a fresh key all receive the same cell.
func (g *CellGroup[K, T]) Cell(k K) *Cell[T] {
	if c, ok := g.m.Load(k); ok {
		return c
	}
	c, _ := g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *Cell[T]]) (*pb.EntryOf[K, *Cell[T]], *Cell[T], bool) {
			if l != nil {
				return l, l.Value, true
			}
			c := g.newCell(k)
			return &pb.EntryOf[K, *Cell[T]]{Value: c}, c, false
		},
	)
	return c
}

// Lookup returns the cell for k only if one already exists.
func (g *CellGroup[K, T]) Lookup(k K) (*Cell[T], bool) {
	return g.m.Load(k)
}

// Forget drops the cell for k. Guards already taken from the old cell
// stay valid against it; a later Cell call builds a fresh one.
func (g *CellGroup[K, T]) Forget(k K) {
	g.m.Delete(k)
}

func (g *CellGroup[K, T]) newCell(k K) *Cell[T] {
	if g.init != nil {
		if c := g.init(k); c != nil {
			return c
		}
		panic("rwcell: CellGroup init returned nil")
	}
	var zero T
	return New(zero)
}
