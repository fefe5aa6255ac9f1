package rwcell

import (
	"maps"
	"reflect"
)

// Registry is a type-keyed store for shared state, one slot per Go
// type, guarded by a single cell. Construct one per owning component;
// there is no process-wide instance.
//
// Access goes through the package-level generic functions, since
// methods cannot introduce type parameters:
//
//	reg := NewRegistry()
//	Put(reg, &ServiceConfig{...})
//	cfg, ok := Get[*ServiceConfig](reg)
type Registry struct {
	cell *Cell[map[reflect.Type]any]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cell: NewClone(map[reflect.Type]any{}, maps.Clone[map[reflect.Type]any]),
	}
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	g := r.cell.Read()
	n := len(*g.Value())
	g.Release()
	return n
}

// Put stores value in the T slot, replacing any previous value.
func Put[T any](r *Registry, value T) {
	g := r.cell.Write()
	(*g.Value())[reflect.TypeFor[T]()] = value
	g.Release()
}

// Get returns the value in the T slot.
func Get[T any](r *Registry) (T, bool) {
	g := r.cell.Read()
	v, ok := (*g.Value())[reflect.TypeFor[T]()]
	g.Release()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Has reports whether the T slot is occupied.
func Has[T any](r *Registry) bool {
	g := r.cell.Read()
	_, ok := (*g.Value())[reflect.TypeFor[T]()]
	g.Release()
	return ok
}

// Remove clears the T slot, reporting whether it was occupied.
func Remove[T any](r *Registry) bool {
	g := r.cell.Write()
	m := *g.Value()
	k := reflect.TypeFor[T]()
	_, ok := m[k]
	delete(m, k)
	g.Release()
	return ok
}

// GetOr returns the value in the T slot, filling an empty slot with
// init()'s result first. The lookup is shared; only a miss converts to
// exclusive access, and the conversion is what makes check-then-insert
// atomic: no writer can slip in between the lookup and the insert, so
// at most one caller ever runs init for a slot.
//
// Racing GetOr calls back off and retry until one of them converts
// alone. init runs while the registry is held exclusively and must not
// touch the same registry.
func GetOr[T any](r *Registry, init func() T) T {
	k := reflect.TypeFor[T]()
	var spins int
	for {
		g := r.cell.UpgradableRead()
		if v, ok := (*g.Value())[k]; ok {
			g.Release()
			return v.(T)
		}
		w, ok := g.TryUpgrade()
		if !ok {
			g.Release()
			r.cell.relax(&spins)
			continue
		}
		v := init()
		(*w.Value())[k] = v
		w.Release()
		return v
	}
}
