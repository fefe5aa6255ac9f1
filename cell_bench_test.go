package rwcell

import (
	"testing"
)

func BenchmarkCellRead(b *testing.B) {
	b.ReportAllocs()
	c := New(42)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := c.Read()
			_ = *g.Value()
			g.Release()
		}
	})
}

func BenchmarkCellWrite(b *testing.B) {
	b.ReportAllocs()
	c := New(0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := c.Write()
			*g.Value() += 1
			g.Release()
		}
	})
}

func BenchmarkCellGet(b *testing.B) {
	b.ReportAllocs()
	c := New(42)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = c.Get()
		}
	})
}

func BenchmarkCellSnapshotWriteCommit(b *testing.B) {
	b.ReportAllocs()
	c := New(0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s := c.SnapshotWrite()
			s.Set(1)
			s.Commit()
		}
	})
}

func BenchmarkCellGroupCell(b *testing.B) {
	b.ReportAllocs()
	var group CellGroup[int, int]
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			group.Cell(i & 127).Set(i)
			i++
		}
	})
}
