package rwcell

import (
	"testing"
)

func TestLockStateReadRoundTrip(t *testing.T) {
	var s lockState

	const n = 8
	for range n {
		if !s.tryRead() {
			t.Fatal("tryRead failed on a free word")
		}
	}
	if got := s.w.Load(); got != n*readerUnit {
		t.Fatalf("word = %#x, want %#x", got, uintptr(n*readerUnit))
	}
	for range n {
		s.releaseRead()
	}
	if got := s.w.Load(); got != 0 {
		t.Fatalf("word = %#x after release, want 0", got)
	}
}

func TestLockStateWriteRoundTrip(t *testing.T) {
	var s lockState

	if !s.tryWrite() {
		t.Fatal("tryWrite failed on a free word")
	}
	if got := s.w.Load(); got != writerBit {
		t.Fatalf("word = %#x, want %#x", got, writerBit)
	}
	if s.tryWrite() {
		t.Fatal("tryWrite succeeded on a held word")
	}
	if s.tryRead() {
		t.Fatal("tryRead succeeded with a writer held")
	}
	s.releaseWrite()
	if got := s.w.Load(); got != 0 {
		t.Fatalf("word = %#x after release, want 0", got)
	}
}

func TestLockStateUpgradeRoundTrip(t *testing.T) {
	var s lockState

	if !s.tryRead() {
		t.Fatal("tryRead failed on a free word")
	}
	if !s.tryUpgrade() {
		t.Fatal("tryUpgrade failed as the sole reader")
	}
	if got := s.w.Load(); got != readerUnit|upgradedBit {
		t.Fatalf("word = %#x, want %#x", got, readerUnit|upgradedBit)
	}

	// A flagged upgrade refuses new readers and further upgrades.
	if s.tryRead() {
		t.Fatal("tryRead succeeded with an upgrade pending")
	}
	if s.tryUpgrade() {
		t.Fatal("tryUpgrade succeeded with an upgrade pending")
	}

	if !s.releaseUpgradeToWrite() {
		t.Fatal("releaseUpgradeToWrite failed on a flagged word")
	}
	if got := s.w.Load(); got != writerBit {
		t.Fatalf("word = %#x after handoff, want %#x", got, writerBit)
	}
	s.releaseWrite()
	if got := s.w.Load(); got != 0 {
		t.Fatalf("word = %#x after release, want 0", got)
	}
}

func TestLockStateUpgradeNeedsSoleReader(t *testing.T) {
	var s lockState

	if !s.tryRead() || !s.tryRead() {
		t.Fatal("tryRead failed on a free word")
	}
	if s.tryUpgrade() {
		t.Fatal("tryUpgrade succeeded with two readers")
	}
	s.releaseRead()
	if !s.tryUpgrade() {
		t.Fatal("tryUpgrade failed as the sole reader")
	}
	if !s.releaseUpgradeToWrite() {
		t.Fatal("releaseUpgradeToWrite failed on a flagged word")
	}
	s.releaseWrite()
	if got := s.w.Load(); got != 0 {
		t.Fatalf("word = %#x after release, want 0", got)
	}
}

func TestLockStateDowngrade(t *testing.T) {
	var s lockState

	if !s.tryWrite() {
		t.Fatal("tryWrite failed on a free word")
	}
	s.downgradeWrite()
	if got := s.w.Load(); got != readerUnit {
		t.Fatalf("word = %#x after downgrade, want %#x", got, readerUnit)
	}
	if !s.tryRead() {
		t.Fatal("tryRead failed after a downgrade")
	}
	s.releaseRead()
	s.releaseRead()
	if got := s.w.Load(); got != 0 {
		t.Fatalf("word = %#x after release, want 0", got)
	}
}

func TestLockStateReaderCap(t *testing.T) {
	var s lockState

	s.w.Store(maxReaders << readerShift)
	if s.tryRead() {
		t.Fatal("tryRead succeeded at the reader cap")
	}
	s.releaseRead()
	if !s.tryRead() {
		t.Fatal("tryRead failed below the reader cap")
	}
}

func TestLockStateReleaseChecks(t *testing.T) {
	var s lockState

	mustPanic(t, "releaseRead on a free word", func() { s.releaseRead() })
	mustPanic(t, "releaseWrite on a free word", func() { s.releaseWrite() })
	mustPanic(t, "downgradeWrite on a free word", func() { s.downgradeWrite() })

	if !s.tryRead() {
		t.Fatal("tryRead failed on a free word")
	}
	mustPanic(t, "releaseWrite with only a reader", func() { s.releaseWrite() })
	s.releaseRead()
}

func TestLockStateWriteAll(t *testing.T) {
	var s lockState

	if !s.tryWrite() {
		t.Fatal("tryWrite failed on a free word")
	}
	s.releaseWriteAll()
	if got := s.w.Load(); got != 0 {
		t.Fatalf("word = %#x after releaseWriteAll, want 0", got)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
