package rwcell

import (
	"sync/atomic"
	"unsafe"

	"github.com/llxisdsh/rwcell/internal/opt"
)

const (
	writerBit   uintptr = 1 << 0
	upgradedBit uintptr = 1 << 1
	readerShift         = 2
	readerUnit  uintptr = 1 << readerShift

	// maxReaders keeps the reader count far below the top of the word,
	// so the count can never carry into the flag bits. tryRead refuses
	// once the count reaches it; the word itself never wraps.
	maxReaders = ^uintptr(0) >> (readerShift + 1)
)

// lockState is the packed word every guard is arbitrated through:
// bit 0 the writer flag, bit 1 the upgrade flag, bits 2+ the reader
// count in steps of readerUnit. The layout stays private to this file;
// everything above it speaks in the try/release operations below.
//
// Invariants: the writer flag and a nonzero reader count are mutually
// exclusive; the upgrade flag is only ever set while exactly one reader
// holds the word and is converting to a writer.
//
// Each try operation is one load plus one strong compare-and-swap.
// Failure means "retry after backoff", never an error. Trailing padding
// keeps the word off the cache line of the value it guards on
// architectures where that matters.
type lockState struct {
	w atomic.Uintptr
	_ [(opt.CacheLineSize_ - unsafe.Sizeof(struct {
		w atomic.Uintptr
	}{})%opt.CacheLineSize_) % opt.CacheLineSize_ * opt.PaddingMult_]byte
}

// tryRead attempts to add one reader. It fails while a writer holds the
// word, while an upgrade is pending, or once the count is at
// maxReaders.
//
//go:nosplit
func (s *lockState) tryRead() bool {
	w := s.w.Load()
	if w&(writerBit|upgradedBit) != 0 || w>>readerShift >= maxReaders {
		return false
	}
	return s.w.CompareAndSwap(w, w+readerUnit)
}

// tryWrite attempts to take the writer flag. Only an entirely free word
// can be claimed.
//
//go:nosplit
func (s *lockState) tryWrite() bool {
	return s.w.CompareAndSwap(0, writerBit)
}

// tryUpgrade attempts to flag a pending upgrade. It succeeds only while
// the caller is the sole reader and nothing else holds the word. With
// the flag set, tryRead fails, so no reader can slip in before
// releaseUpgradeToWrite.
//
//go:nosplit
func (s *lockState) tryUpgrade() bool {
	return s.w.CompareAndSwap(readerUnit, readerUnit|upgradedBit)
}

// releaseUpgradeToWrite trades a flagged upgrade for the writer flag,
// dropping the upgrader's reader count in the same step.
//
//go:nosplit
func (s *lockState) releaseUpgradeToWrite() bool {
	return s.w.CompareAndSwap(readerUnit|upgradedBit, writerBit)
}

// releaseRead drops one reader. The decrement is checked: running the
// count below zero means a guard was released twice, or the word is
// corrupt.
func (s *lockState) releaseRead() {
	for {
		w := s.w.Load()
		if w>>readerShift == 0 {
			panic("rwcell: read release with no outstanding reader")
		}
		if s.w.CompareAndSwap(w, w-readerUnit) {
			return
		}
	}
}

// releaseWrite clears the writer flag. While the flag is held no reader
// or upgrader can touch the word, so it must still be exactly
// writerBit.
func (s *lockState) releaseWrite() {
	if !s.w.CompareAndSwap(writerBit, 0) {
		panic("rwcell: write release without a held writer")
	}
}

// releaseWriteAll clears the writer and upgrade flags in one step,
// leaving the reader count bits intact. Snapshot commits release
// through it.
//
//go:nosplit
func (s *lockState) releaseWriteAll() {
	s.w.And(^(writerBit | upgradedBit))
}

// downgradeWrite trades the writer flag for one reader, with no window
// for another writer in between.
func (s *lockState) downgradeWrite() {
	if !s.w.CompareAndSwap(writerBit, readerUnit) {
		panic("rwcell: downgrade without a held writer")
	}
}

//go:nosplit
func (s *lockState) readers() int {
	return int(s.w.Load() >> readerShift)
}

//go:nosplit
func (s *lockState) hasWriter() bool {
	return s.w.Load()&writerBit != 0
}

//go:nosplit
func (s *lockState) upgradePending() bool {
	return s.w.Load()&upgradedBit != 0
}
