package rwcell

import (
	"testing"
)

func TestTrySpin_EventuallyDeclines(t *testing.T) {
	var spins int
	for range 100 {
		if !trySpin(&spins) {
			return
		}
	}
	t.Fatal("trySpin never declined")
}

func TestDelay_ResetsAfterSleep(t *testing.T) {
	spins := 1 << 30 // far past any spin budget, forces the sleep path
	delay(&spins)
	if spins != 0 {
		t.Fatalf("spins = %d after sleep backoff, want 0", spins)
	}
}

func TestRelaxPolicies(t *testing.T) {
	var spins int
	for range 8 {
		Spin(&spins)
	}

	spins = 5
	Yield(&spins)
	if spins != 0 {
		t.Fatalf("spins = %d after Yield, want 0", spins)
	}
}
