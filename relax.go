package rwcell

import (
	"runtime"
)

// Relax is the backoff policy a spin loop runs once per failed
// acquisition attempt. spins is loop-local retry state owned by the
// caller; a policy may read and reset it to escalate its backoff.
//
// No policy parks the goroutine. Acquisition is busy-wait only, so
// contended cells cost CPU proportional to contention.
type Relax func(spins *int)

// Spin is the default policy: brief CPU spinning while the runtime
// allows it, escalating to a short sleep.
func Spin(spins *int) {
	delay(spins)
}

// Yield surrenders the processor on every failed attempt. Use it on
// cooperative or heavily oversubscribed schedulers, where active
// spinning steals the cycles the current holder needs to get out of
// the way.
func Yield(spins *int) {
	*spins = 0
	runtime.Gosched()
}
