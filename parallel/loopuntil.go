// Package parallel contains the bounded goroutine loops that drive concurrent accumulation.
package parallel

import (
	"math"
	"sync"
	"sync/atomic"
)

// LoopStopper reports whether a loop has been asked to stop.
type LoopStopper interface {
	Load() bool
}

// Loop is the number of goroutines LoopUntil starts.
type Loop int

// LoopUntil hands out i = 0, 1, 2... to 'l' goroutines until one yield returns true
// or the counter reaches math.MaxUint32. Indexes already handed out still finish.
func (l Loop) LoopUntil(yield func(i uint32, ender LoopStopper) bool) {
	var (
		next  atomic.Uint32
		ender atomic.Bool
		wg    sync.WaitGroup
	)

	for n := 0; n < int(l); n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !ender.Load() {
				i := next.Add(1)
				if i == math.MaxUint32 {
					ender.Store(true)
					return
				}
				if yield(i-1, &ender) {
					ender.Store(true)
					return
				}
			}
		}()
	}

	wg.Wait()
}
