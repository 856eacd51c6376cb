// Package clock provides a free-running tick generator pacing emulated
// execution against wall-clock time.
package clock

import (
	"sync"
	"time"

	"emukit/log"
)

// Clock delivers ticks on a channel from its own goroutine. Sleeping may
// overshoot the requested period (the host OS schedules as it pleases), so
// the generator tracks how many cycles wall-clock time owes since it started
// and delivers them all before sleeping again: over time the tick rate
// converges on the requested frequency.
//
// The clock never drops ticks. A consumer that stops receiving stalls the
// generator, but the cycles elapsing meanwhile stay owed and are delivered
// once it resumes, or until Stop.
type Clock struct {
	c    chan struct{}
	done chan struct{}
	stop sync.Once
}

// New creates a Clock ticking hz times per second.
func New(hz uint) *Clock {
	return WithPeriod(time.Duration(float64(time.Second) / float64(hz)))
}

// WithPeriod creates a Clock whose ticks last d.
func WithPeriod(d time.Duration) *Clock {
	clk := &Clock{
		c:    make(chan struct{}, 64),
		done: make(chan struct{}),
	}
	go clk.run(d)
	return clk
}

func (clk *Clock) run(d time.Duration) {
	log.ModClock.DebugZ("clock started").Duration("period", d).End()

	// Owed cycles are counted against a fixed epoch, so time spent
	// blocked on a slow consumer is not lost.
	epoch := time.Now()
	var delivered int64

	for {
		owed := int64(time.Since(epoch)/d) - delivered
		if owed < 1 {
			select {
			case <-time.After(d - time.Since(epoch)%d):
			case <-clk.done:
				close(clk.c)
				return
			}
			continue
		}

		for i := int64(0); i < owed; i++ {
			select {
			case clk.c <- struct{}{}:
			case <-clk.done:
				close(clk.c)
				return
			}
		}
		delivered += owed
	}
}

// C returns the channel ticks are delivered on. It is closed once the clock
// is stopped.
func (clk *Clock) C() <-chan struct{} {
	return clk.c
}

// Tick blocks until the next tick, reporting false once the clock is
// stopped.
func (clk *Clock) Tick() bool {
	_, ok := <-clk.c
	return ok
}

// Stop terminates the generator. Safe to call more than once. Ticks already
// queued may still be delivered before the channel closes.
func (clk *Clock) Stop() {
	clk.stop.Do(func() {
		close(clk.done)
		log.ModClock.DebugZ("clock stopped").End()
	})
}
