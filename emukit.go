// Package emukit ties the hwio address-space toolkit into whole systems: it
// defines the lifecycle interfaces a board and its machines implement, and a
// runner pacing a machine off a clock.
package emukit

import (
	"emukit/clock"
	"emukit/hwio"
)

// Machine is a component with a finite-state execution model, advanced one
// cycle at a time.
type Machine interface {
	// Enabled reports whether the machine is in a runnable state.
	Enabled() bool

	// Cycle performs a single cycle of execution, potentially changing the
	// machine's state.
	Cycle()

	// Reset returns the machine to its power-on state.
	Reset()
}

// Board wires a set of devices onto a bus.
type Board[Idx, V hwio.Value] interface {
	// Connect maps this board's devices onto the bus. It must be called at
	// least once.
	Connect(bus *hwio.Bus[Idx, V])

	// Disconnect unmaps this board's devices from the bus.
	Disconnect(bus *hwio.Bus[Idx, V])

	// Reset resets this board's devices.
	Reset()
}

// Run drives m, one cycle per clock tick, until the machine reports itself
// disabled or the clock is stopped.
func Run(m Machine, clk *clock.Clock) {
	for m.Enabled() {
		if !clk.Tick() {
			return
		}
		m.Cycle()
	}
}
