package hwio

import "fmt"

// UnmappedError reports an access at an index that no mapping covers, or that
// falls outside a device's bounds. It is returned by the fallible surface
// (TryRead, TryWrite) and panicked by the infallible one.
type UnmappedError[Idx Value] struct {
	Bus  string // name of the bus reporting the error, if any
	Addr Idx    // the offending index
}

func (e *UnmappedError[Idx]) Error() string {
	if e.Bus != "" {
		return fmt.Sprintf("%s: unmapped address %#x", e.Bus, uint64(e.Addr))
	}
	return fmt.Sprintf("unmapped address %#x", uint64(e.Addr))
}

func unmapped[Idx Value](bus string, addr Idx) *UnmappedError[Idx] {
	return &UnmappedError[Idx]{Bus: bus, Addr: addr}
}
