// Package hwio provides the building blocks for composing the address space
// of a hardware emulator: an addressable device contract, a shared device
// handle, a bus resolving reads and writes through an interval index, and
// adapters (Bank, Remap, View, Mask) that let complex memory maps be built by
// nesting simple pieces.
//
// The package is generic over the index and data word types, so the same bus
// serves 8, 16, 32 or 64-bit address and data widths.
package hwio

// Value is the capability set required of index and data word types: any
// fixed-width or platform integer type.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Device is an addressable component: a memory region, a hardware register, a
// nested bus. Devices are always addressed in their own zero-based space;
// mapping them into a bus takes care of translation.
type Device[Idx, V Value] interface {
	// Read returns the word at index. Reading an index the device does not
	// contain is a contract violation: implementations panic with an
	// *UnmappedError.
	Read(index Idx) V

	// Write stores a word at index. Same contract as Read.
	Write(index Idx, value V)

	// Contains reports whether index falls within the device.
	Contains(index Idx) bool

	// Len returns the number of addressable words. It is deliberately not
	// of type Idx: a device may span the entire index space.
	Len() uint

	// Reset re-initializes the device's volatile state. Implementations
	// may deliberately leave persistent storage untouched; accessing such
	// storage after a reset is undefined.
	Reset()
}

// Mux is implemented by devices whose purpose is discovering whether an
// address is mapped at all (Bus, View, Mask, Shared). TryRead and TryWrite
// mirror Read and Write but report unmapped accesses with an *UnmappedError
// instead of panicking.
type Mux[Idx, V Value] interface {
	Device[Idx, V]

	TryRead(index Idx) (V, error)
	TryWrite(index Idx, value V) error
}
