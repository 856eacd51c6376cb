// Package mem provides the leaf storage devices mapped onto hwio buses:
// read-write and read-only memory, plus fixed and random stubs.
package mem

import (
	"fmt"

	"emukit/hwio"
	"emukit/log"
)

// Ram is a fixed-size random-access memory device. Reset clears it: RAM
// contents are volatile.
type Ram[Idx, V hwio.Value] struct {
	Name string

	data []V
}

func NewRam[Idx, V hwio.Value](size uint) *Ram[Idx, V] {
	return &Ram[Idx, V]{data: make([]V, size)}
}

// RamFrom builds a Ram initialized with a copy of words.
func RamFrom[Idx, V hwio.Value](words []V) *Ram[Idx, V] {
	data := make([]V, len(words))
	copy(data, words)
	return &Ram[Idx, V]{data: data}
}

// Data exposes the backing buffer, so that several views or mirrors can be
// built over the same storage.
func (r *Ram[Idx, V]) Data() []V {
	return r.data
}

func (r *Ram[Idx, V]) Read(index Idx) V {
	if !r.Contains(index) {
		panic(&hwio.UnmappedError[Idx]{Bus: r.Name, Addr: index})
	}
	return r.data[uint64(index)]
}

func (r *Ram[Idx, V]) Write(index Idx, value V) {
	if !r.Contains(index) {
		panic(&hwio.UnmappedError[Idx]{Bus: r.Name, Addr: index})
	}
	r.data[uint64(index)] = value
}

func (r *Ram[Idx, V]) Contains(index Idx) bool {
	return uint64(index) < uint64(len(r.data))
}

func (r *Ram[Idx, V]) Len() uint {
	return uint(len(r.data))
}

func (r *Ram[Idx, V]) Reset() {
	clear(r.data)
}

func (r *Ram[Idx, V]) String() string {
	return fmt.Sprintf("ram{%s %d}", r.Name, len(r.data))
}

// Rom is a read-only memory device. Writes are logged and dropped. Reset is a
// no-op: ROM contents are persistent.
type Rom[Idx, V hwio.Value] struct {
	Name string

	data []V
}

func NewRom[Idx, V hwio.Value](size uint) *Rom[Idx, V] {
	return &Rom[Idx, V]{data: make([]V, size)}
}

// RomFrom builds a Rom holding a copy of words.
func RomFrom[Idx, V hwio.Value](words []V) *Rom[Idx, V] {
	data := make([]V, len(words))
	copy(data, words)
	return &Rom[Idx, V]{data: data}
}

func (r *Rom[Idx, V]) Read(index Idx) V {
	if !r.Contains(index) {
		panic(&hwio.UnmappedError[Idx]{Bus: r.Name, Addr: index})
	}
	return r.data[uint64(index)]
}

func (r *Rom[Idx, V]) Write(index Idx, value V) {
	log.ModMem.ErrorZ("write to readonly memory").
		String("name", r.Name).
		Hex64("addr", uint64(index)).
		Hex64("val", uint64(value)).
		End()
}

func (r *Rom[Idx, V]) Contains(index Idx) bool {
	return uint64(index) < uint64(len(r.data))
}

func (r *Rom[Idx, V]) Len() uint {
	return uint(len(r.data))
}

func (r *Rom[Idx, V]) Reset() {}

func (r *Rom[Idx, V]) String() string {
	return fmt.Sprintf("rom{%s %d}", r.Name, len(r.data))
}
