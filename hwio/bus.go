package hwio

import (
	"fmt"

	"emukit/log"
)

// Bus multiplexes accesses over an interval index of mapped devices. A Bus is
// itself a Device, so address spaces form a tree: a bus may be mapped into
// another bus, or into itself (a caller error caught at access time, not a
// shape the bus forbids).
type Bus[Idx, V Value] struct {
	Name string

	tbl mmap[Idx, V]
}

func NewBus[Idx, V Value](name string) *Bus[Idx, V] {
	return &Bus[Idx, V]{Name: name}
}

// Map mounts dev over the inclusive range [start, end]. Overlapping and
// same-base mappings are both legal; resolution prefers higher bases and,
// among same-base mappings, narrower ranges.
func (b *Bus[Idx, V]) Map(start, end Idx, dev Device[Idx, V]) {
	if end < start {
		panic(fmt.Sprintf("hwio: invalid range [%#x, %#x]", uint64(start), uint64(end)))
	}

	log.ModBus.DebugZ("mapping device").
		String("bus", b.Name).
		Hex64("start", uint64(start)).
		Hex64("end", uint64(end)).
		End()

	b.tbl.insert(Mapping[Idx, V]{Start: start, End: end, Dev: dev})
}

// Unmap locates dev by instance identity anywhere in the bus and removes its
// mapping, reporting whether one was found. Unmapping the same device twice
// reports false the second time.
func (b *Bus[Idx, V]) Unmap(dev Device[Idx, V]) bool {
	m, ok := b.tbl.remove(dev)
	if ok {
		log.ModBus.DebugZ("unmapping device").
			String("bus", b.Name).
			Hex64("start", uint64(m.Start)).
			Hex64("end", uint64(m.End)).
			End()
	}
	return ok
}

// Clear removes every mapping.
func (b *Bus[Idx, V]) Clear() {
	b.tbl.clear()
}

// Mappings returns the current mapping table, ordered by base then by
// ascending range width.
func (b *Bus[Idx, V]) Mappings() []Mapping[Idx, V] {
	return b.tbl.all()
}

func (b *Bus[Idx, V]) Read(index Idx) V {
	v, err := b.TryRead(index)
	if err != nil {
		panic(err)
	}
	return v
}

func (b *Bus[Idx, V]) Write(index Idx, value V) {
	if err := b.TryWrite(index, value); err != nil {
		panic(err)
	}
}

func (b *Bus[Idx, V]) TryRead(index Idx) (V, error) {
	m, ok := b.tbl.resolve(index)
	if !ok {
		var zero V
		return zero, unmapped(b.Name, index)
	}
	return m.Dev.Read(index - m.Start), nil
}

func (b *Bus[Idx, V]) TryWrite(index Idx, value V) error {
	m, ok := b.tbl.resolve(index)
	if !ok {
		return unmapped(b.Name, index)
	}
	m.Dev.Write(index-m.Start, value)
	return nil
}

func (b *Bus[Idx, V]) Contains(index Idx) bool {
	_, ok := b.tbl.resolve(index)
	return ok
}

// Len returns the span from the lowest mapped index to the highest, holes
// included, or 0 for an empty bus.
func (b *Bus[Idx, V]) Len() uint {
	if b.tbl.empty() {
		return 0
	}
	lo := b.tbl.bases[0]
	hi := lo
	for _, m := range b.tbl.all() {
		if m.End > hi {
			hi = m.End
		}
	}
	return uint(uint64(hi-lo)) + 1
}

// Reset resets every currently mapped device, each once even if mapped at
// several bases. The mapping table itself is untouched.
func (b *Bus[Idx, V]) Reset() {
	seen := make(map[Device[Idx, V]]bool)
	for _, m := range b.tbl.all() {
		if seen[m.Dev] {
			continue
		}
		seen[m.Dev] = true
		m.Dev.Reset()
	}
}
