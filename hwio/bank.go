package hwio

import "fmt"

// Bank is a switchable set of candidate devices exposed as one device. Reads
// and writes always target the selected candidate; switching only ever
// happens through an explicit Set, never implicitly.
type Bank[Idx, V Value] struct {
	sel   int
	banks []Device[Idx, V]
}

func NewBank[Idx, V Value](devs ...Device[Idx, V]) *Bank[Idx, V] {
	return &Bank[Idx, V]{banks: devs}
}

// Get returns the selector.
func (b *Bank[Idx, V]) Get() int {
	return b.sel
}

// Set selects the candidate at sel. An out-of-range selector is a contract
// violation.
func (b *Bank[Idx, V]) Set(sel int) {
	if sel < 0 || sel >= len(b.banks) {
		panic(fmt.Sprintf("hwio: bank selector %d out of range [0, %d)", sel, len(b.banks)))
	}
	b.sel = sel
}

// Add appends a candidate to the back of the bank.
func (b *Bank[Idx, V]) Add(dev Device[Idx, V]) {
	b.banks = append(b.banks, dev)
}

// Insert adds a candidate at position i, shifting later candidates right.
// The selector keeps tracking the candidate it already selected.
func (b *Bank[Idx, V]) Insert(i int, dev Device[Idx, V]) {
	if len(b.banks) > 0 && i <= b.sel {
		b.sel++
	}
	b.banks = append(b.banks, nil)
	copy(b.banks[i+1:], b.banks[i:])
	b.banks[i] = dev
}

// Remove removes and returns the candidate at position i, shifting later
// candidates left. The selector keeps tracking the candidate it already
// selected; removing the selected candidate itself is a contract violation,
// switch away with Set first.
func (b *Bank[Idx, V]) Remove(i int) Device[Idx, V] {
	if i == b.sel {
		panic(fmt.Sprintf("hwio: removing selected bank candidate %d", i))
	}
	dev := b.banks[i]
	b.banks = append(b.banks[:i], b.banks[i+1:]...)
	if i < b.sel {
		b.sel--
	}
	return dev
}

// Clear removes every candidate and restores the selector.
func (b *Bank[Idx, V]) Clear() {
	b.sel = 0
	b.banks = nil
}

func (b *Bank[Idx, V]) current() Device[Idx, V] {
	if b.sel >= len(b.banks) {
		panic(fmt.Sprintf("hwio: bank access with no candidate selected (%d of %d)", b.sel, len(b.banks)))
	}
	return b.banks[b.sel]
}

func (b *Bank[Idx, V]) Read(index Idx) V {
	return b.current().Read(index)
}

func (b *Bank[Idx, V]) Write(index Idx, value V) {
	b.current().Write(index, value)
}

func (b *Bank[Idx, V]) Contains(index Idx) bool {
	if b.sel >= len(b.banks) {
		return false
	}
	return b.banks[b.sel].Contains(index)
}

func (b *Bank[Idx, V]) Len() uint {
	if b.sel >= len(b.banks) {
		return 0
	}
	return b.banks[b.sel].Len()
}

// Reset restores selector 0 and resets every candidate: power-on reset
// reaches all banks even though only one is addressable.
func (b *Bank[Idx, V]) Reset() {
	b.sel = 0
	for _, dev := range b.banks {
		dev.Reset()
	}
}
