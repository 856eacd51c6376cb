package mem

import (
	"fmt"
	"math/rand"

	"emukit/hwio"
)

// Null is a stub device reading back a fixed value; writes are dropped. It
// allows accesses to a region that should exist but hold nothing, without
// tripping the unmapped contract.
type Null[Idx, V hwio.Value] struct {
	size  uint
	value V
}

func NewNull[Idx, V hwio.Value](size uint) *Null[Idx, V] {
	return &Null[Idx, V]{size: size}
}

// ReadAs changes the value yielded by reads.
func (n *Null[Idx, V]) ReadAs(value V) {
	n.value = value
}

func (n *Null[Idx, V]) Read(index Idx) V         { return n.value }
func (n *Null[Idx, V]) Write(index Idx, value V) {}
func (n *Null[Idx, V]) Contains(index Idx) bool  { return uint64(index) < uint64(n.size) }
func (n *Null[Idx, V]) Len() uint                { return n.size }
func (n *Null[Idx, V]) Reset()                   {}
func (n *Null[Idx, V]) String() string           { return fmt.Sprintf("null{%d}", n.size) }

// Random is a stub device reading back random garbage; writes are dropped.
// It approximates floating-bus behaviour on unmapped or uninitialized
// regions.
type Random[Idx, V hwio.Value] struct {
	size uint
}

func NewRandom[Idx, V hwio.Value](size uint) *Random[Idx, V] {
	return &Random[Idx, V]{size: size}
}

func (r *Random[Idx, V]) Read(index Idx) V         { return V(rand.Uint64()) }
func (r *Random[Idx, V]) Write(index Idx, value V) {}
func (r *Random[Idx, V]) Contains(index Idx) bool  { return uint64(index) < uint64(r.size) }
func (r *Random[Idx, V]) Len() uint                { return r.size }
func (r *Random[Idx, V]) Reset()                   {}
func (r *Random[Idx, V]) String() string           { return fmt.Sprintf("random{%d}", r.size) }
