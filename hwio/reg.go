package hwio

import (
	"fmt"

	"emukit/log"
)

type RegFlags uint8

const (
	RegFlagReadOnly RegFlags = 1 << iota
	RegFlagWriteOnly
)

// Reg is a single-cell register device: one addressable word with optional
// read-only bit masking and access callbacks. Mapped into a bus, typically
// overlaid on a wider region, it models a peripheral register.
type Reg[Idx, V Value] struct {
	Name   string
	Value  V
	RoMask V // bits set here keep their value across writes

	Flags   RegFlags
	ReadCb  func(val V) V
	WriteCb func(old, val V)
}

func (r Reg[Idx, V]) String() string {
	s := fmt.Sprintf("%s{%x", r.Name, uint64(r.Value))
	if r.ReadCb != nil {
		s += ",r!"
	}
	if r.WriteCb != nil {
		s += ",w!"
	}
	return s + "}"
}

func (r *Reg[Idx, V]) write(val V) {
	old := r.Value
	r.Value = (r.Value & r.RoMask) | (val &^ r.RoMask)
	if r.WriteCb != nil {
		r.WriteCb(old, r.Value)
	}
}

func (r *Reg[Idx, V]) Write(index Idx, val V) {
	if r.Flags&RegFlagReadOnly != 0 {
		log.ModBus.ErrorZ("invalid write to readonly reg").
			String("name", r.Name).
			Hex64("addr", uint64(index)).
			End()
		return
	}
	r.write(val)
}

func (r *Reg[Idx, V]) Read(index Idx) V {
	if r.Flags&RegFlagWriteOnly != 0 {
		log.ModBus.ErrorZ("invalid read from writeonly reg").
			String("name", r.Name).
			Hex64("addr", uint64(index)).
			End()
		var zero V
		return zero
	}
	if r.ReadCb != nil {
		return r.ReadCb(r.Value)
	}
	return r.Value
}

func (r *Reg[Idx, V]) Contains(index Idx) bool {
	return uint64(index) == 0
}

func (r *Reg[Idx, V]) Len() uint {
	return 1
}

func (r *Reg[Idx, V]) Reset() {
	var zero V
	r.Value = zero
}
