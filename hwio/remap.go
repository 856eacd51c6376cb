package hwio

// Remap shifts the effective address space of a device by a fixed signed
// offset: accesses at index reach the inner device at index - offset. It
// relocates an already-built device, including a whole sub-bus, without
// touching its internals. Paired with View, partial device windows can be
// carved out and moved anywhere.
type Remap[Idx, V Value] struct {
	Offset int64
	Dev    Device[Idx, V]
}

func NewRemap[Idx, V Value](offset int64, dev Device[Idx, V]) *Remap[Idx, V] {
	return &Remap[Idx, V]{Offset: offset, Dev: dev}
}

func (r *Remap[Idx, V]) translate(index Idx) Idx {
	return Idx(int64(index) - r.Offset)
}

func (r *Remap[Idx, V]) Read(index Idx) V {
	return r.Dev.Read(r.translate(index))
}

func (r *Remap[Idx, V]) Write(index Idx, value V) {
	r.Dev.Write(r.translate(index), value)
}

// Contains, Len and Reset pass through to the inner device unchanged.

func (r *Remap[Idx, V]) Contains(index Idx) bool {
	return r.Dev.Contains(index)
}

func (r *Remap[Idx, V]) Len() uint {
	return r.Dev.Len()
}

func (r *Remap[Idx, V]) Reset() {
	r.Dev.Reset()
}
