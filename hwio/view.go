package hwio

// View exposes only the window [start, end] of an inner device, re-based so
// that local index 0 addresses the window start. Accesses past the window are
// out of bounds: a panic on the infallible surface, an *UnmappedError on the
// fallible one.
type View[Idx, V Value] struct {
	start, end Idx
	dev        Device[Idx, V]
}

func NewView[Idx, V Value](start, end Idx, dev Device[Idx, V]) *View[Idx, V] {
	if end < start {
		panic("hwio: invalid view range")
	}
	return &View[Idx, V]{start: start, end: end, dev: dev}
}

// translate re-bases a local index into the inner device's space, reporting
// whether it stays within the window.
func (v *View[Idx, V]) translate(index Idx) (Idx, bool) {
	inner := index + v.start
	return inner, inner >= v.start && inner <= v.end
}

func (v *View[Idx, V]) Read(index Idx) V {
	val, err := v.TryRead(index)
	if err != nil {
		panic(err)
	}
	return val
}

func (v *View[Idx, V]) Write(index Idx, value V) {
	if err := v.TryWrite(index, value); err != nil {
		panic(err)
	}
}

func (v *View[Idx, V]) TryRead(index Idx) (V, error) {
	inner, ok := v.translate(index)
	if !ok {
		var zero V
		return zero, unmapped("", index)
	}
	return v.dev.Read(inner), nil
}

func (v *View[Idx, V]) TryWrite(index Idx, value V) error {
	inner, ok := v.translate(index)
	if !ok {
		return unmapped("", index)
	}
	v.dev.Write(inner, value)
	return nil
}

func (v *View[Idx, V]) Contains(index Idx) bool {
	_, ok := v.translate(index)
	return ok
}

func (v *View[Idx, V]) Len() uint {
	return uint(uint64(v.end-v.start)) + 1
}

func (v *View[Idx, V]) Reset() {
	v.dev.Reset()
}
