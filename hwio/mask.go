package hwio

// Layer is one complete address space stacked inside a Mask. Skip
// soft-disables the layer without losing its position in the stack.
type Layer[Idx, V Value] struct {
	Bus  Mux[Idx, V]
	Skip bool
}

// Mask is an ordered stack of address-space layers queried top (index 0) to
// bottom: the first non-skipped layer whose fallible access succeeds wins,
// and lower layers cascade in as fallback. It models overlay-style memory
// maps, such as a boot ROM overlay briefly shadowing a cartridge.
type Mask[Idx, V Value] struct {
	layers []Layer[Idx, V]
}

func NewMask[Idx, V Value](buses ...Mux[Idx, V]) *Mask[Idx, V] {
	m := new(Mask[Idx, V])
	for _, bus := range buses {
		m.Push(bus)
	}
	return m
}

// Layer returns the layer at position i for direct access, or nil if out of
// range.
func (m *Mask[Idx, V]) Layer(i int) *Layer[Idx, V] {
	if i < 0 || i >= len(m.layers) {
		return nil
	}
	return &m.layers[i]
}

// Depth returns the number of layers, skipped ones included.
func (m *Mask[Idx, V]) Depth() int {
	return len(m.layers)
}

// Push appends a layer at the bottom of the stack.
func (m *Mask[Idx, V]) Push(bus Mux[Idx, V]) {
	m.layers = append(m.layers, Layer[Idx, V]{Bus: bus})
}

// Pop removes and returns the bottom layer.
func (m *Mask[Idx, V]) Pop() (Mux[Idx, V], bool) {
	if len(m.layers) == 0 {
		return nil, false
	}
	l := m.layers[len(m.layers)-1]
	m.layers = m.layers[:len(m.layers)-1]
	return l.Bus, true
}

// Insert adds a layer at position i, pushing lower-priority layers down.
func (m *Mask[Idx, V]) Insert(i int, bus Mux[Idx, V]) {
	m.layers = append(m.layers, Layer[Idx, V]{})
	copy(m.layers[i+1:], m.layers[i:])
	m.layers[i] = Layer[Idx, V]{Bus: bus}
}

// Remove removes and returns the layer at position i.
func (m *Mask[Idx, V]) Remove(i int) Mux[Idx, V] {
	bus := m.layers[i].Bus
	m.layers = append(m.layers[:i], m.layers[i+1:]...)
	return bus
}

// Reverse flips the priority order of the layers, in place.
func (m *Mask[Idx, V]) Reverse() {
	for i, j := 0, len(m.layers)-1; i < j; i, j = i+1, j-1 {
		m.layers[i], m.layers[j] = m.layers[j], m.layers[i]
	}
}

func (m *Mask[Idx, V]) Read(index Idx) V {
	v, err := m.TryRead(index)
	if err != nil {
		panic(err)
	}
	return v
}

func (m *Mask[Idx, V]) Write(index Idx, value V) {
	if err := m.TryWrite(index, value); err != nil {
		panic(err)
	}
}

func (m *Mask[Idx, V]) TryRead(index Idx) (V, error) {
	for i := range m.layers {
		l := &m.layers[i]
		if l.Skip {
			continue
		}
		if v, err := l.Bus.TryRead(index); err == nil {
			return v, nil
		}
	}
	var zero V
	return zero, unmapped("", index)
}

func (m *Mask[Idx, V]) TryWrite(index Idx, value V) error {
	for i := range m.layers {
		l := &m.layers[i]
		if l.Skip {
			continue
		}
		if err := l.Bus.TryWrite(index, value); err == nil {
			return nil
		}
	}
	return unmapped("", index)
}

func (m *Mask[Idx, V]) Contains(index Idx) bool {
	for i := range m.layers {
		l := &m.layers[i]
		if !l.Skip && l.Bus.Contains(index) {
			return true
		}
	}
	return false
}

// Len returns the longest span among non-skipped layers.
func (m *Mask[Idx, V]) Len() uint {
	var n uint
	for i := range m.layers {
		l := &m.layers[i]
		if !l.Skip && l.Bus.Len() > n {
			n = l.Bus.Len()
		}
	}
	return n
}

// Reset is a no-op: layers keep independent lifecycles and are reset by
// whoever owns them.
func (m *Mask[Idx, V]) Reset() {}
