package hwio

import "fmt"

// Shared wraps a device for shared ownership: the same *Shared handle may
// appear in several mappings, in several buses, or both, and lives as long as
// its longest holder. Equality of handles means "same instance", never "same
// contents".
//
// Access through the handle is dynamically guarded: any number of
// simultaneous readers, writers exclusive. A device re-entrantly reaching
// itself through a mapping cycle trips the guard at the second conflicting
// borrow and panics; it is a caller error, never a silent corruption.
type Shared[Idx, V Value] struct {
	dev     Device[Idx, V]
	readers int
	writing bool
}

// Share wraps dev in a new handle. The wrapped device should not be accessed
// directly afterwards.
func Share[Idx, V Value](dev Device[Idx, V]) *Shared[Idx, V] {
	return &Shared[Idx, V]{dev: dev}
}

func (s *Shared[Idx, V]) borrow() {
	if s.writing {
		panic("hwio: device already mutably borrowed")
	}
	s.readers++
}

func (s *Shared[Idx, V]) unborrow() {
	s.readers--
}

func (s *Shared[Idx, V]) borrowMut() {
	if s.writing || s.readers > 0 {
		panic("hwio: device already borrowed")
	}
	s.writing = true
}

func (s *Shared[Idx, V]) unborrowMut() {
	s.writing = false
}

// Borrow runs f with shared read access to the wrapped device.
func (s *Shared[Idx, V]) Borrow(f func(Device[Idx, V])) {
	s.borrow()
	defer s.unborrow()
	f(s.dev)
}

// BorrowMut runs f with exclusive access to the wrapped device.
func (s *Shared[Idx, V]) BorrowMut(f func(Device[Idx, V])) {
	s.borrowMut()
	defer s.unborrowMut()
	f(s.dev)
}

// Shared delegates the whole device contract under the guard, so handles are
// interchangeable with raw devices.

func (s *Shared[Idx, V]) Read(index Idx) V {
	s.borrow()
	defer s.unborrow()
	return s.dev.Read(index)
}

func (s *Shared[Idx, V]) Write(index Idx, value V) {
	s.borrowMut()
	defer s.unborrowMut()
	s.dev.Write(index, value)
}

func (s *Shared[Idx, V]) Contains(index Idx) bool {
	s.borrow()
	defer s.unborrow()
	return s.dev.Contains(index)
}

func (s *Shared[Idx, V]) Len() uint {
	s.borrow()
	defer s.unborrow()
	return s.dev.Len()
}

func (s *Shared[Idx, V]) Reset() {
	s.borrowMut()
	defer s.unborrowMut()
	s.dev.Reset()
}

func (s *Shared[Idx, V]) TryRead(index Idx) (V, error) {
	s.borrow()
	defer s.unborrow()
	if mx, ok := s.dev.(Mux[Idx, V]); ok {
		return mx.TryRead(index)
	}
	if !s.dev.Contains(index) {
		var zero V
		return zero, unmapped("", index)
	}
	return s.dev.Read(index), nil
}

func (s *Shared[Idx, V]) TryWrite(index Idx, value V) error {
	s.borrowMut()
	defer s.unborrowMut()
	if mx, ok := s.dev.(Mux[Idx, V]); ok {
		return mx.TryWrite(index, value)
	}
	if !s.dev.Contains(index) {
		return unmapped("", index)
	}
	s.dev.Write(index, value)
	return nil
}

func (s *Shared[Idx, V]) String() string {
	if str, ok := s.dev.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("shared{%T}", s.dev)
}
