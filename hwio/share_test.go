package hwio

import (
	"errors"
	"testing"
)

func TestSharedAcrossBuses(t *testing.T) {
	// One handle mapped on two buses: both reach the same storage.
	wram := Share[uint16, uint8](newTestDev(0x2000))

	cpu := NewBus[uint16, uint8]("cpu")
	cpu.Map(0xC000, 0xDFFF, wram)

	dma := NewBus[uint16, uint8]("dma")
	dma.Map(0x0000, 0x1FFF, wram)

	cpu.Write(0xC123, 0x5A)
	if val := dma.Read(0x0123); val != 0x5A {
		t.Fatalf("Read() = 0x%x, want 0x%x", val, 0x5A)
	}
}

func TestSharedBorrow(t *testing.T) {
	s := Share[uint16, uint8](newTestDev(0x100))

	// Nested shared borrows are fine.
	s.Borrow(func(Device[uint16, uint8]) {
		s.Borrow(func(Device[uint16, uint8]) {})
	})

	// A mutable borrow under a shared one is a conflict.
	defer func() {
		if recover() == nil {
			t.Fatalf("conflicting borrow did not panic")
		}
	}()
	s.Borrow(func(Device[uint16, uint8]) {
		s.BorrowMut(func(Device[uint16, uint8]) {})
	})
}

func TestSharedBorrowMutExclusive(t *testing.T) {
	s := Share[uint16, uint8](newTestDev(0x100))

	defer func() {
		if recover() == nil {
			t.Fatalf("read during a mutable borrow did not panic")
		}
	}()
	s.BorrowMut(func(Device[uint16, uint8]) {
		s.Read(0x00)
	})
}

func TestSharedTry(t *testing.T) {
	s := Share[uint16, uint8](newTestDev(0x100))

	if err := s.TryWrite(0x10, 0x77); err != nil {
		t.Fatal(err)
	}
	if val, err := s.TryRead(0x10); err != nil || val != 0x77 {
		t.Fatalf("TryRead() = 0x%x, %v, want 0x77, nil", val, err)
	}

	_, err := s.TryRead(0x100)
	var uerr *UnmappedError[uint16]
	if !errors.As(err, &uerr) {
		t.Fatalf("TryRead() error = %v, want *UnmappedError", err)
	}
}

func TestSharedReset(t *testing.T) {
	dev := newTestDev(0x100)
	s := Share[uint16, uint8](dev)

	s.Write(0x00, 0xFF)
	s.Reset()
	if dev.resets != 1 {
		t.Fatalf("inner device reset %d times, want 1", dev.resets)
	}
	if val := s.Read(0x00); val != 0 {
		t.Fatalf("Read() = 0x%x after reset, want 0", val)
	}
}
