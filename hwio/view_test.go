package hwio

import (
	"errors"
	"testing"
)

func TestViewWindow(t *testing.T) {
	ram := newTestDev(0x100)
	view := NewView[uint16, uint8](0x40, 0xBF, ram)

	if n := view.Len(); n != 0x80 {
		t.Fatalf("Len() = 0x%x, want 0x80", n)
	}

	// Local index 0 is the window start.
	ram.data[0x40] = 0x11
	if val := view.Read(0x00); val != 0x11 {
		t.Fatalf("Read(0x00) = 0x%x, want 0x%x", val, 0x11)
	}

	view.Write(0x7F, 0x22)
	if val := ram.data[0xBF]; val != 0x22 {
		t.Fatalf("ram[0xBF] = 0x%x, want 0x%x", val, 0x22)
	}
}

func TestViewOutOfBounds(t *testing.T) {
	view := NewView[uint16, uint8](0x40, 0xBF, newTestDev(0x100))

	if view.Contains(0x80) {
		t.Fatalf("Contains(0x80) = true past the window")
	}

	_, err := view.TryRead(0x80)
	var uerr *UnmappedError[uint16]
	if !errors.As(err, &uerr) {
		t.Fatalf("TryRead() error = %v, want *UnmappedError", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("Write() past the window did not panic")
		}
	}()
	view.Write(0x80, 0x00)
}

func TestViewInvalidRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewView() with end < start did not panic")
		}
	}()
	NewView[uint16, uint8](0x10, 0x00, newTestDev(0x100))
}

func TestViewInBus(t *testing.T) {
	// A window of shared storage mapped at a second base behaves as a
	// mirror of the original region.
	ram := newTestDev(0x100)

	bus := NewBus[uint16, uint8]("test")
	bus.Map(0x0000, 0x00FF, ram)
	bus.Map(0x8000, 0x807F, NewView[uint16, uint8](0x40, 0xBF, ram))

	bus.Write(0x0041, 0x99)
	if val := bus.Read(0x8001); val != 0x99 {
		t.Fatalf("Read() through view = 0x%x, want 0x%x", val, 0x99)
	}
}
