package hwio

import (
	"errors"
	"testing"
)

func maskFixture() (*Mask[uint16, uint8], *Reg[uint16, uint8], *testDev) {
	// Top layer holds a single register at 0x0100; the bottom layer is a
	// full backing bus.
	reg := &Reg[uint16, uint8]{Name: "reg"}
	top := NewBus[uint16, uint8]("top")
	top.Map(0x0100, 0x0100, reg)

	back := newTestDev(0x10000)
	bottom := NewBus[uint16, uint8]("bottom")
	bottom.Map(0x0000, 0xFFFF, back)

	return NewMask[uint16, uint8](top, bottom), reg, back
}

func TestMaskFallback(t *testing.T) {
	mask, reg, back := maskFixture()

	mask.Write(0x0100, 0x11)
	if reg.Value != 0x11 {
		t.Fatalf("reg.Value = 0x%x, want 0x%x", reg.Value, 0x11)
	}
	if back.data[0x0100] != 0 {
		t.Fatalf("bottom layer written through the top one")
	}

	mask.Write(0x0200, 0x22)
	if val := back.data[0x0200]; val != 0x22 {
		t.Fatalf("back[0x0200] = 0x%x, want 0x%x", val, 0x22)
	}
	if val := mask.Read(0x0200); val != 0x22 {
		t.Fatalf("Read() = 0x%x, want 0x%x", val, 0x22)
	}
}

func TestMaskSkip(t *testing.T) {
	mask, reg, back := maskFixture()

	mask.Layer(0).Skip = true
	mask.Write(0x0100, 0x33)
	if reg.Value != 0 {
		t.Fatalf("skipped layer serviced a write")
	}
	if val := back.data[0x0100]; val != 0x33 {
		t.Fatalf("back[0x0100] = 0x%x, want 0x%x", val, 0x33)
	}

	mask.Layer(0).Skip = false
	mask.Write(0x0100, 0x44)
	if reg.Value != 0x44 {
		t.Fatalf("reg.Value = 0x%x after unskip, want 0x%x", reg.Value, 0x44)
	}
}

func TestMaskUnmapped(t *testing.T) {
	top := NewBus[uint16, uint8]("top")
	top.Map(0x0000, 0x00FF, newTestDev(0x100))
	mask := NewMask[uint16, uint8](top)

	_, err := mask.TryRead(0x0200)
	var uerr *UnmappedError[uint16]
	if !errors.As(err, &uerr) {
		t.Fatalf("TryRead() error = %v, want *UnmappedError", err)
	}
}

func TestMaskEdit(t *testing.T) {
	a := NewBus[uint16, uint8]("a")
	b := NewBus[uint16, uint8]("b")
	c := NewBus[uint16, uint8]("c")

	mask := NewMask[uint16, uint8](a, b)
	if d := mask.Depth(); d != 2 {
		t.Fatalf("Depth() = %d, want 2", d)
	}

	mask.Insert(0, c)
	if mask.Layer(0).Bus != Mux[uint16, uint8](c) {
		t.Fatalf("Insert() did not place the layer on top")
	}

	if mask.Remove(0) != Mux[uint16, uint8](c) {
		t.Fatalf("Remove() returned the wrong layer")
	}

	mask.Reverse()
	if mask.Layer(0).Bus != Mux[uint16, uint8](b) {
		t.Fatalf("Reverse() did not flip the order")
	}

	bus, ok := mask.Pop()
	if !ok || bus != Mux[uint16, uint8](a) {
		t.Fatalf("Pop() = %v, %v, want bottom layer", bus, ok)
	}
	if _, ok := NewMask[uint16, uint8]().Pop(); ok {
		t.Fatalf("Pop() = true on an empty mask")
	}
}

func TestMaskLen(t *testing.T) {
	mask, _, _ := maskFixture()
	if n := mask.Len(); n != 0x10000 {
		t.Fatalf("Len() = 0x%x, want 0x10000", n)
	}

	mask.Layer(1).Skip = true
	if n := mask.Len(); n != 1 {
		t.Fatalf("Len() = 0x%x with bottom skipped, want 1", n)
	}
}
