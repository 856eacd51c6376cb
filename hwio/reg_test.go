package hwio

import "testing"

func TestRegReadWrite(t *testing.T) {
	reg := &Reg[uint16, uint8]{Name: "r"}

	reg.Write(0, 0xA5)
	if val := reg.Read(0); val != 0xA5 {
		t.Fatalf("Read() = 0x%x, want 0x%x", val, 0xA5)
	}

	if !reg.Contains(0) || reg.Contains(1) {
		t.Fatalf("Contains() wrong for a single-cell register")
	}
	if n := reg.Len(); n != 1 {
		t.Fatalf("Len() = %d, want 1", n)
	}
}

func TestRegRoMask(t *testing.T) {
	reg := &Reg[uint16, uint8]{Name: "r", Value: 0xF0, RoMask: 0xF0}

	reg.Write(0, 0x0F)
	if reg.Value != 0xFF {
		t.Fatalf("Value = 0x%x, want 0x%x", reg.Value, 0xFF)
	}

	reg.Write(0, 0x00)
	if reg.Value != 0xF0 {
		t.Fatalf("Value = 0x%x, want 0x%x", reg.Value, 0xF0)
	}
}

func TestRegCallbacks(t *testing.T) {
	var gotOld, gotNew uint8
	reg := &Reg[uint16, uint8]{
		Name:    "r",
		ReadCb:  func(val uint8) uint8 { return val | 0x80 },
		WriteCb: func(old, val uint8) { gotOld, gotNew = old, val },
	}

	reg.Write(0, 0x12)
	if gotOld != 0x00 || gotNew != 0x12 {
		t.Fatalf("WriteCb got 0x%x, 0x%x, want 0x00, 0x12", gotOld, gotNew)
	}
	if val := reg.Read(0); val != 0x92 {
		t.Fatalf("Read() = 0x%x, want 0x%x", val, 0x92)
	}
}

func TestRegFlags(t *testing.T) {
	ro := &Reg[uint16, uint8]{Name: "ro", Value: 0x42, Flags: RegFlagReadOnly}
	ro.Write(0, 0xFF)
	if ro.Value != 0x42 {
		t.Fatalf("readonly reg written: 0x%x", ro.Value)
	}

	wo := &Reg[uint16, uint8]{Name: "wo", Value: 0x42, Flags: RegFlagWriteOnly}
	if val := wo.Read(0); val != 0 {
		t.Fatalf("writeonly reg Read() = 0x%x, want 0", val)
	}
}

func TestRegReset(t *testing.T) {
	reg := &Reg[uint16, uint8]{Name: "r", Value: 0x42}
	reg.Reset()
	if reg.Value != 0 {
		t.Fatalf("Value = 0x%x after reset, want 0", reg.Value)
	}
}
