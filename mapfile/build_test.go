package mapfile

import (
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	f, err := Load("testdata/dmg.toml")
	if err != nil {
		t.Fatal(err)
	}
	bus, err := Build[uint16](f)
	if err != nil {
		t.Fatal(err)
	}

	if bus.Name != "dmg" {
		t.Fatalf("bus.Name = %q, want %q", bus.Name, "dmg")
	}

	// The boot ROM reads its fill value and drops writes.
	if val := bus.Read(0x0000); val != 0xFF {
		t.Fatalf("Read(boot) = 0x%x, want 0xFF", val)
	}
	bus.Write(0x0000, 0x00)
	if val := bus.Read(0x0000); val != 0xFF {
		t.Fatalf("Read(boot) = 0x%x after write, want 0xFF", val)
	}

	// The echo region mirrors wram: same storage, second base.
	bus.Write(0xC100, 0x5A)
	if val := bus.Read(0xE100); val != 0x5A {
		t.Fatalf("Read(echo) = 0x%x, want 0x5A", val)
	}
	bus.Write(0xE200, 0xA5)
	if val := bus.Read(0xC200); val != 0xA5 {
		t.Fatalf("Read(wram) = 0x%x, want 0xA5", val)
	}

	// Fixed regions read back their declared value.
	if val := bus.Read(0xFEA0); val != 0xFF {
		t.Fatalf("Read(unusable) = 0x%x, want 0xFF", val)
	}

	// Nothing maps the hole between boot and vram.
	if _, err := bus.TryRead(0x4000); err == nil {
		t.Fatalf("TryRead() of a hole succeeded")
	}
}

func TestBuildBank(t *testing.T) {
	f, err := Decode(strings.NewReader(`
		name = "banked"

		[[region]]
		name = "sram"
		kind = "bank"
		base = 0x0000
		size = 0x100
		count = 2
	`))
	if err != nil {
		t.Fatal(err)
	}
	bus, err := Build[uint16](f)
	if err != nil {
		t.Fatal(err)
	}

	bus.Write(0x0010, 0x77)
	if val := bus.Read(0x0010); val != 0x77 {
		t.Fatalf("Read() = 0x%x, want 0x77", val)
	}
}

func TestBuildRandom(t *testing.T) {
	f, err := Decode(strings.NewReader(`
		name = "noise"

		[[region]]
		kind = "random"
		base = 0x0000
		size = 0x10
	`))
	if err != nil {
		t.Fatal(err)
	}
	bus, err := Build[uint16](f)
	if err != nil {
		t.Fatal(err)
	}

	// Only the mapped range resolves; the value itself is garbage.
	bus.Read(0x000F)
	if _, err := bus.TryRead(0x0010); err == nil {
		t.Fatalf("TryRead() past the region succeeded")
	}
}
