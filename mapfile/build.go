package mapfile

import (
	"fmt"

	"emukit/hwio"
	"emukit/mem"
)

// Build instantiates the memory map described by f on a fresh byte-wide bus
// of the requested address width. Named regions are wrapped in shared
// handles, so a mirror maps a window of the very same storage at its second
// base.
func Build[Idx hwio.Value](f *File) (*hwio.Bus[Idx, uint8], error) {
	bus := hwio.NewBus[Idx, uint8](f.Name)
	named := make(map[string]*hwio.Shared[Idx, uint8])

	for i := range f.Regions {
		r := &f.Regions[i]

		var dev hwio.Device[Idx, uint8]
		switch r.Kind {
		case KindRam:
			ram := mem.NewRam[Idx, uint8](uint(r.Size))
			ram.Name = r.Name
			dev = ram

		case KindRom:
			buf := make([]uint8, r.Size)
			for i := range buf {
				buf[i] = r.Fill
			}
			rom := mem.RomFrom[Idx](buf)
			rom.Name = r.Name
			dev = rom

		case KindFixed:
			null := mem.NewNull[Idx, uint8](uint(r.Size))
			null.ReadAs(r.Value)
			dev = null

		case KindRandom:
			dev = mem.NewRandom[Idx, uint8](uint(r.Size))

		case KindMirror:
			src := named[r.Of]
			dev = hwio.NewView[Idx, uint8](Idx(r.Offset), Idx(r.Offset+r.Size-1), src)

		case KindBank:
			var candidates []hwio.Device[Idx, uint8]
			for c := 0; c < r.Count; c++ {
				ram := mem.NewRam[Idx, uint8](uint(r.Size))
				ram.Name = fmt.Sprintf("%s:%d", r.Name, c)
				candidates = append(candidates, ram)
			}
			dev = hwio.NewBank(candidates...)

		default:
			return nil, fmt.Errorf("region %q: unsupported kind %s", r.Name, r.Kind)
		}

		if r.Name != "" && r.Kind != KindMirror {
			shared := hwio.Share(dev)
			named[r.Name] = shared
			dev = shared
		}

		bus.Map(Idx(r.Base), Idx(r.Base+r.Size-1), dev)
	}

	return bus, nil
}
