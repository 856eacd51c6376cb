// Package mapfile loads declarative memory-map descriptions and instantiates
// buses from them.
//
// A map file is TOML. Each region declares a kind, a base address and a size;
// mirror regions reference an earlier named region and map a window of it at
// a second base:
//
//	name = "dmg"
//
//	[[region]]
//	name = "boot"
//	kind = "rom"
//	base = 0x0000
//	size = 0x100
//
//	[[region]]
//	name = "wram"
//	kind = "ram"
//	base = 0xC000
//	size = 0x2000
//
//	[[region]]
//	name = "echo"
//	kind = "mirror"
//	of = "wram"
//	base = 0xE000
//	size = 0x1E00
package mapfile

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"emukit/log"
)

type File struct {
	Name    string   `toml:"name"`
	Regions []Region `toml:"region"`
}

type Region struct {
	Name string `toml:"name"`
	Kind Kind   `toml:"kind"`
	Base uint64 `toml:"base"`
	Size uint64 `toml:"size"`

	Value  uint8  `toml:"value"`  // fixed: the value read back
	Fill   uint8  `toml:"fill"`   // ram/rom: initial fill value
	Of     string `toml:"of"`     // mirror: name of the mirrored region
	Offset uint64 `toml:"offset"` // mirror: offset of the window into the source
	Count  int    `toml:"count"`  // bank: number of candidates
}

// Load reads and validates a map file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and validates a map file from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	if err := f.check(); err != nil {
		return nil, err
	}

	log.ModMap.DebugZ("map file decoded").
		String("name", f.Name).
		Int("regions", int64(len(f.Regions))).
		End()
	return &f, nil
}

func (f *File) check() error {
	names := make(map[string]*Region)

	for i := range f.Regions {
		r := &f.Regions[i]
		where := r.Name
		if where == "" {
			where = fmt.Sprintf("#%d", i)
		}

		if r.Kind == KindInvalid {
			return fmt.Errorf("region %s: missing kind", where)
		}
		if r.Size == 0 {
			return fmt.Errorf("region %s: missing or zero size", where)
		}

		switch r.Kind {
		case KindMirror:
			src, ok := names[r.Of]
			if !ok {
				return fmt.Errorf("region %s: mirrors unknown region %q", where, r.Of)
			}
			if src.Kind == KindMirror || src.Kind == KindBank {
				return fmt.Errorf("region %s: cannot mirror a %s region", where, src.Kind)
			}
			if r.Offset+r.Size > src.Size {
				return fmt.Errorf("region %s: window [%#x, %#x) exceeds %q size %#x",
					where, r.Offset, r.Offset+r.Size, r.Of, src.Size)
			}
		case KindBank:
			if r.Count <= 0 {
				return fmt.Errorf("region %s: bank needs a positive count", where)
			}
		}

		if r.Name != "" {
			if _, dup := names[r.Name]; dup {
				return fmt.Errorf("region %s: duplicate name", where)
			}
			names[r.Name] = r
		}
	}
	return nil
}
