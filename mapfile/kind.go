package mapfile

import "fmt"

// Kind enumerates the region kinds a map file may declare.
type Kind int

//go:generate go tool stringer -type=Kind -linecomment

const (
	KindInvalid Kind = iota // invalid
	KindRam                 // ram
	KindRom                 // rom
	KindFixed               // fixed
	KindRandom              // random
	KindMirror              // mirror
	KindBank                // bank
)

// UnmarshalText decodes a region kind from its map file spelling.
//
// Implements encoding.TextUnmarshaler, used by the TOML decoder.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind := KindRam; kind <= KindBank; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown region kind %q", text)
}
