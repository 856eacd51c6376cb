package mapfile

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"

	"emukit/hwio"
)

// EncodeJSON writes the mapping table of a built bus as JSON, one object per
// mapping in resolution order.
func EncodeJSON[Idx, V hwio.Value](w io.Writer, bus *hwio.Bus[Idx, V]) error {
	var e jx.Encoder

	e.ObjStart()
	e.FieldStart("name")
	e.Str(bus.Name)
	e.FieldStart("mappings")
	e.ArrStart()
	for _, m := range bus.Mappings() {
		e.ObjStart()
		e.FieldStart("start")
		e.UInt64(uint64(m.Start))
		e.FieldStart("end")
		e.UInt64(uint64(m.End))
		e.FieldStart("size")
		e.UInt64(uint64(m.Dev.Len()))
		if s, ok := m.Dev.(fmt.Stringer); ok {
			e.FieldStart("device")
			e.Str(s.String())
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	_, err := w.Write(e.Bytes())
	return err
}
