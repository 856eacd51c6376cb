package hwio

// Word composition over byte-wide buses.

// Read16 reads a 16-bit little-endian word from two consecutive bytes.
func Read16[Idx Value](d Device[Idx, uint8], addr Idx) uint16 {
	lo := d.Read(addr)
	hi := d.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes a 16-bit word as two consecutive bytes, low byte first.
func Write16[Idx Value](d Device[Idx, uint8], addr Idx, val uint16) {
	d.Write(addr, uint8(val&0xff))
	d.Write(addr+1, uint8(val>>8))
}

// Bit operations, handy with Reg values.

func GetBit[V Value](v V, n uint) bool {
	return v>>n&1 != 0
}

func SetBit[V Value](v *V, n uint) {
	*v |= 1 << n
}

func ClearBit[V Value](v *V, n uint) {
	*v &^= 1 << n
}

func FlipBit[V Value](v *V, n uint) {
	*v ^= 1 << n
}

func ClearBits[V Value](v *V, mask V) {
	*v &^= mask
}
