package randlib

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
)

var (
	_ rand.Source = (*Rand)(nil)
	_ io.Reader   = (*Rand)(nil)
)

// Read fills p with generated bytes, four bytes per step, little-endian.
// It always returns len(p) and a nil error.
func (r *Rand) Read(p []byte) (n int, err error) {
	var buf [4]byte
	for n < len(p) {
		binary.LittleEndian.PutUint32(buf[:], r.Uint32())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}
