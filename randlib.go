// Package randlib is a small pseudo-random value generator built on a
// 64-bit linear congruential generator.
//
// A Rand is seeded from ambient entropy (its own address and the wall clock)
// so every process and every instance produces a different sequence. It is
// not suitable for cryptographic use and has no internal locking: a Rand
// must be owned by one goroutine at a time. If several goroutines need
// random values, give each its own Rand.
package randlib

import (
	"errors"
	"math/bits"
	"time"
	"unsafe"
)

// Knuth/Newlib LCG pair.
const (
	primeA = 1442695040888963407
	primeB = 6364136223846793005
)

var (
	ErrClockUnavailable = errors.New("randlib: wall clock unavailable")
	ErrInvalidRange     = errors.New("randlib: invalid range")
	ErrIndexOutOfRange  = errors.New("randlib: index out of range")
)

// Rand is a pseudo-random generator. The zero value is usable but always
// starts from the same state; use New.
type Rand struct {
	seed uint64
}

// New creates a Rand seeded from its own address and the current time.
func New(opts ...Option) (*Rand, error) {
	opt := newOptions(opts...)

	now := opt.clock()
	if now.IsZero() || now.Before(time.Unix(0, 0)) {
		return nil, ErrClockUnavailable
	}

	r := &Rand{}
	r.seed = uint64(uintptr(unsafe.Pointer(r))) * uint64(now.UnixNano())
	return r, nil
}

// MustNew is like New but panics if the clock is unavailable.
func MustNew(opts ...Option) *Rand {
	r, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// step advances the state and returns its upper half.
func (r *Rand) step() uint64 {
	r.seed = primeA*r.seed + primeB
	return r.seed >> 32
}

// Bool returns true when the upper half of the next state is even.
func (r *Rand) Bool() bool {
	return r.step()%2 == 0
}

func (r *Rand) Uint8() uint8   { return uint8(r.step()) }
func (r *Rand) Uint16() uint16 { return uint16(r.step()) }
func (r *Rand) Uint32() uint32 { return uint32(r.step()) }

// Uint64 remixes the upper half with the multiplier so the result fills all
// 64 bits.
func (r *Rand) Uint64() uint64 {
	return r.step() * primeA
}

// Uint128 returns (u * A * B) mod 2^128 where u is the upper half of the
// next state.
func (r *Rand) Uint128() Uint128 {
	hi, lo := bits.Mul64(r.step(), primeA)
	h, l := bits.Mul64(lo, primeB)
	return Uint128{Hi: hi*primeB + h, Lo: l}
}

func (r *Rand) Int8() int8   { return int8(r.step()) }
func (r *Rand) Int16() int16 { return int16(r.step()) }
func (r *Rand) Int32() int32 { return int32(r.step()) }
func (r *Rand) Int64() int64 { return int64(r.Uint64()) }

func (r *Rand) Int128() Int128 {
	u := r.Uint128()
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// Uint returns a value of the platform's native width: the Uint64 mapping
// on 64-bit platforms and the Uint32 mapping elsewhere.
func (r *Rand) Uint() uint {
	if bits.UintSize == 64 {
		return uint(r.Uint64())
	}
	return uint(r.Uint32())
}

// Int is Uint reinterpreted as signed.
func (r *Rand) Int() int {
	return int(r.Uint())
}
