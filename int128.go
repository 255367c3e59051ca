package randlib

import (
	"math"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit words.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a two's complement signed 128-bit integer. Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	MaxInt128  = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
	MinInt128  = Int128{Hi: math.MinInt64, Lo: 0}
)

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	b := new(big.Int).SetInt64(i.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string {
	return i.Big().String()
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	}
	return 1
}
