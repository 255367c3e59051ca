package randlib

import "fmt"

// Range returns a value in the inclusive interval [lo, hi] by reducing one
// Uint draw modulo the span. Spans that do not divide the native word range
// are slightly biased toward their low end. Range does not advance the
// generator when lo > hi.
func (r *Rand) Range(lo, hi uint) (uint, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, lo, hi)
	}
	v := r.Uint()
	span := hi - lo + 1
	if span == 0 {
		// [0, MaxUint]
		return v, nil
	}
	return lo + v%span, nil
}

// Shuffle permutes n elements by performing n random transpositions. Each
// transposition draws two independent indices from [0, n-1]; the pair may
// coincide. The resulting permutations are not uniformly distributed.
// Shuffle panics if n < 0.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("randlib: invalid argument to Shuffle")
	}
	last := uint(n - 1)
	for k := 0; k < n; k++ {
		i, _ := r.Range(0, last)
		j, _ := r.Range(0, last)
		swap(int(i), int(j))
	}
}

// ShuffleSlice shuffles s in place with r.Shuffle.
func ShuffleSlice[T any](r *Rand, s []T) {
	r.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// Pick returns a pointer to one element of s chosen by a single Range draw.
func Pick[T any](r *Rand, s []T) (*T, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: pick from empty sequence", ErrIndexOutOfRange)
	}
	i, err := r.Range(0, uint(len(s)-1))
	if err != nil {
		return nil, err
	}
	return &s[i], nil
}
