// Package randutil reproduces the uniform generator behind LuaJIT's
// math.random so that seeded draws match the game's own numbers exactly.
package randutil

import "math"

// tausworthe parameters (k, q, s) for the four combined LFSRs.
var tw223 = [4]struct{ k, q, s uint }{
	{63, 31, 18},
	{58, 19, 28},
	{55, 24, 7},
	{47, 21, 8},
}

// Rand is a 223-bit combined Tausworthe generator. The zero value is not
// usable; construct with New or call Seed before drawing.
type Rand struct {
	gen [4]uint64
}

// New returns a generator seeded the way math.randomseed(seed) would seed it.
func New(seed float64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state from a double, then discards ten outputs.
func (r *Rand) Seed(d float64) {
	shift := uint32(0x11090601)
	for i := range r.gen {
		m := uint64(1) << (shift & 255)
		shift >>= 8
		d = float64(d*3.14159265358979323846) + 2.7182818284590452354
		u := math.Float64bits(d)
		if u < m {
			u += m
		}
		r.gen[i] = u
	}
	for range 10 {
		r.step()
	}
}

func (r *Rand) step() uint64 {
	var out uint64
	for i, p := range tw223 {
		z := r.gen[i]
		z = (((z << p.q) ^ z) >> (p.k - p.s)) ^ ((z & (^uint64(0) << (64 - p.k))) << p.s)
		out ^= z
		r.gen[i] = z
	}
	return (out & 0x000fffffffffffff) | 0x3ff0000000000000
}

// Float64 returns a uniform value in [0, 1), equivalent to math.random().
func (r *Rand) Float64() float64 {
	return math.Float64frombits(r.step()) - 1.0
}

// IntN returns a uniform value in [0, n). math.random(n) is IntN(n)+1.
func (r *Rand) IntN(n int) int {
	return int(math.Floor(r.Float64() * float64(n)))
}
