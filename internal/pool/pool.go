// Package pool turns availability tables and weight tables into single
// deterministic picks drawn from a keyed random source.
package pool

import (
	"fmt"
)

// Source is the slice of a keyed random stream the selectors need.
// *seeding.Stream satisfies it.
type Source interface {
	Random(key string) float64
	Index(key string, n int) int
}

// Poll draws a uniform index on key and, while the drawn slot is
// unavailable, redraws on key+"_resample2", key+"_resample3" and so on.
// Every rejected draw still advances its own channel.
//
// Callers must mark at least one slot available or Poll never returns.
func Poll(src Source, available []bool, key string) int {
	n := len(available)
	idx := src.Index(key, n)
	for i := 2; !available[idx]; i++ {
		idx = src.Index(fmt.Sprintf("%s_resample%d", key, i), n)
	}
	return idx
}

// Weighted draws u in [0, sum) on key and returns the first category whose
// span [lo, lo+w] contains u. The upper bound is inclusive, so a value landing
// exactly on a boundary resolves to the earlier category.
func Weighted(src Source, weights []float64, key string) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	u := src.Random(key) * total
	var lo float64
	for i, w := range weights {
		if lo <= u && u <= lo+w {
			return i
		}
		lo += w
	}
	panic(fmt.Sprintf("pool: weighted draw %v on %q fell outside %v", u, key, weights))
}

// Element returns a uniform index in [0, n) drawn on key.
func Element(src Source, n int, key string) int {
	if n <= 0 {
		panic(fmt.Sprintf("pool: element draw on %q from empty pool", key))
	}
	return src.Index(key, n)
}

// Any reports whether at least one slot is available.
func Any(available []bool) bool {
	for _, ok := range available {
		if ok {
			return true
		}
	}
	return false
}
