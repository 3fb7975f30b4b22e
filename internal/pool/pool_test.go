package pool

import (
	"fmt"
	"testing"

	"github.com/lox/jokerforbots/internal/seeding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed results and records the keys it was asked for.
type scriptedSource struct {
	indices []int
	reals   []float64
	keys    []string
}

func (s *scriptedSource) Index(key string, n int) int {
	s.keys = append(s.keys, key)
	v := s.indices[0]
	s.indices = s.indices[1:]
	return v
}

func (s *scriptedSource) Random(key string) float64 {
	s.keys = append(s.keys, key)
	v := s.reals[0]
	s.reals = s.reals[1:]
	return v
}

func TestPollResampleKeys(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{indices: []int{0, 1, 0, 3}}
	available := []bool{false, false, false, true}

	got := Poll(src, available, "Voucher1")
	assert.Equal(t, 3, got)
	assert.Equal(t, []string{
		"Voucher1",
		"Voucher1_resample2",
		"Voucher1_resample3",
		"Voucher1_resample4",
	}, src.keys)
}

func TestPollFirstDrawAvailable(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{indices: []int{2}}
	assert.Equal(t, 2, Poll(src, []bool{true, true, true}, "Tag1"))
	assert.Equal(t, []string{"Tag1"}, src.keys)
}

func TestPollNeverReturnsUnavailable(t *testing.T) {
	t.Parallel()

	stream := seeding.New("AAAAAAAA")
	for size := 1; size <= 40; size++ {
		for pattern := 0; pattern < 8; pattern++ {
			available := make([]bool, size)
			for i := range available {
				available[i] = (i*7+pattern)%5 == 0
			}
			available[(pattern*3)%size] = true

			key := fmt.Sprintf("pool%d_%d", size, pattern)
			idx := Poll(stream, available, key)
			require.True(t, available[idx], "size %d pattern %d picked %d", size, pattern, idx)
		}
	}
}

func TestWeightedInclusiveUpperBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		u    float64
		want int
	}{
		{"start", 0, 0},
		{"inside first", 0.1, 0},
		{"boundary belongs to earlier", 0.5, 0},
		{"inside second", 0.6, 1},
		{"second boundary", 0.75, 1},
		{"top", 0.999, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// weights sum to 4, so u is scaled by four
			src := &scriptedSource{reals: []float64{tt.u}}
			got := Weighted(src, []float64{2, 1, 1}, "cdt1")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeightedSkipsZeroWeights(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{reals: []float64{0.5}}
	got := Weighted(src, []float64{20, 0, 0, 20}, "cdt1")
	assert.Equal(t, 0, got, "u=20 sits on the first boundary")

	src = &scriptedSource{reals: []float64{0.6}}
	got = Weighted(src, []float64{20, 0, 0, 20}, "cdt1")
	assert.Equal(t, 3, got)
}

func TestWeightedDeterministic(t *testing.T) {
	t.Parallel()

	weights := []float64{20, 4, 4, 0, 0}
	a := seeding.New("AAAAAAAA")
	b := seeding.New("AAAAAAAA")
	for i := 0; i < 50; i++ {
		got := Weighted(a, weights, "cdt1")
		require.Equal(t, got, Weighted(b, weights, "cdt1"))
		require.Less(t, got, 3, "zero weight categories should not win away from boundaries")
	}
}

func TestElement(t *testing.T) {
	t.Parallel()

	src := &scriptedSource{indices: []int{7}}
	assert.Equal(t, 7, Element(src, 52, "frontsho1"))
	assert.Panics(t, func() { Element(src, 0, "frontsho1") })
}

func TestAny(t *testing.T) {
	t.Parallel()

	assert.False(t, Any(nil))
	assert.False(t, Any([]bool{false, false}))
	assert.True(t, Any([]bool{false, true}))
}
