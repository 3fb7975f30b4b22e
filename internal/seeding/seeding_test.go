package seeding

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"testing"

	"github.com/lox/jokerforbots/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashRange(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"A", "AAAAAAAA", "boss", "Voucher1AAAAAAAA", "rarity1sho", "\xff\xfe"} {
		h := Hash(s)
		assert.GreaterOrEqual(t, h, 0.0, s)
		assert.Less(t, h, 1.0, s)
		assert.Equal(t, h, Hash(s), "hash must be stable for %q", s)
	}
	assert.NotEqual(t, Hash("AAAAAAAA"), Hash("AAAAAAAB"))
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	keys := []string{"boss", "Voucher1", "cdt1", "Tag1", "rarity1sho", "boss", "cdt1", "nr1"}
	draw := func() []float64 {
		s := New("AAAAAAAA")
		var out []float64
		for _, k := range keys {
			out = append(out, s.Next(k), s.Random(k))
			out = append(out, float64(s.Index(k, 52)))
		}
		return out
	}

	first := draw()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, draw(), "run %d diverged", i)
	}
}

func TestChannelIndependence(t *testing.T) {
	t.Parallel()

	quiet := New("7LB2WVPK")
	var alone []float64
	for i := 0; i < 10; i++ {
		alone = append(alone, quiet.Random("Joker1sho1"))
	}

	noisy := New("7LB2WVPK")
	var interleaved []float64
	for i := 0; i < 10; i++ {
		for j := 0; j <= i; j++ {
			noisy.Next(fmt.Sprintf("cdt%d", j))
			noisy.Index("boss", 23)
		}
		interleaved = append(interleaved, noisy.Random("Joker1sho1"))
		noisy.Random("Joker1sho1_resample2")
	}

	assert.Equal(t, alone, interleaved)
}

func TestPredictMatchesFirstDraw(t *testing.T) {
	t.Parallel()

	s := New("AAAAAAAA")
	predicted := s.Predict("boss")
	assert.Equal(t, 0, s.ChannelCount(), "predict must not create channel state")
	assert.Equal(t, predicted, s.Next("boss"))
	assert.Equal(t, predicted, s.Predict("boss"), "predict ignores advanced state")
	assert.NotEqual(t, predicted, s.Next("boss"))
}

func TestNextRange(t *testing.T) {
	t.Parallel()

	s := New("ZZZZZZZZ")
	for i := 0; i < 200; i++ {
		v := s.Next("erratic")
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	s := New("AAAAAAAA")
	for i := 0; i < 7; i++ {
		s.Next("boss")
		s.Next(fmt.Sprintf("Tag%d", i%3))
	}

	restored := Restore(s.Snapshot())
	for i := 0; i < 5; i++ {
		assert.Equal(t, s.Random("boss"), restored.Random("boss"))
		assert.Equal(t, s.Index("Tag1", 24), restored.Index("Tag1", 24))
		assert.Equal(t, s.Next("fresh"), restored.Next("fresh"))
	}
}

func TestSnapshotTOML(t *testing.T) {
	t.Parallel()

	s := New("AAAAAAAA")
	s.Next("boss")
	s.Next("Voucher1")
	s.Next("Joker1sho1_resample2")

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, s.Snapshot()))

	snap, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), snap)

	restored := Restore(snap)
	assert.Equal(t, s.Next("Voucher1"), restored.Next("Voucher1"))
}

func TestSaveSnapshot(t *testing.T) {
	t.Parallel()

	s := New("BOTRUN12")
	s.Index("boss", 28)
	s.Random("cdt1")

	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, SaveSnapshot(path, s.Snapshot()))

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, s.Snapshot(), snap)

	_, err = LoadSnapshot(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestReadSnapshotRequiresSeed(t *testing.T) {
	t.Parallel()

	_, err := ReadSnapshot(bytes.NewBufferString("[channels]\nboss = 0.5\n"))
	require.Error(t, err)
}

func TestShuffle(t *testing.T) {
	t.Parallel()

	base := make([]int, 52)
	for i := range base {
		base[i] = i
	}

	a := slices.Clone(base)
	b := slices.Clone(base)
	Shuffle(a, 0.42)
	Shuffle(b, 0.42)
	assert.Equal(t, a, b, "same seed must give same order")
	assert.NotEqual(t, base, a)

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	assert.Equal(t, base, sorted, "shuffle must be a permutation")

	c := slices.Clone(base)
	Shuffle(c, 0.43)
	assert.NotEqual(t, a, c)
}

func TestShuffleKeyedAdvancesChannel(t *testing.T) {
	t.Parallel()

	s := New("AAAAAAAA")
	first := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	second := slices.Clone(first)
	ShuffleKeyed(s, first, "nr1")
	ShuffleKeyed(s, second, "nr1")
	assert.NotEqual(t, first, second)
}

func TestRandomSeedAlphabet(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		seed := RandomSeed()
		require.Len(t, seed, 8)
		for _, c := range seed {
			valid := (c >= '1' && c <= '9') || (c >= 'A' && c <= 'Z' && c != 'O')
			require.True(t, valid, "unexpected %q in %s", c, seed)
		}
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	t.Parallel()

	a, b := randutil.NewPCG(5), randutil.NewPCG(5)
	for range 20 {
		assert.Equal(t, GenerateSeed(a), GenerateSeed(b))
	}
}
