// Package seeding implements the keyed pseudo-random stream every run draws
// from. Each channel key advances independently, so the value returned by a
// draw depends only on the run seed, the key and how many times that key was
// drawn before.
package seeding

import (
	"io"
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/randutil"
)

// Hash folds a string into [0, 1). Bytes are consumed from last to first.
func Hash(s string) float64 {
	num := 1.0
	for i := len(s); i > 0; i-- {
		b := float64(s[i-1])
		// explicit conversions keep each product rounded, no fused multiply-add
		num = math.Mod(float64(float64(float64(1.1239285023/num)*b)*math.Pi)+float64(math.Pi*float64(i)), 1)
	}
	return num
}

func advance(v float64) float64 {
	return math.Round(math.Mod(2.134453429141+float64(v*1.72431234), 1)*1e13) / 1e13
}

// Stream is the per-run random state: the seed, its hash and one evolving
// value per channel key.
type Stream struct {
	seed     string
	hashed   float64
	channels map[string]float64
	rng      *randutil.Rand
	logger   *log.Logger
}

// New creates a stream for the given seed string.
func New(seed string) *Stream {
	return &Stream{
		seed:     seed,
		hashed:   Hash(seed),
		channels: make(map[string]float64),
		rng:      randutil.New(0),
		logger:   log.New(io.Discard),
	}
}

// SetLogger routes draw tracing to logger. Nil disables it.
func (s *Stream) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s.logger = logger
}

// Seed returns the seed string the stream was created from.
func (s *Stream) Seed() string { return s.seed }

// HashedSeed returns Hash(seed).
func (s *Stream) HashedSeed() float64 { return s.hashed }

// Next advances channel key and returns its draw.
func (s *Stream) Next(key string) float64 {
	v, ok := s.channels[key]
	if !ok {
		v = Hash(key + s.seed)
	}
	v = advance(v)
	s.channels[key] = v

	out := (v + s.hashed) / 2
	s.logger.Debug("Seeded channel", "key", key, "value", out)
	return out
}

// Predict returns what the first draw on key would yield for this seed,
// ignoring and not touching any state the key already has.
func (s *Stream) Predict(key string) float64 {
	return (advance(Hash(key+s.seed)) + s.hashed) / 2
}

// ChannelCount returns the number of distinct channels drawn so far.
func (s *Stream) ChannelCount() int { return len(s.channels) }

// Random reseeds the uniform generator from channel key and returns a value
// in [0, 1).
func (s *Stream) Random(key string) float64 {
	s.rng.Seed(s.Next(key))
	return s.rng.Float64()
}

// Index reseeds the uniform generator from channel key and returns a value in
// [0, n).
func (s *Stream) Index(key string, n int) int {
	s.rng.Seed(s.Next(key))
	return s.rng.IntN(n)
}

// Shuffle permutes list in place using a generator seeded once from seed.
// Walks from the end, swapping position i-1 with a draw from [0, i).
func Shuffle[T any](list []T, seed float64) {
	r := randutil.New(seed)
	for i := len(list); i >= 1; i-- {
		j := r.IntN(i)
		list[i-1], list[j] = list[j], list[i-1]
	}
}

// ShuffleKeyed shuffles list with the next draw from channel key.
func ShuffleKeyed[T any](s *Stream, list []T, key string) {
	Shuffle(list, s.Next(key))
}

// SeedSource is the subset of *rand.Rand that seed generation draws from.
type SeedSource interface {
	Float64() float64
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// RandomSeed produces a fresh eight character seed in the game's alphabet:
// digits 1-9 and letters A-Z without O.
func RandomSeed() string {
	return GenerateSeed(globalSource{})
}

// GenerateSeed is RandomSeed drawing from src, for reproducible seed lists.
func GenerateSeed(src SeedSource) string {
	buf := make([]byte, 8)
	for i := range buf {
		switch {
		case src.Float64() < 0.3:
			buf[i] = byte('1' + src.IntN(9))
		case src.Float64() < 0.55:
			buf[i] = byte('A' + src.IntN(14))
		default:
			buf[i] = byte('P' + src.IntN(11))
		}
	}
	return string(buf)
}
