package seeding

import (
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lox/jokerforbots/internal/fileutil"
)

// Snapshot is the complete replayable random state of a run: the seed plus
// the current value of every channel that has been drawn.
type Snapshot struct {
	Seed     string             `toml:"seed"`
	Channels map[string]float64 `toml:"channels"`
}

// Snapshot copies the stream state.
func (s *Stream) Snapshot() Snapshot {
	return Snapshot{
		Seed:     s.seed,
		Channels: maps.Clone(s.channels),
	}
}

// Restore rebuilds a stream that continues exactly where snap was taken.
func Restore(snap Snapshot) *Stream {
	s := New(snap.Seed)
	if snap.Channels != nil {
		s.channels = maps.Clone(snap.Channels)
	}
	return s
}

// WriteSnapshot encodes snap as TOML.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	if err := toml.NewEncoder(w).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// SaveSnapshot writes snap to filename as TOML, replacing any existing file
// atomically.
func SaveSnapshot(filename string, snap Snapshot) error {
	return fileutil.WriteAtomic(filename, 0o644, func(w io.Writer) error {
		return WriteSnapshot(w, snap)
	})
}

// ReadSnapshot decodes a snapshot previously written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	if _, err := toml.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Seed == "" {
		return Snapshot{}, fmt.Errorf("snapshot has no seed")
	}
	return snap, nil
}

// LoadSnapshot reads a snapshot file written by SaveSnapshot.
func LoadSnapshot(filename string) (Snapshot, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}
