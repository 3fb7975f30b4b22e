package game

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownStake is returned when a stake name cannot be parsed.
var ErrUnknownStake = errors.New("unknown stake")

// Stake is the difficulty of a run.
type Stake int

const (
	White Stake = iota
	Red
	Green
	Black
	Blue
	Purple
	Orange
	Gold
)

func (s Stake) String() string {
	return [...]string{"white", "red", "green", "black", "blue", "purple", "orange", "gold"}[s]
}

// Tier returns the column of the requirement table the stake scales with.
func (s Stake) Tier() int {
	switch {
	case s >= Purple:
		return 2
	case s >= Green:
		return 1
	default:
		return 0
	}
}

// Discards returns the starting discards at the stake; Blue and above lose
// one.
func (s Stake) Discards() int {
	if s >= Blue {
		return 2
	}
	return 3
}

// ParseStake parses a stake name such as "white" or "Gold".
func ParseStake(name string) (Stake, error) {
	for s := White; s <= Gold; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return White, fmt.Errorf("%w: %q", ErrUnknownStake, name)
}

var requirementTable = [9][3]float64{
	{100, 100, 100},
	{300, 300, 300},
	{800, 900, 1000},
	{2000, 2600, 3200},
	{5000, 8000, 9000},
	{11000, 20000, 25000},
	{20000, 36000, 60000},
	{35000, 60000, 110000},
	{50000, 100000, 200000},
}

// BaseRequirement returns the chips a 1x blind requires at ante for the given
// stake tier. Antes past 8 grow with the endless formula.
func BaseRequirement(ante, tier int) float64 {
	tier = min(max(tier, 0), 2)
	if ante <= 8 {
		return requirementTable[max(ante, 0)][tier]
	}

	a := float64(ante - 8)
	return requirementTable[8][tier] * math.Pow(1.6+math.Pow(0.75*a, 1+0.2*a), a)
}
