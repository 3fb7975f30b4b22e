package game

import (
	"slices"
	"strings"

	"github.com/lox/jokerforbots/internal/pool"
)

// Boss identifies a boss blind.
type Boss int

const (
	NoBoss Boss = iota
	TheArm
	TheClub
	TheEye
	TheFish
	TheFlint
	TheGoad
	TheHead
	TheHook
	TheHouse
	TheManacle
	TheMark
	TheMouth
	TheNeedle
	TheOx
	ThePillar
	ThePlant
	ThePsychic
	TheSerpent
	TheTooth
	TheWall
	TheWater
	TheWheel
	TheWindow
	AmberAcorn
	CeruleanBell
	CrimsonHeart
	VerdantLeaf
	VioletVessel
)

const bossCount = VioletVessel + 1

type bossInfo struct {
	key      string
	name     string
	minAnte  int
	showdown bool
	mult     float64
}

var bosses = [...]bossInfo{
	NoBoss:       {"", "None", 0, false, 1},
	TheArm:       {"bl_arm", "The Arm", 2, false, 2},
	TheClub:      {"bl_club", "The Club", 1, false, 2},
	TheEye:       {"bl_eye", "The Eye", 3, false, 2},
	TheFish:      {"bl_fish", "The Fish", 2, false, 2},
	TheFlint:     {"bl_flint", "The Flint", 2, false, 2},
	TheGoad:      {"bl_goad", "The Goad", 1, false, 2},
	TheHead:      {"bl_head", "The Head", 1, false, 2},
	TheHook:      {"bl_hook", "The Hook", 1, false, 2},
	TheHouse:     {"bl_house", "The House", 2, false, 2},
	TheManacle:   {"bl_manacle", "The Manacle", 1, false, 2},
	TheMark:      {"bl_mark", "The Mark", 2, false, 2},
	TheMouth:     {"bl_mouth", "The Mouth", 2, false, 2},
	TheNeedle:    {"bl_needle", "The Needle", 2, false, 1},
	TheOx:        {"bl_ox", "The Ox", 6, false, 2},
	ThePillar:    {"bl_pillar", "The Pillar", 1, false, 2},
	ThePlant:     {"bl_plant", "The Plant", 4, false, 2},
	ThePsychic:   {"bl_psychic", "The Psychic", 1, false, 2},
	TheSerpent:   {"bl_serpent", "The Serpent", 5, false, 2},
	TheTooth:     {"bl_tooth", "The Tooth", 3, false, 2},
	TheWall:      {"bl_wall", "The Wall", 2, false, 4},
	TheWater:     {"bl_water", "The Water", 2, false, 2},
	TheWheel:     {"bl_wheel", "The Wheel", 2, false, 2},
	TheWindow:    {"bl_window", "The Window", 1, false, 2},
	AmberAcorn:   {"bl_final_acorn", "Amber Acorn", 0, true, 2},
	CeruleanBell: {"bl_final_bell", "Cerulean Bell", 0, true, 2},
	CrimsonHeart: {"bl_final_heart", "Crimson Heart", 0, true, 2},
	VerdantLeaf:  {"bl_final_leaf", "Verdant Leaf", 0, true, 2},
	VioletVessel: {"bl_final_vessel", "Violet Vessel", 0, true, 6},
}

func (b Boss) String() string { return bosses[b].name }

// Key returns the identifier bosses are sorted by before a draw.
func (b Boss) Key() string { return bosses[b].key }

// Showdown reports whether the boss belongs to the final-ante pool.
func (b Boss) Showdown() bool { return bosses[b].showdown }

// Multiplier returns the factor applied to the ante's base requirement.
func (b Boss) Multiplier() float64 { return bosses[b].mult }

// ParseBoss looks a boss up by name ("The Wall") or key ("bl_wall").
func ParseBoss(s string) (Boss, bool) {
	for b := TheArm; b <= VioletVessel; b++ {
		if strings.EqualFold(bosses[b].name, s) || strings.EqualFold(bosses[b].key, s) {
			return b, true
		}
	}
	return NoBoss, false
}

// eligibleBoss reports whether b can appear at ante in a run won at winAnte.
func eligibleBoss(b Boss, ante, winAnte int) bool {
	info := bosses[b]
	finalAnte := ante%winAnte == 0 && ante >= 2
	if info.showdown {
		return finalAnte
	}
	return info.minAnte <= max(1, ante) && !finalAnte
}

// Boss returns the boss of the current ante, rolling it on first request.
func (r *Run) Boss() Boss {
	return r.bossForAnte(r.ante)
}

// BossForAnte returns the boss of ante, rolling it if it has not been rolled
// yet. Bosses must be asked for in ante order to match a played run.
func (r *Run) BossForAnte(ante int) Boss {
	return r.bossForAnte(ante)
}

func (r *Run) bossForAnte(ante int) Boss {
	if b, ok := r.bosses[ante]; ok {
		return b
	}
	b := r.rollBoss(ante)
	r.bosses[ante] = b
	return b
}

// rollBoss draws uniformly on "boss" among the eligible bosses used the
// fewest times so far, sorted by key, and counts the pick.
func (r *Run) rollBoss(ante int) Boss {
	minUse := 100
	var candidates []Boss
	for b := TheArm; b <= VioletVessel; b++ {
		if !eligibleBoss(b, ante, r.winAnte) {
			continue
		}
		used := r.bossUses[b]
		switch {
		case used < minUse:
			minUse = used
			candidates = append(candidates[:0], b)
		case used == minUse:
			candidates = append(candidates, b)
		}
	}

	slices.SortFunc(candidates, func(a, b Boss) int {
		return strings.Compare(a.Key(), b.Key())
	})

	picked := candidates[pool.Element(r.stream, len(candidates), "boss")]
	r.bossUses[picked]++
	r.logger.Debug("Rolled boss", "ante", ante, "boss", picked)
	return picked
}
