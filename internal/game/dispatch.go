package game

import (
	"cmp"
	"slices"
)

// deferredAction runs after a dispatch pass against the live joker list.
// self is the owning joker, resolved again by ID.
type deferredAction func(r *Run, self *Joker)

type deferred struct {
	owner  uint64
	pos    int
	action deferredAction
}

// participant is one visitor of a dispatch pass: the blind's rule when joker
// is nil, otherwise a joker at position pos.
type participant struct {
	joker    *Joker
	pos      int
	priority int
}

// dispatch visits the blind and every joker for ev in priority order, ties
// kept in collection order with the blind first. A veto stops the pass.
// Deferred actions collected before the stop run afterwards in visit order.
func (r *Run) dispatch(ev *Event) {
	parts := make([]participant, 0, len(r.jokers)+1)
	if ev.Blind != nil {
		parts = append(parts, participant{pos: -1, priority: ev.Blind.Priority(ev.Type)})
	}
	for i, j := range r.jokers {
		parts = append(parts, participant{joker: j, pos: i, priority: j.Priority(ev.Type)})
	}
	slices.SortStableFunc(parts, func(a, b participant) int {
		return cmp.Compare(a.priority, b.priority)
	})

	var pending []deferred
	for _, p := range parts {
		if p.joker == nil {
			ev.Blind.handle(ev)
		} else if action := p.joker.handle(ev, p.pos); action != nil {
			pending = append(pending, deferred{owner: p.joker.id, pos: p.pos, action: action})
		}
		if ev.vetoed {
			r.logger.Debug("Event vetoed", "event", ev.Type, "by", p.name())
			break
		}
	}

	for _, d := range pending {
		self := r.jokerByID(d.owner)
		if self == nil {
			r.logger.Debug("Deferred action dropped", "event", ev.Type, "owner", d.owner, "pos", d.pos)
			continue
		}
		d.action(r, self)
	}
}

func (p participant) name() string {
	if p.joker == nil {
		return "blind"
	}
	return p.joker.String()
}
