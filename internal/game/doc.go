// Package game implements the rules engine of a run: antes, blinds, the
// shop and the jokers that modify scoring.
//
// The main type is Run, which owns the keyed random stream and every piece of
// mutable state. A Controller drives it one state at a time:
//
//	run := game.NewRun(game.RunConfig{Seed: "AAAAAAAA"})
//	result, err := run.Simulate(ctx, controller)
//
// # Determinism
//
// Every random choice is drawn from a named channel of the run's
// seeding.Stream, so a seed plus the sequence of controller actions fully
// determines the run. Channels advance independently: buying a joker never
// changes which boss appears later.
//
// # Architecture
//
//   - Blind: per-blind state, created on entry and dropped on completion
//   - dispatch: ordered effect dispatch over the boss rule and the jokers,
//     with deferred mutations applied after each pass
//   - Shop: item, voucher and booster generation through the pool package
//   - poker.Classify: hand classification
package game
