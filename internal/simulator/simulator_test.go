package simulator

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/jokerforbots/internal/bot"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeeds = []string{"AAAAAAAA", "BOTRUN12", "SAMESAME", "12345678"}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestSeedsAreReproducible(t *testing.T) {
	t.Parallel()

	a := New(Config{Runs: 5, BaseSeed: 3}).Seeds()
	b := New(Config{Runs: 5, BaseSeed: 3}).Seeds()
	require.Len(t, a, 5)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, New(Config{Runs: 5, BaseSeed: 4}).Seeds())

	assert.Equal(t, testSeeds, New(Config{Seeds: testSeeds, Runs: 99}).Seeds())
}

func TestSimulatorRun(t *testing.T) {
	t.Parallel()

	sim := New(Config{
		Seeds:       testSeeds,
		Bot:         "greedy",
		Concurrency: 2,
		Clock:       quartz.NewMock(t),
		Logger:      quietLogger(),
	})
	report, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(testSeeds), report.Stats.Runs)
	assert.Zero(t, report.Stats.Aborts)
	require.Len(t, report.Results, len(testSeeds))
	for i, res := range report.Results {
		assert.Equal(t, testSeeds[i], res.Seed)
		assert.Equal(t, "greedy", res.Bot)
		assert.NotEqual(t, game.Running, res.Outcome)
	}
	assert.Zero(t, report.Elapsed, "mock clock does not move on its own")
	assert.Zero(t, report.RunsPerSecond())
}

func TestConcurrencyDoesNotChangeResults(t *testing.T) {
	t.Parallel()

	var reports []*Report
	for _, n := range []int{1, 4} {
		report, err := New(Config{
			Seeds:       testSeeds,
			Bot:         "rand",
			BaseSeed:    11,
			Concurrency: n,
			Logger:      quietLogger(),
		}).Run(context.Background())
		require.NoError(t, err)
		reports = append(reports, report)
	}
	assert.Equal(t, reports[0].Results, reports[1].Results)
}

func TestRunConfigIsApplied(t *testing.T) {
	t.Parallel()

	report, err := New(Config{
		Seeds: testSeeds[:1],
		Bot:   "eager",
		RunConfig: func(string) game.RunConfig {
			return game.RunConfig{Seed: "IGNORED1", Money: 1, WinAnte: 1}
		},
	}).Run(context.Background())
	require.NoError(t, err)

	res := report.Results[0]
	assert.Equal(t, testSeeds[0], res.Seed, "the simulated seed wins over the template")
	assert.LessOrEqual(t, res.Ante, 2)
}

// blockingController waits in its first shop until released.
type blockingController struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingController) Shop(*game.Run) []game.ShopAction {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return []game.ShopAction{game.ExitShop()}
}

func (b *blockingController) BlindSelection(*game.Run) game.BlindSelectionAction {
	return game.PlayBlind
}

func (b *blockingController) Blind(*game.Blind, *game.Run) []game.BlindAction {
	return []game.BlindAction{game.Abort()}
}

func (b *blockingController) CashOut(*game.Run) game.CashOutAction {
	return game.ReturnToShop
}

func TestTimeoutAbortsRun(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	ctrl := &blockingController{entered: make(chan struct{}), release: make(chan struct{})}
	sim := New(Config{
		Seeds:   testSeeds[:1],
		Timeout: time.Second,
		Clock:   mClock,
		Logger:  quietLogger(),
		NewController: func(string, int) (game.Controller, error) {
			return ctrl, nil
		},
	})

	type outcome struct {
		report *Report
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		report, err := sim.Run(ctx)
		done <- outcome{report, err}
	}()

	<-ctrl.entered
	mClock.Advance(time.Second).MustWait(ctx)
	close(ctrl.release)

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, 1, got.report.Stats.Aborts)
	assert.Equal(t, game.Aborted, got.report.Results[0].Outcome)
}

func TestCancelledContextFails(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Seeds: testSeeds, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnknownBotFails(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Seeds: testSeeds, Bot: "maniac"}).Run(context.Background())
	assert.ErrorIs(t, err, bot.ErrUnknownBot)
}

func TestNoSeeds(t *testing.T) {
	t.Parallel()

	_, err := New(Config{}).Run(context.Background())
	assert.Error(t, err)
}
