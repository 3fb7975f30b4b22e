package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/jokerforbots/internal/game"
)

// RunResult is the outcome of a single simulated run
type RunResult struct {
	game.Result

	Bot string // Controller that played the run
}

// Statistics tracks aggregate results of many runs
type Statistics struct {
	Runs     int
	SumAnte  float64
	SumAnte2 float64   // Sum of squares for variance calculation
	Values   []float64 // Ante reached by every run, for median/percentiles

	// Outcomes
	Wins   int
	Losses int
	Aborts int // Cancelled or timed out

	SumBlinds int // Blinds cleared across all runs
	SumHands  int // Hands played across all runs
	SumMoney  int // Money held when each run ended

	// Where runs are lost
	LossesByAnte map[int]int
	LossesByBoss map[game.Boss]int // Only losses on a boss blind

	// Best single blind score observed
	MaxScore     float64
	MaxScoreSeed string
}

// Add incorporates a new run result into the statistics
func (s *Statistics) Add(result RunResult) {
	ante := float64(result.Ante)
	s.Runs++
	s.SumAnte += ante
	s.SumAnte2 += ante * ante
	s.Values = append(s.Values, ante)

	s.SumBlinds += result.BlindsCleared
	s.SumHands += result.HandsPlayed
	s.SumMoney += result.Money

	switch result.Outcome {
	case game.Won:
		s.Wins++
	case game.Lost:
		s.Losses++
		if s.LossesByAnte == nil {
			s.LossesByAnte = make(map[int]int)
		}
		s.LossesByAnte[result.Ante]++
		if result.Tier == game.BossBlind {
			if s.LossesByBoss == nil {
				s.LossesByBoss = make(map[game.Boss]int)
			}
			s.LossesByBoss[result.Boss]++
		}
	default:
		s.Aborts++
	}

	if result.Score > s.MaxScore {
		s.MaxScore = result.Score
		s.MaxScoreSeed = result.Seed
	}
}

// WinRate returns the fraction of runs won
func (s *Statistics) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Runs)
}

// WinRateInterval95 returns the Wilson score interval for the win rate
func (s *Statistics) WinRateInterval95() (float64, float64) {
	if s.Runs == 0 {
		return 0, 0
	}
	const z = 1.96
	n := float64(s.Runs)
	p := s.WinRate()
	denom := 1 + z*z/n
	centre := (p + z*z/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

// Mean returns the mean ante reached
func (s *Statistics) Mean() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.SumAnte / float64(s.Runs)
}

// Variance returns the sample variance of the ante reached
func (s *Statistics) Variance() float64 {
	if s.Runs < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumAnte2 - float64(s.Runs)*mean*mean) / float64(s.Runs-1)
}

// StdDev returns the sample standard deviation of the ante reached
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Runs == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Runs))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean ante
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// MeanBlinds returns the mean number of blinds cleared per run
func (s *Statistics) MeanBlinds() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.SumBlinds) / float64(s.Runs)
}

// Median returns the median ante reached
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the ante reached at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// IsLedgerBalanced checks every run was counted under exactly one outcome
func (s *Statistics) IsLedgerBalanced() bool {
	return s.Wins+s.Losses+s.Aborts == s.Runs
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: wins=%d losses=%d aborts=%d runs=%d",
			s.Wins, s.Losses, s.Aborts, s.Runs)
	}

	if s.Runs <= 0 {
		return fmt.Errorf("invalid runs count: %d", s.Runs)
	}

	if len(s.Values) != s.Runs {
		return fmt.Errorf("values array length (%d) does not match runs count (%d)",
			len(s.Values), s.Runs)
	}

	byAnte := 0
	for _, n := range s.LossesByAnte {
		byAnte += n
	}
	if byAnte != s.Losses {
		return fmt.Errorf("losses by ante (%d) does not match losses (%d)", byAnte, s.Losses)
	}

	byBoss := 0
	for _, n := range s.LossesByBoss {
		byBoss += n
	}
	if byBoss > s.Losses {
		return fmt.Errorf("losses by boss (%d) exceeds losses (%d)", byBoss, s.Losses)
	}

	return nil
}
