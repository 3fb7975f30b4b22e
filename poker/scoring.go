package poker

// ScoringCards returns the positions in cards that count toward a hand of type
// t: the matched ranks for pairs, trips and quads, the highest card for a high
// card, and every card for five-card hands. Stone cards always score.
func ScoringCards(cards []Card, t HandType) []int {
	var counts [RankCount]int
	for _, c := range cards {
		counts[c.Rank]++
	}

	need := 0
	switch t {
	case HighCard:
		best := -1
		for i, c := range cards {
			if best < 0 || c.Rank > cards[best].Rank {
				best = i
			}
		}
		if best < 0 {
			return nil
		}
		return withStones(cards, []int{best})
	case Pair, TwoPair:
		need = 2
	case ThreeOfAKind:
		need = 3
	case FourOfAKind:
		need = 4
	default:
		out := make([]int, len(cards))
		for i := range cards {
			out[i] = i
		}
		return out
	}

	var out []int
	for i, c := range cards {
		if counts[c.Rank] >= need {
			out = append(out, i)
		}
	}
	return withStones(cards, out)
}

func withStones(cards []Card, scoring []int) []int {
	for i, c := range cards {
		if c.Enhancement != Stone {
			continue
		}
		found := false
		for _, j := range scoring {
			if j == i {
				found = true
				break
			}
		}
		if !found {
			scoring = append(scoring, i)
		}
	}
	return scoring
}
