/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package basketball

// home court sequences with the home court advantage side as team 1
var (
	schedule7 = []int{1, 1, 2, 2, 1, 2, 1} // 2-2-1-1-1
	schedule5 = []int{1, 1, 2, 2, 1}       // 2-2-1
)

// SeriesSchedule returns, per game, which team hosts it when team 1 holds
// home court advantage.
func SeriesSchedule(bestOf int) ([]int, error) {
	if _, err := winsNeeded(bestOf); err != nil {
		return nil, err
	}
	var sched []int
	if bestOf == 7 {
		sched = schedule7
	} else {
		sched = schedule5
	}

	return append([]int(nil), sched...), nil
}

// SeriesOutcomeProbability returns the probability of one exact series
// result given both sides' ratings, assuming ratings stay fixed through the
// series and the playoff home court adjustment applies to every game.
func (e *SimpleElo) SeriesOutcomeProbability(bestOf int, outcome string,
	hcaElo float64, otherElo float64) (float64, error) {

	if _, err := seriesWinner(bestOf, outcome); err != nil {
		return 0, err
	}
	sched, err := SeriesSchedule(bestOf)
	if err != nil {
		return 0, err
	}

	prob := 1.0
	for i := 0; i < len(outcome); i++ {
		p, err := e.WinProbability(Playoff, sched[i], hcaElo, otherElo)
		if err != nil {
			return 0, err
		}
		if outcome[i] == HCAWin {
			prob *= p
		} else {
			prob *= 1.0 - p
		}
	}

	return prob, nil
}

// SeriesWinProbability returns the probability that the home court side
// wins a best-of-N series, summed over every possible result.
func (e *SimpleElo) SeriesWinProbability(bestOf int, hcaElo float64,
	otherElo float64) (float64, error) {

	outcomes, err := PlayoffOutcomes(bestOf, true)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, o := range outcomes {
		p, err := e.SeriesOutcomeProbability(bestOf, o, hcaElo, otherElo)
		if err != nil {
			return 0, err
		}
		total += p
	}

	return total, nil
}
