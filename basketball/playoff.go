/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package basketball

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Series outcomes are strings with one byte per game played.
const (
	HCAWin   = 'Y' // won by the side holding home court advantage
	OtherWin = 'N'
)

var (
	ErrInvalidBestOf  = errors.New("playoff series must be best of 5 or 7 games")
	ErrInvalidOutcome = errors.New("invalid series outcome")
)

// winsNeeded returns the number of wins that decides a series.
func winsNeeded(bestOf int) (int, error) {
	switch bestOf {
	case 7:
		return 4, nil
	case 5:
		return 3, nil
	}
	return 0, fmt.Errorf("best of %v: %w", bestOf, ErrInvalidBestOf)
}

func winToken(hcaWins bool) byte {
	if hcaWins {
		return HCAWin
	}
	return OtherWin
}

// lastIndex returns the number of games up to and including the final
// occurrence of token.
func lastIndex(outcome string, token byte) int {
	return strings.LastIndexByte(outcome, token) + 1
}

// validSeries cuts a full length raw outcome off after the deciding game.
// The raw outcome must carry exactly the winning number of winner tokens;
// anything else is a bug in the caller and panics.
func validSeries(outcome string, bestOf int, hcaWins bool) string {
	wins, err := winsNeeded(bestOf)
	if err != nil {
		panic(err)
	}
	c := winToken(hcaWins)
	if n := strings.Count(outcome, string(c)); n != wins {
		panic(fmt.Sprintf("basketball.validSeries: %q has %v %c wins; want %v",
			outcome, n, c, wins))
	}

	return outcome[:lastIndex(outcome, c)]
}

// PlayoffOutcomes returns every distinct game-by-game result of a best-of-5
// or best-of-7 series won by the home court side (hcaWins) or by the other
// side. Each result stops at the deciding game. The slice holds no
// duplicates and is ordered by series length, then lexically.
func PlayoffOutcomes(bestOf int, hcaWins bool) ([]string, error) {
	wins, err := winsNeeded(bestOf)
	if err != nil {
		return nil, err
	}

	yes, no := wins, bestOf-wins
	if !hcaWins {
		yes, no = no, yes
	}
	// OtherWin sorts before HCAWin so this is the first permutation.
	raw := []byte(strings.Repeat(string(rune(OtherWin)), no) +
		strings.Repeat(string(rune(HCAWin)), yes))

	seen := make(map[string]struct{})
	for {
		seen[validSeries(string(raw), bestOf, hcaWins)] = struct{}{}
		if !nextPermutation(raw) {
			break
		}
	}

	outcomes := make([]string, 0, len(seen))
	for o := range seen {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		if len(outcomes[i]) != len(outcomes[j]) {
			return len(outcomes[i]) < len(outcomes[j])
		}
		return outcomes[i] < outcomes[j]
	})

	return outcomes, nil
}

// nextPermutation rearranges b into its lexically next permutation and
// reports whether one existed. Repeated bytes never yield the same
// arrangement twice.
func nextPermutation(b []byte) bool {
	i := len(b) - 2
	for i >= 0 && b[i] >= b[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(b) - 1
	for b[j] <= b[i] {
		j--
	}
	b[i], b[j] = b[j], b[i]
	for l, r := i+1, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}

	return true
}

// seriesWinner checks that outcome is a complete, truncated series and
// reports whether the home court side won it.
func seriesWinner(bestOf int, outcome string) (bool, error) {
	wins, err := winsNeeded(bestOf)
	if err != nil {
		return false, err
	}
	if len(outcome) == 0 || len(outcome) > bestOf {
		return false, fmt.Errorf("%q: %w", outcome, ErrInvalidOutcome)
	}

	yes := strings.Count(outcome, string(rune(HCAWin)))
	no := strings.Count(outcome, string(rune(OtherWin)))
	if yes+no != len(outcome) {
		return false, fmt.Errorf("%q: unknown game result: %w", outcome,
			ErrInvalidOutcome)
	}
	last := outcome[len(outcome)-1]
	switch {
	case last == HCAWin && yes == wins && no < wins:
		return true, nil
	case last == OtherWin && no == wins && yes < wins:
		return false, nil
	}

	return false, fmt.Errorf("%q is not a decided best of %v series: %w",
		outcome, bestOf, ErrInvalidOutcome)
}
