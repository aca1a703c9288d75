/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package basketball

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkOutcomes(t *testing.T, bestOf int, hcaWins bool, wantTotal int,
	wantFullLength int) {

	t.Helper()

	outcomes, err := PlayoffOutcomes(bestOf, hcaWins)
	require.NoError(t, err)
	assert.Len(t, outcomes, wantTotal)

	wins := 4
	if bestOf == 5 {
		wins = 3
	}
	c := byte(OtherWin)
	if hcaWins {
		c = HCAWin
	}

	seen := make(map[string]bool)
	fullLength := 0
	for _, o := range outcomes {
		assert.False(t, seen[o], "duplicate outcome %q", o)
		seen[o] = true

		assert.GreaterOrEqual(t, len(o), wins, o)
		assert.LessOrEqual(t, len(o), bestOf, o)
		assert.Equal(t, c, o[len(o)-1], o)
		assert.Equal(t, wins, strings.Count(o, string(c)), o)
		if len(o) == bestOf {
			fullLength++
		}
	}
	assert.Equal(t, wantFullLength, fullLength)
}

func TestPlayoffOutcomes_BestOf7(t *testing.T) {
	// 1 sweep + 4 in five + 10 in six + C(6,3)=20 in seven
	checkOutcomes(t, 7, true, 35, 20)
	checkOutcomes(t, 7, false, 35, 20)
}

func TestPlayoffOutcomes_BestOf5(t *testing.T) {
	// 1 sweep + 3 in four + C(4,2)=6 in five
	checkOutcomes(t, 5, true, 10, 6)
	checkOutcomes(t, 5, false, 10, 6)
}

func TestPlayoffOutcomes_Ordering(t *testing.T) {
	outcomes, err := PlayoffOutcomes(5, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"NNN",
		"NNYN", "NYNN", "YNNN",
		"NNYYN", "NYNYN", "NYYNN", "YNNYN", "YNYNN", "YYNNN",
	}, outcomes)
}

func TestPlayoffOutcomes_InvalidBestOf(t *testing.T) {
	for _, bestOf := range []int{0, 1, 3, 4, 6, 8} {
		_, err := PlayoffOutcomes(bestOf, true)
		require.ErrorIs(t, err, ErrInvalidBestOf, "best of %v", bestOf)
		assert.Contains(t, err.Error(),
			"playoff series must be best of 5 or 7 games")
	}
}

func TestValidSeries(t *testing.T) {
	assert.Equal(t, "YNYNY", validSeries("YNYNY", 5, true))
	assert.Equal(t, "YYY", validSeries("YYYNN", 5, true))
	assert.Equal(t, "NYNYNN", validSeries("NYNYNNY", 7, false))
	assert.Equal(t, "YYYY", validSeries("YYYYNNN", 7, true))
}

func TestValidSeries_PanicsOnWrongCount(t *testing.T) {
	assert.Panics(t, func() { validSeries("YYNNN", 5, true) })
	assert.Panics(t, func() { validSeries("YYYYNNN", 7, false) })
	assert.Panics(t, func() { validSeries("YYYNN", 6, true) })
}

func TestLastIndex(t *testing.T) {
	assert.Equal(t, 5, lastIndex("YNYNY", HCAWin))
	assert.Equal(t, 4, lastIndex("YNYNY", OtherWin))
	assert.Equal(t, 1, lastIndex("YNNN", HCAWin))
}

func TestNextPermutation_Distinct(t *testing.T) {
	b := []byte("NNYY")
	got := []string{string(b)}
	for nextPermutation(b) {
		got = append(got, string(b))
	}
	assert.Equal(t, []string{"NNYY", "NYNY", "NYYN", "YNNY", "YNYN", "YYNN"},
		got)
}

func TestSeriesWinner(t *testing.T) {
	hca, err := seriesWinner(7, "YYNNYY")
	require.NoError(t, err)
	assert.True(t, hca)

	hca, err = seriesWinner(5, "NNN")
	require.NoError(t, err)
	assert.False(t, hca)

	for _, bad := range []string{"", "YYY", "YYYYY", "YYYYN", "NNNNYYYY",
		"YXYY", "NYYY"} {
		_, err = seriesWinner(7, bad)
		assert.ErrorIs(t, err, ErrInvalidOutcome, bad)
	}

	_, err = seriesWinner(6, "YYYY")
	assert.ErrorIs(t, err, ErrInvalidBestOf)
}
