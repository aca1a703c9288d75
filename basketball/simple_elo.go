/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package basketball adapts the generic elo updater to basketball, where
// home court is worth a fixed number of rating points and games cannot end
// in a draw. It also enumerates the possible game-by-game results of a
// best-of-5 or best-of-7 playoff series.
package basketball

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mikeb26/hoopelo/elo"
)

const (
	DefaultRegularSeasonHCA = 69.0
	DefaultPlayoffHCA       = 93.0
	KFactor                 = 20.0
)

var (
	ErrNoDraws         = errors.New("no draws in basketball")
	ErrInvalidGameType = errors.New("invalid game type")
	ErrInvalidHomeTeam = errors.New("invalid home team")
)

type GameType int

const (
	Regular GameType = iota + 1
	Playoff
)

func (gt GameType) String() string {
	switch gt {
	case Regular:
		return "regular"
	case Playoff:
		return "playoff"
	}
	return fmt.Sprintf("GameType(%d)", int(gt))
}

// ParseGameType accepts "regular" or "playoff" (case insensitive).
func ParseGameType(s string) (GameType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular", "reg", "regular-season":
		return Regular, nil
	case "playoff", "playoffs", "post", "postseason":
		return Playoff, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidGameType)
}

// Config holds the home court advantage, in rating points, applied for each
// game type. Start from DefaultConfig() and override as needed.
type Config struct {
	RegularSeasonHCA float64
	PlayoffHCA       float64
}

func DefaultConfig() Config {
	return Config{
		RegularSeasonHCA: DefaultRegularSeasonHCA,
		PlayoffHCA:       DefaultPlayoffHCA,
	}
}

// SimpleElo rates NBA teams with a logistic expectation, a constant K of 20
// and a home court adjustment that differs between the regular season and
// the playoffs. It is immutable after construction.
type SimpleElo struct {
	updater *elo.Updater
	regHCA  float64
	postHCA float64
}

func NewSimpleElo(cfg Config) *SimpleElo {
	return &SimpleElo{
		updater: elo.NewUpdater(elo.LogisticCalculator{},
			elo.ConstantMultiplier{Constant: KFactor}),
		regHCA:  cfg.RegularSeasonHCA,
		postHCA: cfg.PlayoffHCA,
	}
}

func (e *SimpleElo) RegularSeasonHCA() float64 {
	return e.regHCA
}

func (e *SimpleElo) PlayoffHCA() float64 {
	return e.postHCA
}

// adjustment returns the signed rating adjustment for team 1.
func (e *SimpleElo) adjustment(gameType GameType, homeTeam int) (float64, error) {
	var hca float64
	switch gameType {
	case Regular:
		hca = e.regHCA
	case Playoff:
		hca = e.postHCA
	default:
		return 0, fmt.Errorf("%v: %w", gameType, ErrInvalidGameType)
	}

	switch homeTeam {
	case 1:
		return hca, nil
	case 2:
		return -hca, nil
	}
	return 0, fmt.Errorf("%v: %w", homeTeam, ErrInvalidHomeTeam)
}

// Update returns the post-game ratings for teams 1 and 2. homeTeam is 1 or 2.
func (e *SimpleElo) Update(gameType GameType, homeTeam int,
	outcome elo.MatchOutcome, elo1 float64, elo2 float64) (float64, float64,
	error) {

	if outcome == elo.Draw {
		return elo1, elo2, ErrNoDraws
	}
	adj, err := e.adjustment(gameType, homeTeam)
	if err != nil {
		return elo1, elo2, err
	}

	return e.updater.Update(outcome, elo1, elo2, adj)
}

// WinProbability returns the home court adjusted probability that team 1
// wins.
func (e *SimpleElo) WinProbability(gameType GameType, homeTeam int,
	elo1 float64, elo2 float64) (float64, error) {

	adj, err := e.adjustment(gameType, homeTeam)
	if err != nil {
		return 0, err
	}

	return e.updater.WinProbability(elo1, elo2, adj), nil
}
