/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package elo implements a generic two-sided Elo rating updater. The win
// probability and the rating multiplier (K) are pluggable so that sport
// specific packages can compose their own variant.
package elo

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidOutcome = errors.New("invalid match outcome")

type MatchOutcome int

const (
	Win1 MatchOutcome = iota + 1
	Win2
	Draw
)

func (o MatchOutcome) String() string {
	switch o {
	case Win1:
		return "WIN_1"
	case Win2:
		return "WIN_2"
	case Draw:
		return "DRAW"
	}
	return fmt.Sprintf("MatchOutcome(%d)", int(o))
}

// Score returns the actual score credited to side 1.
func (o MatchOutcome) Score() (float64, error) {
	switch o {
	case Win1:
		return 1.0, nil
	case Win2:
		return 0.0, nil
	case Draw:
		return 0.5, nil
	}
	return 0, fmt.Errorf("%v: %w", o, ErrInvalidOutcome)
}

// Calculator computes the probability that side 1 wins. adjustment is added
// to side 1's rating before comparing.
type Calculator interface {
	WinProbability(elo1 float64, elo2 float64, adjustment float64) float64
}

// Multiplier computes K for a single match.
type Multiplier interface {
	Multiplier(outcome MatchOutcome, elo1 float64, elo2 float64,
		adjustment float64) float64
}

const DefaultScale = 400.0

// LogisticCalculator is the classic Elo expectation: a Scale point rating
// edge means 10:1 odds. A zero Scale uses DefaultScale.
type LogisticCalculator struct {
	Scale float64
}

func (c LogisticCalculator) WinProbability(elo1 float64, elo2 float64,
	adjustment float64) float64 {

	scale := c.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	exp := math.Pow(10, (elo2-(elo1+adjustment))/scale)
	return 1.0 / (exp + 1.0)
}

type ConstantMultiplier struct {
	Constant float64
}

func (m ConstantMultiplier) Multiplier(_ MatchOutcome, _ float64, _ float64,
	_ float64) float64 {

	return m.Constant
}

type Updater struct {
	calculator Calculator
	multiplier Multiplier
}

func NewUpdater(calculator Calculator, multiplier Multiplier) *Updater {
	return &Updater{
		calculator: calculator,
		multiplier: multiplier,
	}
}

func (u *Updater) WinProbability(elo1 float64, elo2 float64,
	adjustment float64) float64 {

	return u.calculator.WinProbability(elo1, elo2, adjustment)
}

// Update returns the post-match ratings. The adjustment only shifts the
// expected score; it is never added to the returned ratings, and whatever
// side 1 gains side 2 loses.
func (u *Updater) Update(outcome MatchOutcome, elo1 float64, elo2 float64,
	adjustment float64) (float64, float64, error) {

	actual, err := outcome.Score()
	if err != nil {
		return elo1, elo2, err
	}

	expected := u.calculator.WinProbability(elo1, elo2, adjustment)
	K := u.multiplier.Multiplier(outcome, elo1, elo2, adjustment)
	delta := K * (actual - expected)

	return elo1 + delta, elo2 - delta, nil
}
