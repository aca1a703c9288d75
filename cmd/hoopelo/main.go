/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/mikeb26/hoopelo/basketball"
	"github.com/mikeb26/hoopelo/elo"
	"github.com/mikeb26/hoopelo/internal"
	"golang.org/x/sync/errgroup"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":    handleHelp,
	"update":  handleUpdate,
	"predict": handlePredict,
	"series":  handleSeries,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// hcaFlags registers the home court override flags on fs. The returned
// function builds the rater once fs has been parsed.
func hcaFlags(fs *flag.FlagSet) func() *basketball.SimpleElo {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("hoopelo: failed to load config: %v", err)
	}
	reg := fs.Float64("reg-hca", cfg.RegularSeasonHCA,
		"Regular season home court advantage in rating points")
	post := fs.Float64("playoff-hca", cfg.PlayoffHCA,
		"Playoff home court advantage in rating points")

	return func() *basketball.SimpleElo {
		cfg.RegularSeasonHCA = *reg
		cfg.PlayoffHCA = *post
		return basketball.NewSimpleElo(cfg)
	}
}

func handleUpdate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	newRater := hcaFlags(fs)
	gameType := fs.String("type", "regular", "Game type (regular or playoff)")
	home := fs.Int("home", 1, "Home team (1 or 2)")
	winner := fs.Int("winner", 0, "Winning team (1 or 2)")
	elo1 := fs.Float64("elo1", math.NaN(), "Team 1 rating before the game")
	elo2 := fs.Float64("elo2", math.NaN(), "Team 2 rating before the game")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if math.IsNaN(*elo1) || math.IsNaN(*elo2) {
		fmt.Fprintln(os.Stderr, "Please provide both --elo1 and --elo2.")
		fs.Usage()
		os.Exit(1)
	}

	var outcome elo.MatchOutcome
	switch *winner {
	case 1:
		outcome = elo.Win1
	case 2:
		outcome = elo.Win2
	default:
		fmt.Fprintln(os.Stderr, "Please provide a valid --winner (1 or 2).")
		fs.Usage()
		os.Exit(1)
	}
	gt, err := basketball.ParseGameType(*gameType)
	if err != nil {
		log.Fatalf("hoopelo.update: %v", err)
	}

	new1, new2, err := newRater().Update(gt, *home, outcome, *elo1, *elo2)
	if err != nil {
		log.Fatalf("hoopelo.update: %v", err)
	}

	fmt.Printf("Team 1: %.1f -> %.1f (%+.1f)\n", *elo1, new1, new1-*elo1)
	fmt.Printf("Team 2: %.1f -> %.1f (%+.1f)\n", *elo2, new2, new2-*elo2)
}

func handlePredict(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	newRater := hcaFlags(fs)
	gameType := fs.String("type", "regular", "Game type (regular or playoff)")
	home := fs.Int("home", 1, "Home team (1 or 2)")
	elo1 := fs.Float64("elo1", math.NaN(), "Team 1 rating")
	elo2 := fs.Float64("elo2", math.NaN(), "Team 2 rating")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if math.IsNaN(*elo1) || math.IsNaN(*elo2) {
		fmt.Fprintln(os.Stderr, "Please provide both --elo1 and --elo2.")
		fs.Usage()
		os.Exit(1)
	}
	gt, err := basketball.ParseGameType(*gameType)
	if err != nil {
		log.Fatalf("hoopelo.predict: %v", err)
	}

	p, err := newRater().WinProbability(gt, *home, *elo1, *elo2)
	if err != nil {
		log.Fatalf("hoopelo.predict: %v", err)
	}

	fmt.Printf("Team 1 wins: %.1f%%\n", 100*p)
	fmt.Printf("Team 2 wins: %.1f%%\n", 100*(1-p))
}

type seriesSide struct {
	hcaWins  bool
	outcomes []string
	probs    []float64
}

func handleSeries(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("series", flag.ExitOnError)
	newRater := hcaFlags(fs)
	bestOf := fs.Int("bestof", 7, "Series length (5 or 7)")
	hcaElo := fs.Float64("hca-elo", math.NaN(),
		"Rating of the side with home court advantage")
	otherElo := fs.Float64("other-elo", math.NaN(),
		"Rating of the other side")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	withProbs := !math.IsNaN(*hcaElo) && !math.IsNaN(*otherElo)
	rater := newRater()

	sides := []*seriesSide{{hcaWins: true}, {hcaWins: false}}
	g, _ := errgroup.WithContext(ctx)
	for i := range sides {
		side := sides[i]
		g.Go(func() error {
			outcomes, err := basketball.PlayoffOutcomes(*bestOf, side.hcaWins)
			if err != nil {
				return err
			}
			side.outcomes = outcomes
			if !withProbs {
				return nil
			}
			side.probs = make([]float64, len(outcomes))
			for j, o := range outcomes {
				side.probs[j], err = rater.SeriesOutcomeProbability(*bestOf, o,
					*hcaElo, *otherElo)
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("hoopelo.series: %v", err)
	}

	for _, side := range sides {
		total := 0.0
		if side.hcaWins {
			fmt.Printf("Home court side wins (%v results):\n", len(side.outcomes))
		} else {
			fmt.Printf("Other side wins (%v results):\n", len(side.outcomes))
		}
		for j, o := range side.outcomes {
			if withProbs {
				fmt.Printf("  %-7s %5.2f%%\n", o, 100*side.probs[j])
				total += side.probs[j]
			} else {
				fmt.Printf("  %s\n", o)
			}
		}
		if withProbs {
			fmt.Printf("  total   %5.2f%%\n", 100*total)
		}
		fmt.Printf("\n")
	}
}
