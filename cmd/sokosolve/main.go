// sokosolve is a command-line Sokoban push-space solver and LURD-to-puzzle
// reconstructor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/sokoworks/sokosolve/pkg/board/leveltext"
	"github.com/sokoworks/sokosolve/pkg/cli"
	"github.com/sokoworks/sokosolve/pkg/reconstruct"
	"github.com/sokoworks/sokosolve/pkg/solve"
)

var version = build.NewVersion(0, 1, 0)

var (
	in         = flag.String("in", "-", "Level (or LURD, with -reconstruct) file; '-' for stdin")
	solverName = flag.String("solver", solve.SolverBType, fmt.Sprintf("Solver: %v or %v", solve.SolverMovesEqualsPushes, solve.SolverBType))
	workers    = flag.Int("workers", 0, "b-type worker count (0: GOMAXPROCS)")
	memFloor   = flag.Uint64("mem-floor-bytes", 0, "Free-memory cancellation floor (0: solver default)")
	doRebuild  = flag.Bool("reconstruct", false, "Read a LURD string from -in and print the reconstructed level")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: sokosolve [options]

sokosolve solves Sokoban levels by pushes and can reconstruct a level from a
LURD move string.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "sokosolve %v", version)

	text, err := cli.ReadFileOrStdin(ctx, *in)
	if err != nil {
		logw.Exitf(ctx, "Read %v failed: %v", *in, err)
	}

	if *doRebuild {
		out, err := reconstruct.Reconstruct(text)
		if err != nil {
			logw.Exitf(ctx, "Reconstruct failed: %v", err)
		}
		cli.WriteStdout(ctx, out)
		return
	}

	b, err := leveltext.Decode(text)
	if err != nil {
		logw.Exitf(ctx, "Decode level failed: %v", err)
	}

	opts := []solve.Option{
		solve.WithWorkers(*workers),
	}
	if *memFloor > 0 {
		opts = append(opts, solve.WithMemoryFloorBytes(*memFloor))
	}

	var sol *solve.Solution
	switch *solverName {
	case solve.SolverMovesEqualsPushes:
		sol, err = solve.SolveMovesEqualsPushes(ctx, b, opts...)
	case solve.SolverBType:
		sol, err = solve.SolveBType(ctx, b, opts...)
	default:
		flag.Usage()
		logw.Exitf(ctx, "Unknown solver: %v", *solverName)
	}
	if err != nil {
		logw.Exitf(ctx, "Solve failed: %v", err)
	}

	logw.Infof(ctx, "solved with %v", sol.Name)
	cli.WriteStdout(ctx, sol.LURD)
}
