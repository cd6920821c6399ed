// Command selfplay drives a single headless self-play game through the
// engine package, using the material package's reference evaluator for
// both sides, and reports the final outcome.
package main

import (
	"flag"
	"fmt"
	"os"

	brd "bitknight/board"
	eng "bitknight/engine"
	mtl "bitknight/material"
)

func main() {
	fen := flag.String("fen", brd.StartFEN, "starting FEN")
	depth := flag.Int("depth", 4, "fixed search depth per move")
	maxMoves := flag.Int("maxmoves", 200, "maximum full moves before giving up")
	flag.Parse()

	eng.Init()

	outcome, err := eng.RunHeadlessGame(mtl.Eval, mtl.Eval, *depth, *fen, *maxMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "RunHeadlessGame: %v\n", err)
		os.Exit(2)
	}

	switch outcome {
	case eng.WhiteWin:
		fmt.Println("result: 1-0")
	case eng.BlackWin:
		fmt.Println("result: 0-1")
	case eng.Draw:
		fmt.Println("result: 1/2-1/2")
	case eng.Exceeded:
		fmt.Println("result: *  (move limit exceeded)")
	}
}
