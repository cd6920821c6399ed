// Command perft counts the leaf nodes of a position's move tree to a fixed
// depth, the standard way to catch move-generation bugs: a wrong count at
// a known depth points straight at a missing or phantom move. It can split
// that count by root move (-divide), repeat the run for steadier timing
// (-repeat), capture CPU/heap profiles, and cross-check its own count
// against the dragontoothmg oracle (-verify).
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	brd "bitknight/board"
)

type config struct {
	fen     string
	depth   int
	divide  bool
	repeat  int
	label   string
	verify  bool
	cpuProf string
	memProf string
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.fen, "fen", brd.StartFEN, "FEN string (defaults to the initial position)")
	flag.IntVar(&c.depth, "depth", 0, "perft depth (required, must be > 0)")
	flag.BoolVar(&c.divide, "divide", false, "print per-root-move node counts instead of a single total")
	flag.IntVar(&c.repeat, "repeat", 1, "run the count this many times and report the aggregate")
	flag.StringVar(&c.label, "label", "", "prefix for the one-line summary, useful when scripting several runs")
	flag.BoolVar(&c.verify, "verify", false, "cross-check the count against the dragontoothmg oracle")
	flag.StringVar(&c.cpuProf, "cpuprofile", "", "write a CPU profile to this file while counting")
	flag.StringVar(&c.memProf, "memprofile", "", "write a heap profile to this file after counting")
	flag.Parse()
	return c
}

func main() {
	c := parseFlags()
	if c.depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := brd.ParseFEN(c.fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad FEN: %v\n", err)
		os.Exit(2)
	}

	if c.divide {
		printDivide(pos, c.depth)
		return
	}

	stopCPUProf := maybeStartCPUProfile(c.cpuProf)
	defer stopCPUProf()

	start := time.Now()
	var total uint64
	for i := 0; i < c.repeat; i++ {
		total += pos.Perft(c.depth)
	}
	elapsed := time.Since(start)
	countPerRun := total / uint64(c.repeat)
	nps := float64(total) / elapsed.Seconds()

	if c.label != "" {
		fmt.Printf("%s: ", c.label)
	}
	fmt.Printf("depth=%d nodes=%d elapsed=%s nps=%.0f\n", c.depth, countPerRun, elapsed, nps)

	if c.verify {
		runVerify(c.fen, c.depth, countPerRun)
	}

	maybeWriteHeapProfile(c.memProf)
}

func printDivide(pos *brd.Position, depth int) {
	byMove := pos.PerftDivide(depth)
	type entry struct {
		move  string
		count uint64
	}
	entries := make([]entry, 0, len(byMove))
	var total uint64
	for move, count := range byMove {
		entries = append(entries, entry{move, count})
		total += count
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].move < entries[j].move })
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.move, e.count)
	}
	fmt.Printf("total: %d\n", total)
}

// runVerify recomputes the count independently via dragontoothmg and exits
// nonzero on disagreement, since a perft bug that agrees with itself twice
// over is no bug worth trusting.
func runVerify(fen string, depth int, got uint64) {
	board := dragontoothmg.ParseFen(fen)
	want := oraclePerft(&board, depth)
	if want != got {
		fmt.Fprintf(os.Stderr, "verify: mismatch against dragontoothmg oracle: got %d, oracle %d\n", got, want)
		os.Exit(1)
	}
	fmt.Printf("verify: matches dragontoothmg oracle (%d)\n", want)
}

func oraclePerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range board.GenerateLegalMoves() {
		undo := board.Apply(m)
		nodes += oraclePerft(board, depth-1)
		undo()
	}
	return nodes
}

func maybeStartCPUProfile(path string) func() {
	if path == "" {
		return func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
		os.Exit(2)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		fmt.Fprintf(os.Stderr, "starting cpu profile: %v\n", err)
		os.Exit(2)
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}

func maybeWriteHeapProfile(path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
		os.Exit(2)
	}
	if err := pprof.WriteHeapProfile(f); err != nil {
		fmt.Fprintf(os.Stderr, "writing heap profile: %v\n", err)
		os.Exit(2)
	}
	_ = f.Close()
}
