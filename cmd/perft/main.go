// Command perft is a standalone move-generator correctness and speed
// benchmark: it runs internal/engine.Perft against an EPD suite of
// (FEN, expected node count) pairs and prints a pass/fail summary.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/profile"

	"github.com/algerbrex/gryphon/internal/chess"
	"github.com/algerbrex/gryphon/internal/engine"
)

func main() {
	suitePath := flag.String("suite", "testdata/perftsuite.epd", "path to an EPD perft suite")
	cpuProfile := flag.Bool("cpuprofile", false, "enable CPU profiling for this run")
	divide := flag.String("divide", "", "FEN to run a single divide-perft on instead of the suite")
	divideDepth := flag.Int("depth", 5, "depth for -divide")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *divide != "" {
		runDivide(*divide, *divideDepth)
		return
	}

	runSuite(*suitePath)
}

// perftCase is one line of an EPD perft suite: a FEN followed by
// semicolon-separated "D<depth> <count>" fields.
type perftCase struct {
	fen    string
	counts map[int]uint64
}

func loadSuite(path string) ([]perftCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cases []perftCase
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ";")
		tc := perftCase{fen: strings.TrimSpace(fields[0]), counts: make(map[int]uint64)}
		for _, field := range fields[1:] {
			field = strings.TrimSpace(field)
			if len(field) < 2 || field[0] != 'D' {
				continue
			}
			parts := strings.Fields(field[1:])
			if len(parts) != 2 {
				continue
			}
			depth, err := strconv.Atoi(parts[0])
			if err != nil {
				continue
			}
			count, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil {
				continue
			}
			tc.counts[depth] = count
		}
		cases = append(cases, tc)
	}
	return cases, scanner.Err()
}

func runSuite(path string) {
	cases, err := loadSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load perft suite %s: %v\n", path, err)
		os.Exit(1)
	}

	total, correct := 0, 0
	board := chess.NewBoard()
	for _, tc := range cases {
		fmt.Println("position:", tc.fen)
		for depth := 1; depth <= 6; depth++ {
			want, ok := tc.counts[depth]
			if !ok {
				continue
			}
			if err := board.SetFEN(tc.fen); err != nil {
				fmt.Fprintf(os.Stderr, "bad FEN %q: %v\n", tc.fen, err)
				continue
			}
			got := engine.Perft(board, depth)
			total++
			if got == want {
				correct++
				color.Green("  depth %d: %d (correct)", depth, got)
			} else {
				color.Red("  depth %d: want %d, got %d", depth, want, got)
			}
		}
	}

	fmt.Printf("\n%d/%d perft cases correct\n", correct, total)
	if correct != total {
		os.Exit(1)
	}
}

func runDivide(fen string, depth int) {
	board := chess.NewBoard()
	if err := board.SetFEN(fen); err != nil {
		fmt.Fprintf(os.Stderr, "bad FEN %q: %v\n", fen, err)
		os.Exit(1)
	}
	var total uint64
	for move, nodes := range engine.DividePerft(board, depth) {
		fmt.Printf("%s: %d\n", move, nodes)
		total += nodes
	}
	fmt.Printf("total: %d\n", total)
}
