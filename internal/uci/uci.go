// Package uci implements the engine's Universal Chess Interface
// command loop: reading commands from stdin and writing replies to
// stdout, with diagnostics routed to stderr instead.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/algerbrex/gryphon/internal/chess"
	"github.com/algerbrex/gryphon/internal/config"
	"github.com/algerbrex/gryphon/internal/engine"
)

const (
	EngineName   = "Gryphon"
	EngineAuthor = "Gryphon contributors"
)

// Engine owns the UCI session's state: the board, searcher, and
// current configuration. A fresh Engine is created once per process;
// "ucinewgame" resets its search state without discarding it.
type Engine struct {
	out    io.Writer
	log    *zap.Logger
	opts   config.Options
	board  *chess.Board
	search *engine.Searcher
}

// New builds an Engine that writes UCI replies to out and diagnostics
// to log.
func New(out io.Writer, log *zap.Logger, opts config.Options) *Engine {
	board := chess.NewBoard()
	return &Engine{
		out:    out,
		log:    log,
		opts:   opts,
		board:  board,
		search: engine.NewSearcher(board, opts.HashMiB),
	}
}

func (e *Engine) reply(format string, args ...any) {
	fmt.Fprintf(e.out, format+"\n", args...)
}

// Run reads UCI commands from in until "quit" or in is exhausted.
func (e *Engine) Run(in io.Reader) {
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "quit" {
			return
		}
		if line != "" {
			e.dispatch(line)
		}
		if err != nil {
			return
		}
	}
}

func (e *Engine) dispatch(line string) {
	switch {
	case line == "uci":
		e.reply("id name %s", EngineName)
		e.reply("id author %s", EngineAuthor)
		e.reply("uciok")
	case line == "isready":
		e.reply("readyok")
	case line == "ucinewgame":
		e.board = chess.NewBoard()
		e.search = engine.NewSearcher(e.board, e.opts.HashMiB)
	case strings.HasPrefix(line, "setoption"):
		e.handleSetOption(line)
	case strings.HasPrefix(line, "position"):
		e.handlePosition(line)
	case strings.HasPrefix(line, "go"):
		e.handleGo(line)
	case line == "stop":
		e.search.Stop.Store(true)
	case line == "quit":
		// nothing to flush: the transposition table and board live only
		// in process memory.
	case line == "print" || line == "d":
		e.reply("%s", e.board.FEN())
	default:
		e.log.Warn("unrecognized UCI command", zap.String("line", line))
	}
}

func (e *Engine) handleSetOption(line string) {
	fields := strings.Fields(line)
	var name, value string
	for i, f := range fields {
		if f == "name" && i+1 < len(fields) {
			name = fields[i+1]
		}
		if f == "value" && i+1 < len(fields) {
			value = fields[i+1]
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		e.log.Warn("setoption value is not a number", zap.String("name", name), zap.String("value", value))
		return
	}
	switch strings.ToLower(name) {
	case "hash":
		e.opts.HashMiB = n
		e.search = engine.NewSearcher(e.board, n)
	case "depth":
		e.opts.DefaultDepth = n
	default:
		e.log.Warn("unrecognized setoption name", zap.String("name", name))
	}
}

func (e *Engine) handlePosition(line string) {
	args := strings.TrimPrefix(line, "position ")
	var fen string
	var rest string

	switch {
	case strings.HasPrefix(args, "startpos"):
		fen = chess.FENStartPosition
		rest = strings.TrimPrefix(args, "startpos")
	case strings.HasPrefix(args, "fen"):
		args = strings.TrimPrefix(args, "fen ")
		fields := strings.Fields(args)
		if len(fields) < 6 {
			e.log.Warn("position fen has too few fields", zap.String("line", line))
			return
		}
		fen = strings.Join(fields[:6], " ")
		rest = strings.Join(fields[6:], " ")
	default:
		e.log.Warn("malformed position command", zap.String("line", line))
		return
	}

	if err := e.board.SetFEN(fen); err != nil {
		e.log.Warn("failed to load position", zap.Error(err))
		return
	}

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "moves") {
		for _, moveStr := range strings.Fields(strings.TrimPrefix(rest, "moves")) {
			m, err := chess.ParseUCIMove(e.board, moveStr)
			if err != nil {
				e.log.Warn("failed to parse move", zap.String("move", moveStr), zap.Error(err))
				return
			}
			e.board.MakeMove(m, false)
		}
	}
}

func (e *Engine) handleGo(line string) {
	budget := time.Duration(e.opts.MoveTimeMS) * time.Millisecond
	if ms := parseMoveTime(line, e.board.SideToMove); ms > 0 {
		budget = time.Duration(ms) * time.Millisecond
	}
	deadline := time.Now().Add(budget)

	e.search.Stop.Store(false)
	best := e.search.Search(e.opts.DefaultDepth, deadline, func(info engine.Info) {
		if info.Mate != 0 {
			e.reply("info depth %d score mate %d nodes %d time %d", info.Depth, info.Mate, info.Nodes, info.Time.Milliseconds())
		} else {
			e.reply("info depth %d score cp %d nodes %d time %d", info.Depth, info.Score, info.Nodes, info.Time.Milliseconds())
		}
	})
	if best.IsNull() {
		e.log.Warn("search returned no move", zap.String("fen", e.board.FEN()))
		return
	}
	e.reply("bestmove %s", best.String())
}

// parseMoveTime reads "wtime"/"btime" for the side to move out of a
// "go" command, per UCI's time-control fields; a "movetime" field
// overrides both. Returns 0 if neither is present.
func parseMoveTime(line string, side chess.Color) int {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == "movetime" && i+1 < len(fields) {
			if ms, err := strconv.Atoi(fields[i+1]); err == nil {
				return ms
			}
		}
	}
	key := "wtime"
	if side == chess.Black {
		key = "btime"
	}
	for i, f := range fields {
		if f == key && i+1 < len(fields) {
			if ms, err := strconv.Atoi(fields[i+1]); err == nil {
				return ms / 20
			}
		}
	}
	return 0
}
