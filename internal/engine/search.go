package engine

import (
	"cmp"
	"slices"
	"sync/atomic"
	"time"

	"github.com/algerbrex/gryphon/internal/chess"
)

// MaxPly bounds both the iterative-deepening root loop and the
// mate-distance scoring scale; it exists so mateScore-ply can never
// collide with a real evaluation.
const MaxPly = 64

// QuiescenceMaxPly bounds the capture-only search that extends every
// leaf of the main search, per spec.md's qdepth bound.
const QuiescenceMaxPly = 8

// deltaMargin is quiescence's delta-pruning cutoff: when the stand-pat
// score is more than this far short of the window, the node returns
// at once without trying any of its captures.
const deltaMargin = queenValue + 200

// Info is reported once per completed iterative-deepening depth, the
// data a UCI "info" line needs.
type Info struct {
	Depth    int
	Score    int
	Mate     int // full moves to mate, signed, 0 if not a mate score
	Nodes    uint64
	Time     time.Duration
	BestMove chess.Move
}

// Searcher holds everything a search needs across iterative-deepening
// iterations: the position, the transposition table, and move
// ordering heuristics (killer moves, history) that persist between
// depths within one search call.
type Searcher struct {
	Board *chess.Board
	TT    *Table

	killers [MaxPly][2]chess.Move
	history [64][64]int

	Nodes uint64

	// Stop is polled between iterative-deepening iterations and at
	// regular intervals inside the tree, and the search sets it itself
	// once the deadline has passed. It is atomic so another goroutine
	// may set it; internal/uci runs each search synchronously on its
	// read loop, so it reads a "stop" line only after Search returns.
	Stop atomic.Bool
}

// NewSearcher builds a Searcher over b, allocating its own
// transposition table sized to ttMiB mebibytes.
func NewSearcher(b *chess.Board, ttMiB int) *Searcher {
	return &Searcher{Board: b, TT: NewTable(ttMiB)}
}

// Search runs iterative deepening up to maxDepth or until deadline
// elapses or Stop is set, calling report after each completed depth,
// and returns the best move found at the deepest completed
// iteration (or, if even depth 1 was cut short, the best move that
// partial iteration reached).
func (s *Searcher) Search(maxDepth int, deadline time.Time, report func(Info)) chess.Move {
	best := chess.NullMove
	if maxDepth > MaxPly {
		maxDepth = MaxPly
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if s.Stop.Load() || time.Now().After(deadline) {
			break
		}
		start := time.Now()
		s.Nodes = 0
		move, score := s.searchRoot(depth, deadline)
		if s.Stop.Load() && !best.IsNull() {
			break
		}
		if move.IsNull() && !best.IsNull() {
			break
		}
		best = move

		info := Info{Depth: depth, Score: score, Nodes: s.Nodes, Time: time.Since(start), BestMove: best}
		if mateIn, ok := mateDistance(score); ok {
			info.Mate = mateIn
		}
		if report != nil {
			report(info)
		}

		if score > mateScore-MaxPly || score < -mateScore+MaxPly {
			break
		}
	}
	return best
}

// mateDistance converts a mate-flavored score into a signed number of
// full moves to mate, ply-based per spec.md's resolved Open Question
// (not depth-based, so the reported distance doesn't shrink simply
// because a shallower iteration re-finds the same mate).
func mateDistance(score int) (int, bool) {
	if score > mateScore-MaxPly {
		return (mateScore - score + 1) / 2, true
	}
	if score < -mateScore+MaxPly {
		return -((mateScore + score + 1) / 2), true
	}
	return 0, false
}

// searchRoot plays every legal move at the root and keeps the one
// that maximizes the score for White or minimizes it for Black, per
// spec.md §4.6's root driver — scores throughout are signed from
// White's perspective, never side-relative, so the root's own
// maximize/minimize branch has to match whichever side is actually on
// move instead of negating a child call.
func (s *Searcher) searchRoot(depth int, deadline time.Time) (chess.Move, int) {
	moves := chess.LegalMoves(s.Board)
	if len(moves) == 0 {
		return chess.NullMove, 0
	}
	s.orderMoves(moves, 0)

	side := s.Board.SideToMove
	alpha, beta := -infScore, infScore
	best := moves[0]
	bestScore := -infScore
	if side == chess.Black {
		bestScore = infScore
	}

	for _, m := range moves {
		undo := s.Board.MakeMove(m, false)
		score := s.alphaBeta(depth-1, 1, alpha, beta, deadline)
		s.Board.UndoMove(undo)

		if s.Stop.Load() {
			return best, bestScore
		}

		if side == chess.White {
			if score > bestScore {
				bestScore, best = score, m
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < bestScore {
				bestScore, best = score, m
			}
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestScore
}

// alphaBeta is spec.md §4.6's fail-soft alpha-beta: an explicit
// White-maximizes/Black-minimizes search over White-signed scores,
// not a negamax reformulation — a node's value means the same thing
// to every caller regardless of whose turn it is, which is what lets
// a mate score or a TT entry be read directly without re-signing it
// per ply.
func (s *Searcher) alphaBeta(depth, ply, alpha, beta int, deadline time.Time) int {
	s.Nodes++
	if s.Nodes&1023 == 0 && (s.Stop.Load() || time.Now().After(deadline)) {
		s.Stop.Store(true)
	}
	if s.Stop.Load() {
		return 0
	}

	if depth <= 0 {
		return s.quiescence(0, alpha, beta, deadline)
	}

	origAlpha, origBeta := alpha, beta

	hash := s.Board.Hash
	entry, found := s.TT.Probe(hash)
	if found && entry.Depth >= depth {
		switch entry.Flag {
		case ExactBound:
			return entry.Value
		case LowerBound:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case UpperBound:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value
		}
	}

	side := s.Board.SideToMove
	moves := chess.LegalMoves(s.Board)
	if len(moves) == 0 {
		if s.Board.InCheck(side) {
			if side == chess.Black {
				return mateScore - ply
			}
			return -mateScore + ply
		}
		return 0
	}
	s.orderMoves(moves, ply)
	if found {
		// The stored best move, whatever depth it came from, is tried
		// first when it is legal here.
		if i := slices.Index(moves, entry.BestMove); i > 0 {
			copy(moves[1:i+1], moves[:i])
			moves[0] = entry.BestMove
		}
	}

	var best int
	var bestMove chess.Move
	if side == chess.White {
		best = -infScore
	} else {
		best = infScore
	}

	for _, m := range moves {
		undo := s.Board.MakeMove(m, false)
		score := s.alphaBeta(depth-1, ply+1, alpha, beta, deadline)
		s.Board.UndoMove(undo)

		if side == chess.White {
			if score > best {
				best, bestMove = score, m
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best, bestMove = score, m
			}
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			if !s.Board.IsCapture(m) {
				s.recordKiller(ply, m)
				s.history[m.From][m.To] += depth * depth
			}
			break
		}
	}

	flag := ExactBound
	if best <= origAlpha {
		flag = UpperBound
	} else if best >= origBeta {
		flag = LowerBound
	}
	s.TT.Store(hash, depth, best, flag, bestMove)

	return best
}

// quiescence extends search along capture sequences past the nominal
// horizon, so the static evaluation is never trusted in a position
// where material is about to change. Stand-pat lets a side that has
// no good capture simply take the static score; delta pruning skips
// the whole capture sweep when even winning a queen outright couldn't
// reach the window. Mirrors alphaBeta in being an explicit
// White-maximizes/Black-minimizes search over White-signed scores,
// per spec.md §4.6.
func (s *Searcher) quiescence(qply int, alpha, beta int, deadline time.Time) int {
	s.Nodes++
	standPat := Evaluate(s.Board)
	if qply >= QuiescenceMaxPly {
		return standPat
	}

	side := s.Board.SideToMove
	if side == chess.White {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
		if standPat+deltaMargin < alpha {
			return alpha
		}
	} else {
		if standPat <= alpha {
			return alpha
		}
		if standPat < beta {
			beta = standPat
		}
		if standPat-deltaMargin > beta {
			return beta
		}
	}

	captures := chess.GenerateCaptures(s.Board)
	s.orderCaptures(captures)

	for _, m := range captures {
		undo := s.Board.MakeMove(m, false)
		if s.Board.InCheck(side) {
			s.Board.UndoMove(undo)
			continue
		}
		score := s.quiescence(qply+1, alpha, beta, deadline)
		s.Board.UndoMove(undo)

		if side == chess.White {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			break
		}
	}

	if side == chess.White {
		return alpha
	}
	return beta
}

func captureGain(b *chess.Board, m chess.Move) int {
	if m.Type == chess.EnPassant {
		return pawnValue
	}
	if m.Type == chess.Promotion {
		return pieceValue(m.Promotion) - pawnValue
	}
	return pieceValue(b.PieceAt(m.To).Kind)
}

func (s *Searcher) recordKiller(ply int, m chess.Move) {
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// scoredMove pairs a move with its ordering score so sorting never
// needs to re-derive or re-locate the score mid-sort.
type scoredMove struct {
	move  chess.Move
	score int
}

// orderMoves scores every move for MVV/LVA (most valuable victim,
// least valuable attacker) on captures, falls back to killer-move and
// history bonuses on quiet moves, and sorts descending so the search
// tries its best guess first.
func (s *Searcher) orderMoves(moves []chess.Move, ply int) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{m, s.moveScore(m, ply)}
	}
	slices.SortFunc(scored, func(a, b scoredMove) int {
		return cmp.Compare(b.score, a.score)
	})
	for i, sm := range scored {
		moves[i] = sm.move
	}
}

const captureBonus = 1_000_000

func (s *Searcher) moveScore(m chess.Move, ply int) int {
	b := s.Board
	if b.IsCapture(m) || m.Type == chess.Promotion {
		return captureGain(b, m)*16 - pieceValue(b.PieceAt(m.From).Kind) + captureBonus
	}
	if m == s.killers[ply][0] {
		return captureBonus - 100
	}
	if m == s.killers[ply][1] {
		return captureBonus - 200
	}
	return s.history[m.From][m.To]
}

func (s *Searcher) orderCaptures(moves []chess.Move) {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{m, captureGain(s.Board, m)*16 - pieceValue(s.Board.PieceAt(m.From).Kind)}
	}
	slices.SortFunc(scored, func(a, b scoredMove) int {
		return cmp.Compare(b.score, a.score)
	})
	for i, sm := range scored {
		moves[i] = sm.move
	}
}
