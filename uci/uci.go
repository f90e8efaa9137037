// Package uci implements a Universal Chess Interface front end over the
// engine package, per spec.md's UCI-compatible goal.
//
// Grounded on the teacher's interface/uci.go RunUCIProtocol
// (algerbrex/blunder): the same command set (uci, isready, setoption,
// ucinewgame, position, go, stop, quit) and the same "go" runs in its own
// goroutine so "stop" can interrupt it" structure, replacing the teacher's
// package-level core.Searcher and bool StopSearch flag with an
// *engine.Engine and a context.CancelFunc, and opening-book lookup
// (core's PolyglotEntry/LoadPolyglotFile) with the book package.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cdean-eng/knightfall/engine"
	"github.com/cdean-eng/knightfall/internal/position"
	"github.com/cdean-eng/knightfall/internal/search"
	"github.com/cdean-eng/knightfall/uci/book"
	"github.com/seekerror/logw"
)

// Server runs the UCI command loop over an *engine.Engine.
type Server struct {
	eng  *engine.Engine
	in   *bufio.Scanner
	out  io.Writer
	book *book.Book

	mu       sync.Mutex
	cancelGo context.CancelFunc
	goWG     sync.WaitGroup
}

// NewServer returns a Server reading commands from in and writing
// responses to out.
func NewServer(eng *engine.Engine, in io.Reader, out io.Writer) *Server {
	return &Server{
		eng: eng,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// WithBook attaches a Polyglot opening book; Run consults it before every
// "go" command.
func (s *Server) WithBook(b *book.Book) *Server {
	s.book = b
	return s
}

// Run reads commands until "quit" or the input is exhausted.
func (s *Server) Run(ctx context.Context) {
	s.in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if s.dispatch(ctx, line) {
			return
		}
	}
}

// dispatch handles a single command line, returning true if the server
// should stop reading further input (the "quit" command).
func (s *Server) dispatch(ctx context.Context, line string) (quit bool) {
	switch {
	case line == "uci":
		s.handleUCI()
	case line == "isready":
		fmt.Fprintln(s.out, "readyok")
	case strings.HasPrefix(line, "setoption"):
		// Accepted and ignored: engine options are fixed when the engine is
		// built, and neither ucinewgame nor position applies a setoption.
	case line == "ucinewgame":
		_ = s.eng.Reset(ctx, position.StartFEN)
	case strings.HasPrefix(line, "position"):
		s.handlePosition(ctx, line)
	case strings.HasPrefix(line, "go"):
		s.handleGo(ctx, line)
	case line == "stop":
		s.handleStop()
	case line == "quit":
		s.handleStop()
		return true
	default:
		logw.Infof(ctx, "uci: ignoring unrecognized command %q", line)
	}
	return false
}

func (s *Server) handleUCI() {
	fmt.Fprintf(s.out, "id name %v\n", s.eng.Name())
	fmt.Fprintf(s.out, "id author %v\n", s.eng.Author())
	fmt.Fprintln(s.out, "uciok")
}

func (s *Server) handlePosition(ctx context.Context, line string) {
	args := strings.TrimPrefix(line, "position ")

	var fenStr string
	var rest string
	switch {
	case strings.HasPrefix(args, "startpos"):
		fenStr = position.StartFEN
		rest = strings.TrimPrefix(args, "startpos")
	case strings.HasPrefix(args, "fen"):
		fields := strings.Fields(strings.TrimPrefix(args, "fen "))
		if len(fields) < 6 {
			logw.Infof(ctx, "uci: malformed position fen command %q", line)
			return
		}
		fenStr = strings.Join(fields[:6], " ")
		rest = strings.Join(fields[6:], " ")
	default:
		logw.Infof(ctx, "uci: malformed position command %q", line)
		return
	}

	if err := s.eng.Reset(ctx, fenStr); err != nil {
		logw.Infof(ctx, "uci: %v", err)
		return
	}

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "moves") {
		for _, mv := range strings.Fields(strings.TrimPrefix(rest, "moves")) {
			if err := s.eng.Push(ctx, mv); err != nil {
				logw.Infof(ctx, "uci: %v", err)
				return
			}
		}
	}
}

func (s *Server) handleGo(ctx context.Context, line string) {
	s.handleStop() // a new "go" implicitly stops any search still running

	limits := parseGoLimits(line, s.eng.WhiteToMove())

	goCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancelGo = cancel
	s.mu.Unlock()

	s.goWG.Add(1)
	go func() {
		defer s.goWG.Done()
		defer cancel()

		if s.book != nil {
			if bookMove, ok := s.book.Lookup(s.eng.FEN()); ok {
				fmt.Fprintf(s.out, "bestmove %v\n", bookMove)
				return
			}
		}

		result := s.eng.Search(goCtx, limits)
		fmt.Fprintf(s.out, "bestmove %v\n", result.BestMove)
	}()
}

func (s *Server) handleStop() {
	s.mu.Lock()
	cancel := s.cancelGo
	s.cancelGo = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.goWG.Wait()
}

// parseGoLimits translates a UCI "go" command's fields into search.Limits,
// grounded on the teacher's getTimeLeftInGame (interface/uci.go), extended
// to also honor depth, nodes, and movetime directly rather than only
// wtime/btime.
func parseGoLimits(line string, whiteToMove bool) search.Limits {
	fields := strings.Fields(strings.TrimPrefix(line, "go"))
	var limits search.Limits

	var wtime, btime, winc, binc, movetime int64
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				if n, err := strconv.Atoi(fields[i+1]); err == nil {
					limits.MaxDepth = n
				}
			}
		case "nodes":
			if i+1 < len(fields) {
				if n, err := strconv.ParseUint(fields[i+1], 10, 64); err == nil {
					limits.MaxNodes = n
				}
			}
		case "movetime":
			if i+1 < len(fields) {
				if n, err := strconv.ParseInt(fields[i+1], 10, 64); err == nil {
					movetime = n
				}
			}
		case "wtime":
			if i+1 < len(fields) {
				wtime, _ = strconv.ParseInt(fields[i+1], 10, 64)
			}
		case "btime":
			if i+1 < len(fields) {
				btime, _ = strconv.ParseInt(fields[i+1], 10, 64)
			}
		case "winc":
			if i+1 < len(fields) {
				winc, _ = strconv.ParseInt(fields[i+1], 10, 64)
			}
		case "binc":
			if i+1 < len(fields) {
				binc, _ = strconv.ParseInt(fields[i+1], 10, 64)
			}
		}
	}

	if movetime > 0 {
		limits.MoveTime = time.Duration(movetime) * time.Millisecond
		return limits
	}
	if wtime > 0 || btime > 0 {
		// A simple fixed-fraction time allocation: spend roughly 1/30th of
		// the side-to-move's remaining clock (plus half its increment) per move,
		// the same order of magnitude as the teacher's
		// TimeThreshHoldForBulletPlay cutoff.
		remaining, inc := wtime, winc
		if !whiteToMove {
			remaining, inc = btime, binc
		}
		budget := remaining/30 + inc/2
		if budget > 0 {
			limits.MoveTime = time.Duration(budget) * time.Millisecond
		}
	}
	return limits
}
