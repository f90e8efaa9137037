package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cdean-eng/knightfall/internal/piece"
	"github.com/cdean-eng/knightfall/internal/square"
	"github.com/cdean-eng/knightfall/internal/zobrist"
)

// StartFEN is Forsyth-Edwards notation for the initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// LoadFEN parses Forsyth-Edwards notation into a newly allocated Position.
// On a parse failure it returns a nil Position and a non-nil error,
// matching the teacher's LoadFEN (core/board.go) error boundary.
func LoadFEN(fen string) (*Position, error) {
	p := New()
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}

	p.Reset()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: malformed FEN %q: board has %d ranks, want 8", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file > 7 {
				return nil, fmt.Errorf("position: malformed FEN %q: rank %d overflows", fen, rank)
			}
			pc, ok := piece.FromLetter(byte(ch))
			if !ok {
				return nil, fmt.Errorf("position: malformed FEN %q: bad piece letter %q", fen, ch)
			}
			sq64 := square.FromFileRank(file, rank)
			p.putPiece(pc, sq64.To120())
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("position: malformed FEN %q: rank %d has %d files, want 8", fen, rank, file)
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = piece.White
	case "b":
		p.sideToMove = piece.Black
	default:
		return nil, fmt.Errorf("position: malformed FEN %q: bad side-to-move field %q", fen, fields[1])
	}
	if p.sideToMove == piece.Black {
		p.zobristKey ^= zobrist.SideToMove
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights |= WhiteKingside
			case 'Q':
				p.castlingRights |= WhiteQueenside
			case 'k':
				p.castlingRights |= BlackKingside
			case 'q':
				p.castlingRights |= BlackQueenside
			default:
				return nil, fmt.Errorf("position: malformed FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}
	p.zobristKey ^= zobrist.Castling[p.castlingRights]

	if fields[3] != "-" {
		epSq, err := square.FromCoordinate(fields[3])
		if err != nil {
			return nil, fmt.Errorf("position: malformed FEN %q: bad en-passant field: %w", fen, err)
		}
		// A pawn that just advanced two squares leaves its capturing square
		// on rank 6 (if Black just moved, so White is now to move) or rank 3
		// (if White just moved, so Black is now to move).
		wantRank := 2
		if p.sideToMove == piece.White {
			wantRank = 5
		}
		if epSq.Rank() != wantRank {
			return nil, fmt.Errorf("position: malformed FEN %q: en-passant square %q is not on the expected rank", fen, fields[3])
		}
		p.epSquare = epSq.To120()
		p.zobristKey ^= zobrist.EPFile[epSq.File()]
	}

	p.halfMoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("position: malformed FEN %q: bad halfmove clock %q", fen, fields[4])
		}
		p.halfMoveClock = n
	}

	p.fullMoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("position: malformed FEN %q: bad fullmove number %q", fen, fields[5])
		}
		p.fullMoveNumber = n
	}

	return p, nil
}

// FEN renders p in Forsyth-Edwards notation. LoadFEN(p.FEN()) reconstructs
// an equal position for any p, the round-trip law of spec.md section 6.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq120 := square.FromFileRank(file, rank).To120()
			pc := p.board[sq120]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == piece.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.castlingRights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castlingRights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castlingRights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castlingRights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.epSquare == square.NoSquare120 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.halfMoveClock, p.fullMoveNumber)

	return sb.String()
}
