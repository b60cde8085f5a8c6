// Package fen converts FEN position notation into a renderable board grid.
package fen

import (
	"github.com/lgbarn/lichess-tv-go/internal/errors"
)

// InitialPosition is the placement field for the standard starting position.
const InitialPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Board is a row-major 8x8 grid of FEN piece letters, with ' ' for empty
// squares. Row 0 is rank 8, so Board[row*8+col] reads the position the
// way it is drawn.
type Board [64]byte

// isPiece reports whether c is a FEN piece letter of either color.
func isPiece(c byte) bool {
	switch c {
	case 'K', 'Q', 'R', 'N', 'B', 'P', 'k', 'q', 'r', 'n', 'b', 'p':
		return true
	}
	return false
}

// ToBoard parses the placement field of a FEN string into a Board. Only
// the placement field is read; parsing stops at the first space, so a
// full FEN with side-to-move and castling fields is accepted as-is.
func ToBoard(fen []byte) (Board, error) {
	var b Board
	for i := range b {
		b[i] = ' '
	}

	row, col := 0, 0
	for _, c := range fen {
		switch {
		case c == ' ':
			return b, nil

		case c == '/':
			row++
			col = 0
			if row > 7 {
				return Board{}, errors.Wrap(errors.ErrInvalidFEN, "more than 8 ranks")
			}

		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > 8 {
				return Board{}, errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", 8-row)
			}

		default:
			if !isPiece(c) {
				return Board{}, errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			if col > 7 {
				return Board{}, errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", 8-row)
			}
			b[row*8+col] = c
			col++
		}
	}
	return b, nil
}
