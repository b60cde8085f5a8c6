package render

import (
	"strings"
	"testing"

	"github.com/lgbarn/lichess-tv-go/internal/fen"
	"github.com/lgbarn/lichess-tv-go/internal/testutil"
)

// plainBoard renders the initial position without styling.
func plainBoard(t *testing.T) string {
	t.Helper()
	b, err := fen.ToBoard([]byte(fen.InitialPosition))
	testutil.AssertNoError(t, err)
	return New(true).Board(b)
}

func TestBoardLayout(t *testing.T) {
	out := plainBoard(t)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// 8 ranks plus the file letter row.
	testutil.AssertEqual(t, len(lines), 9)

	testutil.AssertEqual(t, lines[0], "8 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜ ")
	testutil.AssertEqual(t, lines[1], "7 ♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟ ")
	testutil.AssertEqual(t, lines[4], "4 "+strings.Repeat("  ", 8))
	testutil.AssertEqual(t, lines[7], "1 ♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜ ")
	testutil.AssertEqual(t, lines[8], "  a b c d e f g h ")
}

func TestBoardSingleKing(t *testing.T) {
	b, err := fen.ToBoard([]byte("8/8/8/4k3/8/8/8/8"))
	testutil.AssertNoError(t, err)

	out := New(true).Board(b)
	testutil.AssertContains(t, out, "♚")
	testutil.AssertEqual(t, strings.Count(out, "♚"), 1)
}

func TestPieceGlyphs(t *testing.T) {
	// Upper and lower case map to the same figurine.
	for _, pair := range []string{"pP", "nN", "bB", "rR", "qQ", "kK"} {
		if pieceGlyph(pair[0]) != pieceGlyph(pair[1]) {
			t.Errorf("glyphs differ for %q", pair)
		}
	}
	testutil.AssertEqual(t, pieceGlyph(' '), " ")
	testutil.AssertEqual(t, pieceGlyph('x'), " ")
}

func TestFrameLayout(t *testing.T) {
	r := New(true)
	board := plainBoard(t)
	out := r.Frame(board,
		PlayerInfo{Name: "Alice", Rating: "2500"},
		PlayerInfo{Name: "Bob", Rating: "2400"},
	)

	// Black's panel precedes the board, white's follows it.
	alice := strings.Index(out, "Alice")
	boardAt := strings.Index(out, "♜")
	bob := strings.Index(out, "Bob")
	testutil.AssertTrue(t, alice >= 0 && boardAt > alice && bob > boardAt,
		"panel order wrong:\n%s", out)

	testutil.AssertContains(t, out, "● Alice 2500")
	testutil.AssertContains(t, out, "● Bob 2400")
}

func TestFramePlaceholders(t *testing.T) {
	r := New(true)
	out := r.Frame(plainBoard(t), PlayerInfo{}, PlayerInfo{Name: "Bob"})

	testutil.AssertContains(t, out, "● Anonymous")
	testutil.AssertContains(t, out, "● Bob")
	// No rating, no trailing rating column.
	testutil.AssertEqual(t, strings.Contains(out, "● Bob "), false)
}

func TestClear(t *testing.T) {
	var sb strings.Builder
	New(true).Clear(&sb)
	testutil.AssertEqual(t, sb.String(), "\x1b[H\x1b[2J")
}
