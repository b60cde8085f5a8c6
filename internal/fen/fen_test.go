package fen

import (
	"errors"
	"testing"

	interrors "github.com/lgbarn/lichess-tv-go/internal/errors"
	"github.com/lgbarn/lichess-tv-go/internal/testutil"
)

func TestToBoardInitialPosition(t *testing.T) {
	b, err := ToBoard([]byte(InitialPosition))
	testutil.AssertNoError(t, err)

	var want Board
	copy(want[:], ""+
		"rnbqkbnr"+
		"pppppppp"+
		"        "+
		"        "+
		"        "+
		"        "+
		"PPPPPPPP"+
		"RNBQKBNR")
	testutil.AssertEqual(t, b, want)
}

func TestToBoardStopsAtPlacementField(t *testing.T) {
	full, err := ToBoard([]byte("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"))
	testutil.AssertNoError(t, err)

	placementOnly, err := ToBoard([]byte(InitialPosition))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, full, placementOnly)
}

func TestToBoardDigitExpansion(t *testing.T) {
	b, err := ToBoard([]byte("8/8/8/4k3/3Q4/8/8/8"))
	testutil.AssertNoError(t, err)

	if got := b[3*8+4]; got != 'k' {
		t.Errorf("e5 = %q, want 'k'", got)
	}
	if got := b[4*8+3]; got != 'Q' {
		t.Errorf("d4 = %q, want 'Q'", got)
	}

	empties := 0
	for _, c := range b {
		if c == ' ' {
			empties++
		}
	}
	testutil.AssertEqual(t, empties, 62)
}

func TestToBoardEmptyInput(t *testing.T) {
	b, err := ToBoard(nil)
	testutil.AssertNoError(t, err)
	for i, c := range b {
		if c != ' ' {
			t.Fatalf("cell %d = %q, want blank", i, c)
		}
	}
}

func TestToBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad piece letter", "rnbqxbnr/8/8/8/8/8/8/8"},
		{"rank overflow by digits", "9/8/8/8/8/8/8/8"},
		{"rank overflow by pieces", "rnbqkbnrr/8/8/8/8/8/8/8"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBoard([]byte(tt.input))
			testutil.AssertError(t, err)
			testutil.AssertTrue(t, errors.Is(err, interrors.ErrInvalidFEN), "want ErrInvalidFEN, got %v", err)
		})
	}
}
