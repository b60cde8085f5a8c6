// Package render draws the board and player panels as styled terminal text.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/lichess-tv-go/internal/fen"
)

// Palette lifted from the original curses colors: a pale and a slate
// cell background, near-black and pure white pieces.
const (
	colorLightCell  = "#828bb8"
	colorDarkCell   = "#42475e"
	colorBlackPiece = "#121318"
	colorWhitePiece = "#ffffff"
)

// clearScreen homes the cursor and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// PlayerInfo is one panel's worth of player metadata. Values are plain
// strings so they survive feed buffer reuse; empty fields are drawn as
// placeholders.
type PlayerInfo struct {
	Name   string
	Rating string
}

// Renderer turns board grids and player info into styled text. The zero
// value renders plain text; New configures the color styles.
type Renderer struct {
	blackOnLight lipgloss.Style
	blackOnDark  lipgloss.Style
	whiteOnLight lipgloss.Style
	whiteOnDark  lipgloss.Style
	coord        lipgloss.Style
	name         lipgloss.Style
	blackIcon    lipgloss.Style
	whiteIcon    lipgloss.Style
}

// New creates a renderer. With noColor set, all styling is suppressed
// and the output is plain text for dumb terminals.
func New(noColor bool) *Renderer {
	r := &Renderer{}
	if noColor {
		return r
	}

	light := lipgloss.Color(colorLightCell)
	dark := lipgloss.Color(colorDarkCell)
	black := lipgloss.Color(colorBlackPiece)
	white := lipgloss.Color(colorWhitePiece)

	r.blackOnLight = lipgloss.NewStyle().Foreground(black).Background(light)
	r.blackOnDark = lipgloss.NewStyle().Foreground(black).Background(dark)
	r.whiteOnLight = lipgloss.NewStyle().Foreground(white).Background(light)
	r.whiteOnDark = lipgloss.NewStyle().Foreground(white).Background(dark)
	r.coord = lipgloss.NewStyle().Foreground(dark)
	r.name = lipgloss.NewStyle().Foreground(light)
	r.blackIcon = lipgloss.NewStyle().Foreground(black)
	r.whiteIcon = lipgloss.NewStyle().Foreground(white)
	return r
}

// pieceGlyph maps a FEN piece letter to its figurine. Both colors use
// the filled glyph set; the cell style distinguishes the sides.
func pieceGlyph(c byte) string {
	switch c {
	case 'p', 'P':
		return "♟"
	case 'n', 'N':
		return "♞"
	case 'b', 'B':
		return "♝"
	case 'r', 'R':
		return "♜"
	case 'q', 'Q':
		return "♛"
	case 'k', 'K':
		return "♚"
	}
	return " "
}

// isBlackPiece reports whether a grid cell holds a black piece. Empty
// cells take the white style, which is invisible on a blank glyph.
func isBlackPiece(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// cellStyle picks the style for a piece on a light or dark cell.
func (r *Renderer) cellStyle(piece byte, lightCell bool) lipgloss.Style {
	switch {
	case isBlackPiece(piece) && lightCell:
		return r.blackOnLight
	case isBlackPiece(piece):
		return r.blackOnDark
	case lightCell:
		return r.whiteOnLight
	default:
		return r.whiteOnDark
	}
}

// Board renders the 8x8 grid with rank digits down the left edge and
// file letters underneath.
func (r *Renderer) Board(b fen.Board) string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteString(r.coord.Render(string(rune('8' - row))))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			piece := b[row*8+col]
			lightCell := (row+col)%2 == 0
			sb.WriteString(r.cellStyle(piece, lightCell).Render(pieceGlyph(piece) + " "))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for f := 'a'; f <= 'h'; f++ {
		sb.WriteString(r.coord.Render(string(f) + " "))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// playerLine renders one panel: the side's icon, the name, the rating.
func (r *Renderer) playerLine(icon lipgloss.Style, p PlayerInfo) string {
	name := p.Name
	if name == "" {
		name = "Anonymous"
	}
	line := icon.Render("●") + " " + r.name.Render(name)
	if p.Rating != "" {
		line += " " + r.coord.Render(p.Rating)
	}
	return line + "\n"
}

// Frame assembles a full frame: black's panel above the board, white's
// below, matching the original layout.
func (r *Renderer) Frame(board string, black, white PlayerInfo) string {
	var sb strings.Builder
	sb.WriteString(r.playerLine(r.blackIcon, black))
	sb.WriteByte('\n')
	sb.WriteString(board)
	sb.WriteByte('\n')
	sb.WriteString(r.playerLine(r.whiteIcon, white))
	return sb.String()
}

// Clear erases the terminal before a redraw.
func (r *Renderer) Clear(w io.Writer) {
	io.WriteString(w, clearScreen)
}
