// viewer.go - record handling and frame drawing
package main

import (
	"fmt"
	"io"

	"github.com/lgbarn/lichess-tv-go/internal/chunk"
	"github.com/lgbarn/lichess-tv-go/internal/config"
	"github.com/lgbarn/lichess-tv-go/internal/fen"
	"github.com/lgbarn/lichess-tv-go/internal/render"
)

// viewer holds the display state carried between records: the player
// panels from the last featured record and the last rendered board.
type viewer struct {
	cfg   *config.Config
	r     *render.Renderer
	out   io.Writer
	black render.PlayerInfo
	white render.PlayerInfo
	board string
}

func newViewer(cfg *config.Config, out io.Writer) *viewer {
	return &viewer{cfg: cfg, r: render.New(cfg.NoColor), out: out}
}

// onRecord handles one feed record: parse, silently drop failures,
// refresh the player panels on featured records, redraw the board.
func (v *viewer) onRecord(buf []byte) {
	var rec chunk.Record
	if !chunk.Parse(buf, &rec) {
		return
	}

	if rec.Kind == chunk.Featured {
		// Copy out of the record: its views die with the buffer.
		v.black = playerInfo(rec.Players[0])
		v.white = playerInfo(rec.Players[1])
	}

	if len(rec.FEN) > 0 {
		grid, err := fen.ToBoard(rec.FEN)
		if err != nil {
			fmt.Fprintf(v.cfg.LogFile, "dropping frame: %v\n", err)
			return
		}
		v.board = v.r.Board(grid)
	}
	if v.board == "" {
		return
	}

	v.r.Clear(v.out)
	io.WriteString(v.out, v.r.Frame(v.board, v.black, v.white))
}

func playerInfo(p chunk.Player) render.PlayerInfo {
	return render.PlayerInfo{Name: string(p.Name), Rating: string(p.Rating)}
}
