package chunk

// Kind identifies which schema variant a record represents.
type Kind int

const (
	Unknown Kind = iota
	Featured
	FENUpdate
)

// kindNames maps kinds to their string representations.
var kindNames = [...]string{
	Unknown:   "unknown",
	Featured:  "featured",
	FENUpdate: "fen-update",
}

// String returns the string representation of a record kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Player holds one player's metadata. Both fields alias the record buffer
// and are nil when the input did not carry them.
type Player struct {
	Name   []byte
	Rating []byte
}

// Record is the parsed form of one feed record. FEN and the player fields
// alias the input buffer and are valid only until it is overwritten.
// Players[0] is black, Players[1] is white.
type Record struct {
	Kind    Kind
	FEN     []byte
	Players [2]Player
}

// parseKey consumes a string key and its colon and classifies the key.
// On any mismatch the cursor is forced to len(buf).
func parseKey(buf []byte, off int) (Symbol, int) {
	tok, off := NextToken(buf, off)
	if tok.Type != StringToken {
		return SymUnknown, len(buf)
	}
	colon, off := NextToken(buf, off)
	if colon.Type != ColonToken {
		return SymUnknown, len(buf)
	}
	return LookupSymbol(tok.Bytes(buf)), off
}

// parseString consumes a string value and returns its view of the buffer,
// or nil with the cursor forced to len(buf).
func parseString(buf []byte, off int) ([]byte, int) {
	tok, off := NextToken(buf, off)
	if tok.Type != StringToken {
		return nil, len(buf)
	}
	return tok.Bytes(buf), off
}

// parseNumber consumes an unsigned-integer value and returns its token so
// the caller can locate the byte after the digit run.
func parseNumber(buf []byte, off int) (Token, int) {
	tok, off := NextToken(buf, off)
	if tok.Type != NumberToken {
		return Token{Type: ErrorToken}, len(buf)
	}
	return tok, off
}

// parseEnum consumes a string value and classifies its content.
func parseEnum(buf []byte, off int) (Symbol, int) {
	tok, off := NextToken(buf, off)
	if tok.Type != StringToken {
		return SymUnknown, len(buf)
	}
	return LookupSymbol(tok.Bytes(buf)), off
}

// skipValue consumes exactly one scalar value under an unrecognized key.
// Composite values are not supported there: an object or array (or
// anything else that is not a scalar) aborts the record by forcing the
// cursor to len(buf).
func skipValue(buf []byte, off int) int {
	tok, off := NextToken(buf, off)
	switch tok.Type {
	case FalseToken, TrueToken, StringToken, NumberToken:
		return off
	}
	return len(buf)
}

// parsePlayer parses one element of the players array. The slot is chosen
// by the color field: black fills slot 0, white slot 1. A player whose
// color never resolves aborts the record, since there is no slot to
// commit the captured fields into.
func parsePlayer(buf []byte, off int, players *[2]Player) int {
	idx := -1
	var name []byte
	var rating Token
	haveRating := false

	tok, off := NextToken(buf, off)
	if tok.Type != ObjectOpen {
		return len(buf)
	}
	for {
		var sym Symbol
		sym, off = parseKey(buf, off)
		switch sym {
		case SymColor:
			sym, off = parseEnum(buf, off)
			switch sym {
			case SymBlack:
				idx = 0
			case SymWhite:
				idx = 1
			}

		case SymUser:
			tok, off = NextToken(buf, off)
			if tok.Type != ObjectOpen {
				return len(buf)
			}
			for done := false; !done; {
				sym, off = parseKey(buf, off)
				if sym == SymName {
					name, off = parseString(buf, off)
				} else {
					off = skipValue(buf, off)
				}

				tok, off = NextToken(buf, off)
				switch tok.Type {
				case ObjectClose:
					done = true
				case CommaToken:
				default:
					return len(buf)
				}
			}

		case SymRating:
			rating, off = parseNumber(buf, off)
			haveRating = rating.Type == NumberToken

		default:
			off = skipValue(buf, off)
		}

		tok, off = NextToken(buf, off)
		switch tok.Type {
		case ObjectClose:
			if idx == -1 {
				return len(buf)
			}
			players[idx].Name = name
			if haveRating {
				// The byte after the digit run is a delimiter that has
				// already been tokenized and is never read again, so it
				// can serve as a string terminator.
				buf[rating.Off+rating.Len] = 0
				players[idx].Rating = rating.Bytes(buf)
			}
			return off
		case CommaToken:
		default:
			return len(buf)
		}
	}
}

// parseData parses the data object: the position under "fen" and exactly
// two players under "players".
func parseData(buf []byte, off int, rec *Record) int {
	tok, off := NextToken(buf, off)
	if tok.Type != ObjectOpen {
		return len(buf)
	}
	for {
		var sym Symbol
		sym, off = parseKey(buf, off)
		switch sym {
		case SymFEN:
			rec.FEN, off = parseString(buf, off)

		case SymPlayers:
			tok, off = NextToken(buf, off)
			if tok.Type != ArrayOpen {
				return len(buf)
			}
			off = parsePlayer(buf, off, &rec.Players)
			tok, off = NextToken(buf, off)
			if tok.Type != CommaToken {
				return len(buf)
			}
			off = parsePlayer(buf, off, &rec.Players)
			tok, off = NextToken(buf, off)
			if tok.Type != ArrayClose {
				return len(buf)
			}

		default:
			off = skipValue(buf, off)
		}

		tok, off = NextToken(buf, off)
		switch tok.Type {
		case ObjectClose:
			return off
		case CommaToken:
		default:
			return len(buf)
		}
	}
}

// Parse parses one complete record from buf into rec. It returns false on
// any structural violation, truncation, unrecognized type tag, or player
// without a recognizable color; in that case rec is left untouched, so a
// failed parse can never be mistaken for a record.
//
// Unknown keys with scalar values are skipped at every level. Parse
// mutates buf (string and number terminators are written in place) and
// performs no allocation.
func Parse(buf []byte, rec *Record) bool {
	var out Record
	tok, off := NextToken(buf, 0)
	if tok.Type != ObjectOpen {
		return false
	}
	for {
		var sym Symbol
		sym, off = parseKey(buf, off)
		switch sym {
		case SymT:
			sym, off = parseEnum(buf, off)
			switch sym {
			case SymFeatured:
				out.Kind = Featured
			case SymFEN:
				out.Kind = FENUpdate
			default:
				// The type tag picks the render path; a record with an
				// unrecognized tag cannot be used at all.
				return false
			}

		case SymD:
			off = parseData(buf, off, &out)

		default:
			off = skipValue(buf, off)
		}

		tok, off = NextToken(buf, off)
		switch tok.Type {
		case ObjectClose:
			*rec = out
			return true
		case CommaToken:
		default:
			return false
		}
	}
}
