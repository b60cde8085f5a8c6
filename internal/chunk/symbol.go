package chunk

// Symbol classifies a key or enum name from the fixed record schema.
type Symbol int

const (
	SymD Symbol = iota
	SymT
	SymFeatured
	SymUser
	SymRating
	SymBlack
	SymColor
	SymFEN
	SymWhite
	SymPlayers
	SymName
	SymUnknown
)

// symbolHashMultiplier spreads the 4-byte prefix words of the 11 known
// names over distinct slots of a 16-entry table. It is a minimal perfect
// hash chosen for exactly this name set: adding or renaming a symbol
// requires re-deriving the multiplier and the table. TestSymbolTableShape
// recomputes every slot and fails if the hash no longer lands each stored
// name in its own slot.
const symbolHashMultiplier = 2367153

// symbolTable maps hash slots to known names. Empty slots carry SymUnknown
// so a span that verifies against one can never resolve to a real symbol.
var symbolTable = [16]struct {
	name string
	sym  Symbol
}{
	0:  {"d", SymD},
	1:  {"t", SymT},
	2:  {"featured", SymFeatured},
	3:  {"user", SymUser},
	4:  {"rating", SymRating},
	5:  {"black", SymBlack},
	6:  {"color", SymColor},
	7:  {"fen", SymFEN},
	8:  {"white", SymWhite},
	9:  {"players", SymPlayers},
	10: {"name", SymName},
	11: {"", SymUnknown},
	12: {"", SymUnknown},
	13: {"", SymUnknown},
	14: {"", SymUnknown},
	15: {"", SymUnknown},
}

// symbolHash builds a little-endian word from up to the first 4 bytes of
// the span (zero-padded when shorter) and returns its table slot.
func symbolHash(span []byte) int {
	var w uint32
	n := len(span)
	if n > 4 {
		n = 4
	}
	for i := 0; i < n; i++ {
		w |= uint32(span[i]) << (8 * i)
	}
	return int(w * symbolHashMultiplier >> 28 & 15)
}

// LookupSymbol maps a byte span to its Symbol, or SymUnknown for anything
// outside the known set. The hash only looks at the first 4 bytes, so the
// full length and content of the slot's name are compared before the
// symbol is accepted.
func LookupSymbol(span []byte) Symbol {
	e := &symbolTable[symbolHash(span)]
	if len(e.name) == len(span) && e.name == string(span) {
		return e.sym
	}
	return SymUnknown
}
