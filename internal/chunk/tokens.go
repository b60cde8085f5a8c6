// Package chunk parses game-state records streamed from the Lichess TV feed.
//
// The feed delivers one JSON-like record per line. Records are parsed in
// place: the buffer is mutated (string and number terminators written over
// delimiter bytes) and the populated Record aliases the buffer, so nothing
// is allocated and nothing needs to be freed. Every view in a Record is
// valid only until the buffer is next overwritten.
package chunk

// TokenType represents the type of a lexical token.
type TokenType int

const (
	ErrorToken TokenType = iota
	StringToken
	NumberToken
	CommaToken
	ColonToken
	ObjectOpen
	ObjectClose
	ArrayOpen
	ArrayClose
	FalseToken
	TrueToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	ErrorToken:  "ERROR",
	StringToken: "STRING",
	NumberToken: "NUMBER",
	CommaToken:  "COMMA",
	ColonToken:  "COLON",
	ObjectOpen:  "OBJECT_OPEN",
	ObjectClose: "OBJECT_CLOSE",
	ArrayOpen:   "ARRAY_OPEN",
	ArrayClose:  "ARRAY_CLOSE",
	FalseToken:  "FALSE",
	TrueToken:   "TRUE",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one lexical token, located by offset and length in the input
// buffer. A token is only valid until the next tokenizer call, since the
// buffer may be mutated again.
type Token struct {
	Off  int
	Len  int
	Type TokenType
}

// Bytes returns the token's span of the buffer it was scanned from.
func (t Token) Bytes(buf []byte) []byte {
	return buf[t.Off : t.Off+t.Len]
}
