package chunk

// The tokenizer is a cursor-based scanner over a single record buffer.
// Every function takes the buffer and a cursor and returns the new cursor;
// a cursor equal to len(buf) is the universal abort signal threaded
// through the whole parser.

// skipWhitespace advances the cursor past spaces, tabs, CRs and LFs.
func skipWhitespace(buf []byte, off int) int {
	for off < len(buf) {
		switch buf[off] {
		case ' ', '\t', '\r', '\n':
			off++
		default:
			return off
		}
	}
	return off
}

// skipUntil advances the cursor to the next occurrence of b, or to the end
// of the buffer if b does not occur.
func skipUntil(buf []byte, off int, b byte) int {
	for ; off < len(buf); off++ {
		if buf[off] == b {
			return off
		}
	}
	return off
}

// NextToken scans the token starting at off, after skipping whitespace,
// and returns it together with the cursor just past it.
//
// String tokens are terminated in place: the closing quote is overwritten
// with a null byte, so the token span doubles as a null-terminated view.
// Backslash escapes are not decoded; a backslash before a quote does not
// keep the string open.
//
// On an unterminated string or a malformed false/true literal the cursor
// is forced to len(buf). On any other unrecognized byte the cursor is left
// where that byte was found.
func NextToken(buf []byte, off int) (Token, int) {
	tok := Token{Off: len(buf), Type: ErrorToken}
	off = skipWhitespace(buf, off)
	if off == len(buf) {
		return tok, off
	}

	switch buf[off] {
	case '{':
		return Token{Off: off, Len: 1, Type: ObjectOpen}, off + 1
	case '}':
		return Token{Off: off, Len: 1, Type: ObjectClose}, off + 1
	case '[':
		return Token{Off: off, Len: 1, Type: ArrayOpen}, off + 1
	case ']':
		return Token{Off: off, Len: 1, Type: ArrayClose}, off + 1
	case ',':
		return Token{Off: off, Len: 1, Type: CommaToken}, off + 1
	case ':':
		return Token{Off: off, Len: 1, Type: ColonToken}, off + 1

	case '"':
		tok.Off = off + 1
		end := skipUntil(buf, off+1, '"')
		tok.Len = end - tok.Off
		if end == len(buf) {
			// Unterminated: the record was cut mid-string.
			return tok, end
		}
		buf[end] = 0
		tok.Type = StringToken
		return tok, end + 1

	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		start := off
		for off < len(buf) && buf[off] >= '0' && buf[off] <= '9' {
			off++
		}
		return Token{Off: start, Len: off - start, Type: NumberToken}, off

	case 'f':
		if len(buf)-off >= 5 && string(buf[off:off+5]) == "false" {
			return Token{Off: off, Len: 5, Type: FalseToken}, off + 5
		}
		return tok, len(buf)

	case 't':
		if len(buf)-off >= 4 && string(buf[off:off+4]) == "true" {
			return Token{Off: off, Len: 4, Type: TrueToken}, off + 4
		}
		return tok, len(buf)
	}

	return tok, off
}
