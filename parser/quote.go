package parser

// looksLikeAlternateQuote reports whether peek starts a q'…' literal.
func looksLikeAlternateQuote(peek string) bool {
	if len(peek) < 3 {
		return false
	}
	return (peek[0] == 'q' || peek[0] == 'Q') && peek[1] == '\''
}

// scanAlternateQuote consumes a q'<c>…<c>' literal, where brackets close on
// their mirror image. The body is not decoded.
func (l *Lexer) scanAlternateQuote(ctx *Context, start Position) (Token, error) {
	r := l.r
	r.Swallow(2)
	closeQuote := alternateCloseQuote(r.Read())
	if !r.SwallowUntilExcluding(closeQuote) {
		return Token{}, newParseError(start, "unterminated alternate quote literal, expected %s", closeQuote)
	}
	r.Swallow(len(closeQuote))
	return l.token(ctx, TokenString, start), nil
}

func alternateCloseQuote(open byte) string {
	switch open {
	case '!':
		return "!'"
	case '[':
		return "]'"
	case '(':
		return ")'"
	case '{':
		return "}'"
	case '<':
		return ">'"
	default:
		return string(open) + "'"
	}
}
