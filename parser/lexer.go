package parser

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexer turns a script into tokens. Whitespace is skipped, except that runs
// holding an empty line become a BlankLines token.
type Lexer struct {
	r     *Reader
	upper cases.Caser // not safe for concurrent use, one per Lexer
}

func NewLexer(r *Reader) *Lexer {
	return &Lexer{
		r:     r,
		upper: cases.Upper(language.Und),
	}
}

// NextToken scans the next token. The active delimiter and parenthesis depth
// are taken from (and the latter updated in) ctx.
func (l *Lexer) NextToken(ctx *Context) (Token, error) {
	r := l.r
	if tok, ok := l.scanWhitespace(ctx); ok {
		return tok, nil
	}

	start := r.Position()
	if r.EOF() {
		return Token{Type: TokenEOF, Pos: start, ParensDepth: ctx.ParensDepth()}, nil
	}

	d := ctx.Delimiter()
	if escapedDelimiter(r, d) {
		r.Swallow(len(d.Escape) + len(d.Text))
		return l.token(ctx, TokenOther, start), nil
	}
	if isDelimiter(r, d) {
		text := d.Text
		if aloneOnLine(r, Block.Text) {
			text = Block.Text
		}
		r.Swallow(len(text))
		return Token{Type: TokenDelimiter, Text: text, Pos: start, ParensDepth: ctx.ParensDepth()}, nil
	}

	ch := r.PeekByte(0)
	switch {
	case ch == '-' && r.PeekByte(1) == '-':
		r.ReadWhile(func(c byte) bool { return c != '\n' })
		return l.token(ctx, TokenComment, start), nil
	case ch == '/' && r.PeekByte(1) == '*':
		r.Swallow(2)
		if !r.SwallowUntilExcluding("*/") {
			return Token{}, newParseError(start, "unterminated comment")
		}
		r.Swallow(2)
		return l.token(ctx, TokenComment, start), nil
	case looksLikeAlternateQuote(r.Peek(3)):
		return l.scanAlternateQuote(ctx, start)
	case ch == '\'':
		return l.scanString(ctx, start)
	case ch == '"':
		return l.scanIdentifier(ctx, start)
	case isDigit(ch):
		r.ReadWhile(isWordChar)
		return l.token(ctx, TokenOther, start), nil
	case isLetter(ch):
		word := r.ReadWhile(isWordChar)
		return Token{Type: TokenKeyword, Text: l.upper.String(word), Pos: start, ParensDepth: ctx.ParensDepth()}, nil
	case ch == '(':
		r.Read()
		tok := l.token(ctx, TokenSymbol, start)
		ctx.increaseParensDepth()
		return tok, nil
	case ch == ')':
		if ctx.ParensDepth() == 0 {
			return Token{}, newParseError(start, "unbalanced closing parenthesis")
		}
		r.Read()
		ctx.decreaseParensDepth()
		return l.token(ctx, TokenSymbol, start), nil
	}
	r.Read()
	return l.token(ctx, TokenSymbol, start), nil
}

// token builds a token whose text is the raw source since start.
func (l *Lexer) token(ctx *Context, typ TokenType, start Position) Token {
	return Token{
		Type:        typ,
		Text:        l.r.Slice(start.Offset, l.r.Position().Offset),
		Pos:         start,
		ParensDepth: ctx.ParensDepth(),
	}
}

func (l *Lexer) scanWhitespace(ctx *Context) (Token, bool) {
	start := l.r.Position()
	ws := l.r.ReadWhile(isWhitespace)
	if strings.Count(ws, "\n") < 2 {
		return Token{}, false
	}
	return Token{Type: TokenBlankLines, Text: ws, Pos: start, ParensDepth: ctx.ParensDepth()}, true
}

func (l *Lexer) scanString(ctx *Context, start Position) (Token, error) {
	r := l.r
	r.Read()
	for {
		if !r.SwallowUntilExcluding("'") {
			return Token{}, newParseError(start, "unterminated string literal")
		}
		r.Read()
		if r.PeekByte(0) != '\'' {
			break
		}
		r.Read() // '' escape
	}
	return l.token(ctx, TokenString, start), nil
}

// scanIdentifier reads a double-quoted name together with any dotted
// continuation, so "SCHEMA"."NAME" is a single token.
func (l *Lexer) scanIdentifier(ctx *Context, start Position) (Token, error) {
	r := l.r
	for {
		if r.PeekByte(0) == '"' {
			r.Read()
			if !r.SwallowUntilExcluding(`"`) {
				return Token{}, newParseError(start, "unterminated quoted identifier")
			}
			r.Read()
		} else {
			r.ReadWhile(isWordChar)
		}
		next := r.PeekByte(1)
		if r.PeekByte(0) != '.' || !(next == '"' || isLetter(next)) {
			break
		}
		r.Read()
	}
	return l.token(ctx, TokenIdentifier, start), nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '$' || ch == '#' || ch == '.'
}
