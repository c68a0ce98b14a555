package parser

import "fmt"

// Position of a token or statement within a script.
type Position struct {
	File   string
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in bytes
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenDelimiter
	TokenSymbol
	TokenKeyword
	TokenIdentifier // double-quoted names
	TokenString
	TokenComment
	TokenBlankLines
	TokenOther // numbers and escaped delimiters
)

var tokenTypeNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenDelimiter:  "Delimiter",
	TokenSymbol:     "Symbol",
	TokenKeyword:    "Keyword",
	TokenIdentifier: "Identifier",
	TokenString:     "String",
	TokenComment:    "Comment",
	TokenBlankLines: "BlankLines",
	TokenOther:      "Other",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Token is immutable once produced by the Lexer. Keyword text is upper-cased,
// everything else keeps the raw source text.
type Token struct {
	Type        TokenType
	Text        string
	Pos         Position
	ParensDepth int
}

// Significant reports whether the token carries statement content, i.e. it is
// not a comment, blank lines or end of input.
func (t Token) Significant() bool {
	switch t.Type {
	case TokenComment, TokenBlankLines, TokenEOF:
		return false
	}
	return true
}

// Tokens is the ordered history of tokens already scanned for the current
// statement. Lookups walk backwards and are bounded by the statement length.
type Tokens struct {
	tokens []Token
}

func (t *Tokens) Append(tok Token) { t.tokens = append(t.tokens, tok) }

func (t *Tokens) Len() int { return len(t.tokens) }

func (t *Tokens) Reset() { t.tokens = t.tokens[:0] }

// Previous token at the given parenthesis depth, skipping comments and blank
// lines. The second result is false when there is none.
func (t *Tokens) Previous(parensDepth int) (Token, bool) {
	for i := len(t.tokens) - 1; i >= 0; i-- {
		tok := t.tokens[i]
		if tok.ParensDepth != parensDepth {
			continue
		}
		if tok.Type == TokenComment || tok.Type == TokenBlankLines {
			continue
		}
		return tok, true
	}
	return Token{}, false
}

// LastIs reports whether the previous token at parensDepth has the given text.
func (t *Tokens) LastIs(parensDepth int, text string) bool {
	prev, ok := t.Previous(parensDepth)
	return ok && prev.Text == text
}

// EndsWith reports whether the last tokens at parensDepth, skipping comments
// and blank lines, have the given texts in order.
func (t *Tokens) EndsWith(parensDepth int, texts ...string) bool {
	want := len(texts) - 1
	for i := len(t.tokens) - 1; i >= 0 && want >= 0; i-- {
		tok := t.tokens[i]
		if tok.ParensDepth != parensDepth || tok.Type == TokenComment || tok.Type == TokenBlankLines {
			continue
		}
		if tok.Text != texts[want] {
			return false
		}
		want--
	}
	return want < 0
}

// LastIsOnLine reports whether the previous token at parensDepth sits on line.
func (t *Tokens) LastIsOnLine(parensDepth int, line int) bool {
	prev, ok := t.Previous(parensDepth)
	return ok && prev.Pos.Line == line
}

// HasKeyword reports whether a keyword token with the given text was seen.
func (t *Tokens) HasKeyword(text string) bool {
	for _, tok := range t.tokens {
		if tok.Type == TokenKeyword && tok.Text == text {
			return true
		}
	}
	return false
}

// First significant token of the statement.
func (t *Tokens) First() (Token, bool) {
	for _, tok := range t.tokens {
		if tok.Significant() {
			return tok, true
		}
	}
	return Token{}, false
}

// Keywords returns the text of every keyword token in order.
func (t *Tokens) Keywords() []string {
	var res []string
	for _, tok := range t.tokens {
		if tok.Type == TokenKeyword {
			res = append(res, tok.Text)
		}
	}
	return res
}

// Significant returns the text of every significant token in order.
func (t *Tokens) Significant() []string {
	var res []string
	for _, tok := range t.tokens {
		if tok.Significant() {
			res = append(res, tok.Text)
		}
	}
	return res
}
