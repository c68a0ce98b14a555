package parser

import (
	"io"
	"strings"
	"unicode"
)

// Splitter pulls statements out of a script one at a time. It is not safe for
// concurrent use; independent scripts need independent Splitters.
type Splitter struct {
	cfg  config
	r    *Reader
	lex  *Lexer
	ctx  *Context
	done bool
	n    int
}

func NewSplitter(script string, opts ...Option) *Splitter {
	cfg := newConfig(opts)
	r := NewReader(script, cfg.file)
	return &Splitter{
		cfg: cfg,
		r:   r,
		lex: NewLexer(r),
		ctx: NewContext(),
	}
}

// Split splits a whole script. On error no statements are returned.
func Split(script string, opts ...Option) ([]Statement, error) {
	s := NewSplitter(script, opts...)
	var stmts []Statement
	for {
		stmt, err := s.Next()
		if err == io.EOF {
			return stmts, nil
		}
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, *stmt)
	}
}

// SplitReader reads rd to the end and splits its content.
func SplitReader(rd io.Reader, opts ...Option) ([]Statement, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	return Split(string(data), opts...)
}

// Next returns the next statement, or io.EOF once the script is exhausted.
// After an error every further call returns io.EOF.
func (s *Splitter) Next() (*Statement, error) {
	if s.done {
		return nil, io.EOF
	}
	ctx := s.ctx
	ctx.SetKind(Plain)
	ctx.SetDelimiter(Semicolon)

	var (
		history Tokens
		prefix  []string
		settled bool // kind can no longer change
		started bool
		seen    bool // non-comment content seen
		start   Position
		content Position
	)
	for {
		tok, err := s.lex.NextToken(ctx)
		if err != nil {
			s.done = true
			return nil, err
		}

		if shouldDiscard(tok, seen) {
			history.Reset()
			started = false
			continue
		}
		if shouldAdjustBlockDepth(ctx, tok) {
			adjustBlockDepth(ctx, &history, tok)
		}

		closing := tok.Type == TokenDelimiter && tok.ParensDepth == 0 &&
			(ctx.BlockDepth() == 0 || ctx.Kind() == Wrapped)
		if tok.Type == TokenEOF || closing {
			if tok.Type == TokenEOF {
				s.done = true
			}
			if !seen {
				if s.done {
					return nil, io.EOF
				}
				history.Reset()
				started = false
				continue
			}
			if tok.Type == TokenEOF && (ctx.BlockDepth() > 0 || ctx.ParensDepth() > 0) {
				return nil, newParseError(content, "incomplete statement: %d unclosed block(s), %d unclosed parenthesis(es)",
					ctx.BlockDepth(), ctx.ParensDepth())
			}
			return s.emit(start, content, tok), nil
		}

		if !started && tok.Type != TokenBlankLines {
			started = true
			start = tok.Pos
		}
		if !seen && tok.Significant() {
			seen = true
			content = tok.Pos
		}
		history.Append(tok)

		if settled || tok.ParensDepth != 0 || (tok.Type != TokenKeyword && tok.Type != TokenIdentifier) {
			continue
		}
		prefix = append(prefix, tok.Text)
		if len(prefix) > s.cfg.cutoff {
			settled = true
			continue
		}
		// A procedural unit may still turn out to be wrapped: the unit
		// pattern accepts CREATE FUNCTION before the name and WRAPPED follow.
		kind := classify(strings.Join(prefix, " "), ctx)
		if ctx.Kind() != Plain && kind != Wrapped {
			continue
		}
		if kind != ctx.Kind() {
			s.cfg.log.Debugf("%s: classified as %s", content, kind)
		}
		ctx.SetKind(kind)
		ctx.SetDelimiter(selectDelimiter(kind))
		settled = kind != Plain && kind != ProceduralBlock
	}
}

func (s *Splitter) emit(start, content Position, end Token) *Statement {
	ctx := s.ctx
	text := strings.TrimRightFunc(s.r.Slice(start.Offset, end.Pos.Offset), unicode.IsSpace)
	stmt := &Statement{
		Text:                    postProcess(ctx.Kind(), text),
		Kind:                    ctx.Kind(),
		Start:                   start,
		ContentStart:            content,
		End:                     end.Pos,
		Delimiter:               ctx.Delimiter(),
		CanExecuteInTransaction: ctx.Kind().CanExecuteInTransaction(),
	}
	s.n++
	s.cfg.log.Debugf("statement %d: %s at %s terminated by %q", s.n, stmt.Kind, stmt.ContentStart, end.Text)
	return stmt
}
