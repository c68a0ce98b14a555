package parser

// Delimiter terminates a statement. An AloneOnLine delimiter only counts when
// it is the sole content of its line. Escape followed by Text is a literal
// occurrence of the delimiter, never a boundary.
type Delimiter struct {
	Text        string
	AloneOnLine bool
	Escape      string
}

var (
	Semicolon = Delimiter{Text: ";", AloneOnLine: false, Escape: `\`}
	Block     = Delimiter{Text: "/", AloneOnLine: true, Escape: `\`}
)

func (d Delimiter) String() string { return d.Text }

// selectDelimiter picks the terminator for a statement kind.
func selectDelimiter(kind Kind) Delimiter {
	switch kind {
	case ProceduralBlock, ViewWithInlineFunction, JavaSource, PackageBody:
		return Block
	default:
		return Semicolon
	}
}

// escapedDelimiter reports whether the cursor sits on escape+delimiter.
func escapedDelimiter(r *Reader, d Delimiter) bool {
	if d.Escape == "" {
		return false
	}
	seq := d.Escape + d.Text
	return r.Peek(len(seq)) == seq
}

// isDelimiter reports whether the cursor sits on a statement boundary for the
// active delimiter. A block terminator alone on its line is a boundary even
// while the semicolon is active.
func isDelimiter(r *Reader, d Delimiter) bool {
	if escapedDelimiter(r, d) {
		return false
	}
	if d.AloneOnLine {
		return aloneOnLine(r, d.Text)
	}
	if aloneOnLine(r, Block.Text) {
		return true
	}
	return r.Peek(len(d.Text)) == d.Text
}

func aloneOnLine(r *Reader, text string) bool {
	return r.Peek(len(text)) == text &&
		r.ColIgnoringWhitespace() == 1 &&
		r.RestOfLineBlank(len(text))
}

// shouldDiscard drops a stray block terminator seen before any content of the
// statement, typically the "/" following a statement that already ended on ";".
func shouldDiscard(tok Token, nonCommentPartSeen bool) bool {
	return tok.Text == Block.Text && !nonCommentPartSeen
}
