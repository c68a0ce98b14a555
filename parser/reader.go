package parser

import "strings"

// Reader is a peeking reader over a script. It tracks line and column as it
// consumes input so tokens can be stamped with their position.
type Reader struct {
	src       string
	file      string
	pos       int
	line      int
	column    int
	lineStart int // offset of the first byte of the current line
}

// NewReader drops a leading byte-order mark; offsets are relative to the
// remaining text.
func NewReader(src string, file string) *Reader {
	return &Reader{
		src:    StripBOM(src),
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

const byteOrderMark = "\ufeff"

// StripBOM removes a leading UTF-8 byte-order mark from src.
func StripBOM(src string) string {
	return strings.TrimPrefix(src, byteOrderMark)
}

func (r *Reader) Position() Position {
	return Position{
		File:   r.file,
		Offset: r.pos,
		Line:   r.line,
		Column: r.column,
	}
}

func (r *Reader) EOF() bool { return r.pos >= len(r.src) }

// Peek returns up to n bytes without consuming them.
func (r *Reader) Peek(n int) string {
	end := r.pos + n
	if end > len(r.src) {
		end = len(r.src)
	}
	return r.src[r.pos:end]
}

// PeekByte returns the byte i positions ahead of the cursor, or 0 past the end.
func (r *Reader) PeekByte(i int) byte {
	if r.pos+i >= len(r.src) {
		return 0
	}
	return r.src[r.pos+i]
}

// Read consumes and returns a single byte, or 0 at the end of input.
func (r *Reader) Read() byte {
	if r.pos >= len(r.src) {
		return 0
	}
	ch := r.src[r.pos]
	r.pos++
	if ch == '\n' {
		r.line++
		r.column = 1
		r.lineStart = r.pos
	} else {
		r.column++
	}
	return ch
}

func (r *Reader) Swallow(n int) {
	for i := 0; i < n; i++ {
		r.Read()
	}
}

// SwallowUntilExcluding consumes input up to the first occurrence of s. When s
// never appears the rest of the input is consumed and false is returned.
func (r *Reader) SwallowUntilExcluding(s string) bool {
	idx := strings.Index(r.src[r.pos:], s)
	if idx < 0 {
		r.Swallow(len(r.src) - r.pos)
		return false
	}
	r.Swallow(idx)
	return true
}

// ReadWhile consumes bytes while pred holds and returns them.
func (r *Reader) ReadWhile(pred func(byte) bool) string {
	start := r.pos
	for r.pos < len(r.src) && pred(r.src[r.pos]) {
		r.Read()
	}
	return r.src[start:r.pos]
}

// ColIgnoringWhitespace is the cursor column counted from the first
// non-whitespace byte of the line: 1 when only whitespace precedes the cursor.
func (r *Reader) ColIgnoringWhitespace() int {
	indent := 0
	for i := r.lineStart; i < r.pos && isBlank(r.src[i]); i++ {
		indent++
	}
	return r.pos - r.lineStart - indent + 1
}

// RestOfLineBlank reports whether only whitespace follows the n bytes at the
// cursor up to the end of the line or input.
func (r *Reader) RestOfLineBlank(n int) bool {
	for i := r.pos + n; i < len(r.src); i++ {
		switch r.src[i] {
		case '\n':
			return true
		case ' ', '\t', '\r', '\f', '\v':
		default:
			return false
		}
	}
	return true
}

// Slice returns the raw source between two offsets.
func (r *Reader) Slice(from, to int) string {
	if to > len(r.src) {
		to = len(r.src)
	}
	if from < 0 || from > to {
		return ""
	}
	return r.src[from:to]
}

func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isWhitespace(ch byte) bool {
	return isBlank(ch) || ch == '\n'
}
