package templates

import (
	"fmt"
	"io"
)

// ShortWriter allows simplified use of fmt.Fprintln() and fmt.Fprintf with an
// io.Writer to make the listing code easier to read. The first write error is
// kept and every later write is skipped.
type ShortWriter struct {
	w   io.Writer
	err error
}

func NewShortWriter(w io.Writer) *ShortWriter {
	return &ShortWriter{w: w}
}

// N ~ Newline
func (x *ShortWriter) N(s string) {
	if x.err != nil {
		return
	}
	_, x.err = fmt.Fprintln(x.w, s)
}

// F ~ Format
func (x *ShortWriter) F(format string, a ...any) {
	if x.err != nil {
		return
	}
	_, x.err = fmt.Fprintf(x.w, format, a...)
}

// Err returns the first write error, if any.
func (x *ShortWriter) Err() error {
	return x.err
}
