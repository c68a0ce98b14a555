package templates

import (
	"io"

	"github.com/joshsziegler/plsplit/name"
	"github.com/joshsziegler/plsplit/parser"
)

// Text writes a listing of stmts. Each statement is preceded by a comment
// line and followed by its delimiter, so the listing is itself a script.
func Text(writer io.Writer, stmts []parser.Statement) error {
	w := NewShortWriter(writer)
	for i, stmt := range stmts {
		w.F("-- [%d] %s %s at %s\n", i+1, stmt.Kind, name.Label(stmt), stmt.ContentStart)
		if stmt.Delimiter.AloneOnLine {
			w.N(stmt.Text)
			w.N(stmt.Delimiter.Text)
		} else {
			w.N(stmt.Text + stmt.Delimiter.Text)
		}
		w.N("")
	}
	w.F("-- %s\n", name.Count("statement", len(stmts)))
	return w.Err()
}
