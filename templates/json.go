package templates

import (
	"encoding/json"
	"io"

	"github.com/joshsziegler/plsplit/name"
	"github.com/joshsziegler/plsplit/parser"
)

type jsonStatement struct {
	Index         int         `json:"index"`
	File          string      `json:"file,omitempty"`
	Name          string      `json:"name,omitempty"`
	Kind          parser.Kind `json:"kind"`
	Line          int         `json:"line"`
	Column        int         `json:"column"`
	Delimiter     string      `json:"delimiter"`
	Transactional bool        `json:"transactional"`
	SQL           string      `json:"sql"`
}

// JSON writes stmts as an indented JSON array. Statements of several files
// may be mixed, each carries the file it came from.
func JSON(w io.Writer, stmts []parser.Statement) error {
	out := make([]jsonStatement, 0, len(stmts))
	for i, stmt := range stmts {
		out = append(out, jsonStatement{
			Index:         i + 1,
			File:          stmt.ContentStart.File,
			Name:          name.ObjectName(stmt.Text),
			Kind:          stmt.Kind,
			Line:          stmt.ContentStart.Line,
			Column:        stmt.ContentStart.Column,
			Delimiter:     stmt.Delimiter.Text,
			Transactional: stmt.CanExecuteInTransaction,
			SQL:           stmt.Text,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
