package lsp

import (
	"errors"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/joshsziegler/plsplit/name"
	"github.com/joshsziegler/plsplit/parser"
)

// Diagnostics splits text and reports the failure, if any. The result is
// never nil so that publishing it clears earlier diagnostics.
func Diagnostics(text string) []protocol.Diagnostic {
	text = parser.StripBOM(text)
	_, err := parser.Split(text)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var pos protocol.Position
	msg := err.Error()
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		pos = toPosition(text, perr.Pos)
		msg = perr.Msg
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}}
}

// Symbols lists one symbol per statement of text, or nothing when text does
// not split.
func Symbols(text string) []protocol.DocumentSymbol {
	text = parser.StripBOM(text)
	stmts, err := parser.Split(text)
	if err != nil {
		return nil
	}
	symbols := make([]protocol.DocumentSymbol, 0, len(stmts))
	for _, stmt := range stmts {
		detail := stmt.Kind.String()
		start := toPosition(text, stmt.ContentStart)
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           name.Label(stmt),
			Detail:         &detail,
			Kind:           symbolKind(stmt.Kind),
			Range:          protocol.Range{Start: toPosition(text, stmt.Start), End: toPosition(text, stmt.End)},
			SelectionRange: protocol.Range{Start: start, End: start},
		})
	}
	return symbols
}

func symbolKind(kind parser.Kind) protocol.SymbolKind {
	switch kind {
	case parser.PackageBody, parser.Wrapped:
		return protocol.SymbolKindPackage
	case parser.ProceduralBlock:
		return protocol.SymbolKindFunction
	case parser.JavaSource:
		return protocol.SymbolKindClass
	case parser.ViewWithInlineFunction:
		return protocol.SymbolKindInterface
	default:
		return protocol.SymbolKindObject
	}
}

// toPosition converts a byte position into a zero-based line and UTF-16
// character offset.
func toPosition(text string, p parser.Position) protocol.Position {
	lineStart := p.Offset - (p.Column - 1)
	if lineStart < 0 || p.Offset > len(text) {
		return protocol.Position{}
	}
	character := 0
	for _, r := range text[lineStart:p.Offset] {
		character += utf16.RuneLen(r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: protocol.UInteger(character),
	}
}
