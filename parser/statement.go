package parser

import "strings"

// Statement is one executable unit split out of a script. Text excludes the
// terminating delimiter.
type Statement struct {
	Text                    string
	Kind                    Kind
	Start                   Position // first token, comments included
	ContentStart            Position // first non-comment token
	End                     Position // terminating delimiter or end of input
	Delimiter               Delimiter
	CanExecuteInTransaction bool
}

// postProcess applies kind-specific cleanup to the recorded text. A view with
// inline functions is emitted without its trailing semicolon, the bodies in
// its WITH clause having consumed their own terminators.
func postProcess(kind Kind, sql string) string {
	if kind == ViewWithInlineFunction {
		sql = strings.TrimSpace(sql)
		sql = strings.TrimSuffix(sql, ";")
	}
	return sql
}
