// Package parser splits SQL and PL/SQL scripts into executable statements.
//
// # Overview
//
// A script is read token by token. The first keywords of each statement decide
// its Kind, and the Kind decides the delimiter that ends it: plain SQL ends at
// ";", while procedural units, package bodies, Java sources and views with
// inline functions end at a "/" alone on its line. Block depth is tracked
// across BEGIN/END, control-flow keywords and package bodies, so semicolons
// inside a body never end the statement.
//
//	stmts, err := parser.Split(script, parser.WithFile("install.sql"))
//	if err != nil {
//	    var perr *parser.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.Pos locates the failure
//	    }
//	}
//
// Splitting is single pass and holds no global state. A Splitter is not safe
// for concurrent use, but independent scripts may be split in parallel.
package parser
