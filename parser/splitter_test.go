package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		script string
		texts  []string
		kinds  []Kind
	}{
		{
			name:   "plain statements",
			script: "SELECT 1 FROM dual;\nSELECT 2 FROM dual;\nSELECT 3 FROM dual;",
			texts:  []string{"SELECT 1 FROM dual", "SELECT 2 FROM dual", "SELECT 3 FROM dual"},
			kinds:  []Kind{Plain, Plain, Plain},
		},
		{
			name:   "no trailing delimiter",
			script: "SELECT 1 FROM dual;\nSELECT 2 FROM dual\n",
			texts:  []string{"SELECT 1 FROM dual", "SELECT 2 FROM dual"},
			kinds:  []Kind{Plain, Plain},
		},
		{
			name:   "empty statements are skipped",
			script: ";;\nSELECT 1 FROM dual;;",
			texts:  []string{"SELECT 1 FROM dual"},
			kinds:  []Kind{Plain},
		},
		{
			name:   "procedure closed by slash",
			script: "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END;\n/\nSELECT 1 FROM dual;",
			texts:  []string{"CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END;", "SELECT 1 FROM dual"},
			kinds:  []Kind{ProceduralBlock, Plain},
		},
		{
			name:   "anonymous block at end of input",
			script: "BEGIN IF x THEN NULL; END IF; END;",
			texts:  []string{"BEGIN IF x THEN NULL; END IF; END;"},
			kinds:  []Kind{ProceduralBlock},
		},
		{
			name: "package spec and body",
			script: "CREATE OR REPLACE PACKAGE pkg AS\n  PROCEDURE p;\nEND pkg;\n/\n" +
				"CREATE OR REPLACE PACKAGE BODY pkg IS\n  PROCEDURE p IS\n  BEGIN\n    NULL;\n  END;\nEND pkg;\n/\n",
			texts: []string{
				"CREATE OR REPLACE PACKAGE pkg AS\n  PROCEDURE p;\nEND pkg;",
				"CREATE OR REPLACE PACKAGE BODY pkg IS\n  PROCEDURE p IS\n  BEGIN\n    NULL;\n  END;\nEND pkg;",
			},
			kinds: []Kind{ProceduralBlock, PackageBody},
		},
		{
			name:   "package body with initialization section",
			script: "CREATE PACKAGE BODY pkg AS\n  x NUMBER;\nBEGIN\n  x := 1;\nEND pkg;\n/\nSELECT 1 FROM dual;",
			texts:  []string{"CREATE PACKAGE BODY pkg AS\n  x NUMBER;\nBEGIN\n  x := 1;\nEND pkg;", "SELECT 1 FROM dual"},
			kinds:  []Kind{PackageBody, Plain},
		},
		{
			name:   "alternate quote hides delimiter",
			script: "SELECT q'[it's; fine]' FROM dual;\nSELECT 2 FROM dual;",
			texts:  []string{"SELECT q'[it's; fine]' FROM dual", "SELECT 2 FROM dual"},
			kinds:  []Kind{Plain, Plain},
		},
		{
			name:   "string and comment hide delimiter",
			script: "INSERT INTO t VALUES ('a;b'); -- c;d\nSELECT 1 /* ; */ FROM dual;",
			texts:  []string{"INSERT INTO t VALUES ('a;b')", "-- c;d\nSELECT 1 /* ; */ FROM dual"},
			kinds:  []Kind{Plain, Plain},
		},
		{
			name:   "view with inline function",
			script: "CREATE OR REPLACE VIEW v AS\nWITH FUNCTION f RETURN NUMBER IS BEGIN RETURN 1; END;\nSELECT f FROM dual;\n/\n",
			texts:  []string{"CREATE OR REPLACE VIEW v AS\nWITH FUNCTION f RETURN NUMBER IS BEGIN RETURN 1; END;\nSELECT f FROM dual"},
			kinds:  []Kind{ViewWithInlineFunction},
		},
		{
			name:   "view with inline function at end of input",
			script: "CREATE OR REPLACE VIEW v AS\nWITH FUNCTION f RETURN NUMBER IS BEGIN RETURN 1; END;\nSELECT f FROM dual;",
			texts:  []string{"CREATE OR REPLACE VIEW v AS\nWITH FUNCTION f RETURN NUMBER IS BEGIN RETURN 1; END;\nSELECT f FROM dual"},
			kinds:  []Kind{ViewWithInlineFunction},
		},
		{
			name:   "label declaration",
			script: "BEGIN\n  GOTO done;\n  <<done>>\n  NULL;\nEND;\n/\nSELECT 1 FROM dual;",
			texts:  []string{"BEGIN\n  GOTO done;\n  <<done>>\n  NULL;\nEND;", "SELECT 1 FROM dual"},
			kinds:  []Kind{ProceduralBlock, Plain},
		},
		{
			name:   "slash after semicolon is discarded",
			script: "CREATE TABLE t (id NUMBER);\n/\nSELECT 1 FROM dual;",
			texts:  []string{"CREATE TABLE t (id NUMBER)", "SELECT 1 FROM dual"},
			kinds:  []Kind{Plain, Plain},
		},
		{
			name:   "wrapped package body",
			script: "CREATE OR REPLACE PACKAGE BODY pkg wrapped\na000000\nabcd\n/\nSELECT 1 FROM dual;",
			texts:  []string{"CREATE OR REPLACE PACKAGE BODY pkg wrapped\na000000\nabcd", "SELECT 1 FROM dual"},
			kinds:  []Kind{Wrapped, Plain},
		},
		{
			name:   "wrapped function",
			script: "CREATE OR REPLACE FUNCTION f wrapped\na000000\nabcd\n/\n",
			texts:  []string{"CREATE OR REPLACE FUNCTION f wrapped\na000000\nabcd"},
			kinds:  []Kind{Wrapped},
		},
		{
			name: "java source",
			script: "CREATE OR REPLACE AND COMPILE JAVA SOURCE NAMED \"Hello\" AS\n" +
				"public class Hello {\n  public static String hi() { return \"hi\"; }\n}\n/\n",
			texts: []string{
				"CREATE OR REPLACE AND COMPILE JAVA SOURCE NAMED \"Hello\" AS\n" +
					"public class Hello {\n  public static String hi() { return \"hi\"; }\n}",
			},
			kinds: []Kind{JavaSource},
		},
		{
			name: "compound trigger",
			script: "CREATE TRIGGER t FOR INSERT ON x COMPOUND TRIGGER\n" +
				"  BEFORE STATEMENT IS BEGIN NULL; END BEFORE STATEMENT;\nEND t;\n/\n",
			texts: []string{
				"CREATE TRIGGER t FOR INSERT ON x COMPOUND TRIGGER\n" +
					"  BEFORE STATEMENT IS BEGIN NULL; END BEFORE STATEMENT;\nEND t;",
			},
			kinds: []Kind{ProceduralBlock},
		},
		{
			name:   "escaped delimiter",
			script: `SELECT 'a' \; SELECT 'b' FROM dual;`,
			texts:  []string{`SELECT 'a' \; SELECT 'b' FROM dual`},
			kinds:  []Kind{Plain},
		},
		{
			name:   "case expression in plain statement",
			script: "SELECT CASE WHEN a = 1 THEN 'x' END FROM t;\nSELECT 2 FROM dual;",
			texts:  []string{"SELECT CASE WHEN a = 1 THEN 'x' END FROM t", "SELECT 2 FROM dual"},
			kinds:  []Kind{Plain, Plain},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := Split(tt.script)
			require.NoError(t, err)
			var texts []string
			var kinds []Kind
			for _, s := range stmts {
				texts = append(texts, s.Text)
				kinds = append(kinds, s.Kind)
			}
			assert.Equal(t, tt.texts, texts)
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestSplitDelimiters(t *testing.T) {
	stmts, err := Split("SELECT 1 FROM dual;\nBEGIN NULL; END;\n/\n")
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Equal(t, Semicolon, stmts[0].Delimiter)
	assert.Equal(t, Block, stmts[1].Delimiter)
	for _, s := range stmts {
		assert.True(t, s.CanExecuteInTransaction)
	}
}

func TestSplitPositions(t *testing.T) {
	script := "\n\n-- lead\nSELECT 1\nFROM dual;\n  SELECT 2 FROM dual;"
	stmts, err := Split(script, WithFile("app.sql"))
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	first := stmts[0]
	assert.Equal(t, "-- lead\nSELECT 1\nFROM dual", first.Text)
	assert.Equal(t, Position{File: "app.sql", Offset: 2, Line: 3, Column: 1}, first.Start)
	assert.Equal(t, Position{File: "app.sql", Offset: 10, Line: 4, Column: 1}, first.ContentStart)
	assert.Equal(t, 5, first.End.Line)
	assert.Equal(t, 10, first.End.Column)

	second := stmts[1]
	assert.Equal(t, 6, second.Start.Line)
	assert.Equal(t, 3, second.Start.Column)
	assert.Equal(t, second.Start, second.ContentStart)
	assert.Equal(t, "app.sql:6:3", second.ContentStart.String())
}

func TestSplitWrappedResetsDepth(t *testing.T) {
	s := NewSplitter("CREATE PACKAGE BODY pkg wrapped\na000000\nabcd\n/\nSELECT 1 FROM dual;\n")

	stmt, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, Wrapped, stmt.Kind)

	stmt, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, Plain, stmt.Kind)
	assert.Equal(t, 0, s.ctx.BlockDepth())

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		msg    string
		line   int
	}{
		{"unclosed block", "SELECT 1 FROM dual;\nBEGIN NULL;", "incomplete statement: 1 unclosed block(s), 0 unclosed parenthesis(es)", 2},
		{"unclosed parenthesis", "SELECT (1 FROM dual", "incomplete statement: 0 unclosed block(s), 1 unclosed parenthesis(es)", 1},
		{"unterminated string", "SELECT 1 FROM dual;\nSELECT 'abc", "unterminated string literal", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := Split(tt.script)
			assert.Nil(t, stmts)
			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.msg, perr.Msg)
			assert.Equal(t, tt.line, perr.Pos.Line)
		})
	}
}

func TestSplitterStopsAfterError(t *testing.T) {
	s := NewSplitter("SELECT 'abc")
	_, err := s.Next()
	require.Error(t, err)
	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
}

func TestSplitReader(t *testing.T) {
	stmts, err := SplitReader(strings.NewReader("SELECT 1 FROM dual;\nSELECT 2 FROM dual;"))
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestSplitByteOrderMark(t *testing.T) {
	stmts, err := Split("\ufeffCREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END;\n/\nSELECT 1 FROM dual;")
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	assert.Equal(t, ProceduralBlock, stmts[0].Kind)
	assert.Equal(t, Block, stmts[0].Delimiter)
	assert.Equal(t, "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END;", stmts[0].Text)
	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, stmts[0].ContentStart)
	assert.Equal(t, Plain, stmts[1].Kind)
}

func TestSplitLongLine(t *testing.T) {
	const n = 20000
	stmts, err := Split(strings.Repeat("SELECT 1 FROM dual; ", n))
	require.NoError(t, err)
	require.Len(t, stmts, n)
	last := stmts[n-1]
	assert.Equal(t, "SELECT 1 FROM dual", last.Text)
	assert.Equal(t, 1, last.ContentStart.Line)
	assert.Equal(t, (n-1)*20+1, last.ContentStart.Column)

	cols := make([]string, n)
	for i := range cols {
		cols[i] = "1 c"
	}
	create := "CREATE TABLE t AS SELECT " + strings.Join(cols, ", ") + " FROM dual"
	stmts, err = Split(create + ";")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, create, stmts[0].Text)
}

func TestSplitEmpty(t *testing.T) {
	for _, script := range []string{"", "   \n\n", "-- only a comment\n", "/\n"} {
		stmts, err := Split(script)
		require.NoError(t, err, script)
		assert.Empty(t, stmts, script)
	}
}

func TestClassificationCutoff(t *testing.T) {
	// The procedure keyword arrives after the cutoff, so the statement stays
	// plain and ends at the semicolon closing its block.
	script := "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END;\n/\n"
	stmts, err := Split(script, WithClassificationCutoff(2))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, Plain, stmts[0].Kind)
	assert.Equal(t, "CREATE OR REPLACE PROCEDURE p IS BEGIN NULL; END", stmts[0].Text)
}
