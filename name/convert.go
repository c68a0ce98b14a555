package name

import (
	"strings"

	"github.com/gertd/go-pluralize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshsziegler/plsplit/parser"
)

var (
	pluralizer = pluralize.NewClient()
	acronyms   = map[string]string{
		"id":   "ID",
		"sql":  "SQL",
		"url":  "URL",
		"uri":  "URI",
		"ip":   "IP",
		"api":  "API",
		"ddl":  "DDL",
		"dml":  "DML",
		"json": "JSON",
		"xml":  "XML",
		"pkg":  "PKG",
		"db":   "DB",
	}
	// leading words of a CREATE statement that come before the object name
	objectWords = map[string]bool{
		"CREATE": true, "OR": true, "REPLACE": true, "EDITIONABLE": true, "NONEDITIONABLE": true,
		"AND": true, "RESOLVE": true, "COMPILE": true, "FORCE": true, "NOFORCE": true,
		"PACKAGE": true, "BODY": true, "TYPE": true, "FUNCTION": true, "PROCEDURE": true,
		"TRIGGER": true, "VIEW": true, "MATERIALIZED": true, "TABLE": true, "GLOBAL": true,
		"PRIVATE": true, "TEMPORARY": true, "INDEX": true, "UNIQUE": true, "BITMAP": true,
		"SEQUENCE": true, "PUBLIC": true, "SYNONYM": true, "JAVA": true, "SOURCE": true,
		"RESOURCE": true, "CLASS": true, "NAMED": true, "LIBRARY": true,
	}
)

// ObjectName extracts the name of the object a CREATE statement defines, e.g.
// "billing.invoice" from "CREATE OR REPLACE PACKAGE BODY billing.invoice IS".
// Unquoted names are lower-cased and quotes are dropped. Statements that
// define nothing, like anonymous blocks, give "".
func ObjectName(sql string) string {
	ctx := parser.NewContext()
	lex := parser.NewLexer(parser.NewReader(sql, ""))
	first := true
	for {
		tok, err := lex.NextToken(ctx)
		if err != nil || tok.Type == parser.TokenEOF {
			return ""
		}
		if !tok.Significant() {
			continue
		}
		switch tok.Type {
		case parser.TokenKeyword:
			if first && tok.Text != "CREATE" {
				return ""
			}
			first = false
			if objectWords[tok.Text] {
				continue
			}
			return strings.ToLower(tok.Text)
		case parser.TokenIdentifier:
			if first {
				return ""
			}
			return strings.ReplaceAll(tok.Text, `"`, "")
		default:
			return ""
		}
	}
}

// Label names a statement for listings: its object name when it has one,
// otherwise its kind.
func Label(stmt parser.Statement) string {
	if n := ObjectName(stmt.Text); n != "" {
		return n
	}
	return stmt.Kind.String()
}

// ToGo converts a snake_case or dotted name to CamelCase -- per Go conventions
// -- and singularizes its last word.
func ToGo(s string) string {
	s = strings.ToLower(s) // Convert to lowercase to match against acronyms
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '.' || r == '$' || r == '#' || r == '-' || r == ' ' || r == '"'
	})
	caser := cases.Title(language.English)
	name := ""
	for i, word := range words {
		acronym, found := acronyms[word]
		if found { // If this was an acronym, use the case provided.
			name += acronym
			continue
		}
		if i == len(words)-1 {
			word = Singular(word)
		}
		name += caser.String(word)
	}
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "X" + name
	}
	return name
}

// Count formats n and word, pluralizing when n is not 1: "1 statement",
// "3 statements".
func Count(word string, n int) string {
	return pluralizer.Pluralize(word, n, true)
}

func Singular(s string) string {
	return pluralizer.Singular(s)
}
