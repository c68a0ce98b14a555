package parser

import (
	"regexp"
	"strings"
)

// All patterns are matched against the whole of an upper-cased, space-joined
// keyword sequence.
const accessibleBy = `ACCESSIBLE\sBY\s\(?((FUNCTION|PROCEDURE|PACKAGE|TRIGGER|TYPE)\s[^\s]*\s?)*\)?`

var (
	packageBodyWrappedPattern = fullMatch(`CREATE(\sOR\sREPLACE)?(\s(NON)?EDITIONABLE)?\sPACKAGE\sBODY(\s[^\s]*)?\sWRAPPED(\s[^\s]*)*`)
	packageSpecWrappedPattern = fullMatch(`CREATE(\sOR\sREPLACE)?(\s(NON)?EDITIONABLE)?\sPACKAGE(\s[^\s]*)?\sWRAPPED(\s[^\s]*)*`)
	unitWrappedPattern        = fullMatch(`CREATE(\sOR\sREPLACE)?(\s(NON)?EDITIONABLE)?\s(FUNCTION|PROCEDURE|TYPE)(\s[^\s]*)?\sWRAPPED(\s[^\s]*)*`)

	typeBodyPattern    = fullMatch(`CREATE(\sOR\sREPLACE)?(\s(NON)?EDITIONABLE)?\sTYPE\sBODY\s([^\s]*\s)?(IS|AS)`)
	packageBodyPattern = fullMatch(`CREATE(\s*OR\s*REPLACE)?(\s*(NON)?EDITIONABLE)?\s*PACKAGE\s*BODY\s*([^\s]*\s)?(IS|AS)`)
	packageSpecPattern = fullMatch(`CREATE(\s*OR\s*REPLACE)?(\s*(NON)?EDITIONABLE)?\s*PACKAGE\s([^\s*]*\s*)?(AUTHID\s*[^\s*]*\s*|` + accessibleBy + `)*(IS|AS)`)

	viewWithFunctionPattern = fullMatch(`CREATE(\sOR\sREPLACE)?(\s(NON)?EDITIONABLE)?\sVIEW\s([^\s]*\s)?AS\sWITH\s(PROCEDURE|FUNCTION)`)
	unitPattern             = fullMatch(`CREATE(\sOR\sREPLACE)?(\s(NON)?EDITIONABLE)?\s(FUNCTION|PROCEDURE|TYPE|TRIGGER)`)
	declareBeginPattern     = fullMatch(`DECLARE|BEGIN|WITH`)
	javaSourcePattern       = fullMatch(`CREATE(\sOR\sREPLACE)?(\sAND\s(RESOLVE|COMPILE))?(\sNOFORCE)?\sJAVA\s(SOURCE|RESOURCE|CLASS)`)
)

func fullMatch(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)$`)
}

// tokensMatch tests a pattern against the statement so far plus the current
// token. Package specs with an ACCESSIBLE BY clause are first tested against
// the keywords alone, since the clause lists objects between parentheses.
func tokensMatch(history *Tokens, current Token, pattern *regexp.Regexp) bool {
	if pattern == packageSpecPattern && history.HasKeyword("ACCESSIBLE") {
		words := append(history.Keywords(), current.Text)
		if pattern.MatchString(strings.Join(words, " ")) {
			return true
		}
	}
	words := append(history.Significant(), current.Text)
	return pattern.MatchString(strings.Join(words, " "))
}
