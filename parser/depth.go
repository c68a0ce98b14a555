package parser

import "regexp"

const wrappedInitiator = "WRAPPED"

var blockPatterns = []*regexp.Regexp{
	packageBodyPattern,
	packageSpecPattern,
	typeBodyPattern,
}

// shouldAdjustBlockDepth decides whether tok is fed to the depth tracker.
func shouldAdjustBlockDepth(ctx *Context, tok Token) bool {
	boundary := tok.Type == TokenEOF || tok.Type == TokenDelimiter
	switch {
	case boundary:
		return true
	case ctx.Kind() == JavaSource && tok.Type == TokenSymbol:
		return true
	}
	return tok.Type == TokenKeyword && tok.ParensDepth == 0
}

// adjustBlockDepth updates the block nesting of ctx for tok, using the tokens
// already scanned for the statement to resolve ambiguous keywords.
func adjustBlockDepth(ctx *Context, history *Tokens, tok Token) {
	text := tok.Text
	parensDepth := tok.ParensDepth
	boundary := tok.Type == TokenEOF || tok.Type == TokenDelimiter

	// A GOTO target is a label, not a block word.
	if history.LastIs(parensDepth, "GOTO") {
		return
	}

	if ctx.Kind() == Wrapped {
		if ctx.BlockDepth() == ctx.wrappedBaseline {
			ctx.IncreaseBlockDepth(wrappedInitiator)
		}
		if tok.Type == TokenEOF && ctx.BlockDepth() > 0 {
			ctx.DecreaseBlockDepth()
		}
		return
	}
	if ctx.wrappedBaseline >= 0 && ctx.BlockDepth() > ctx.wrappedBaseline && ctx.BlockInitiator() == wrappedInitiator {
		ctx.wrappedBaseline = -1
		ctx.DecreaseBlockDepth()
	}

	if ctx.Kind() == JavaSource {
		switch text {
		case "{":
			ctx.IncreaseBlockDepth("JAVA")
		case "}":
			ctx.DecreaseBlockDepth()
		}
		return
	}

	switch {
	case history.EndsWith(parensDepth, "<", "<"):
		// A label declaration <<name>> is not a block word.
	case text == "BEGIN",
		isControlFlow(text) && !precedingEndAttaches(ctx, history, tok),
		text == "TRIGGER" && history.LastIs(parensDepth, "COMPOUND"),
		!boundary && ctx.BlockDepth() == 0 && opensUnit(history, tok):
		ctx.IncreaseBlockDepth(text)
	case text == "END":
		ctx.DecreaseBlockDepth()
	}

	// The closing END of a package body may share its keyword with the
	// initialization section's BEGIN, leaving one level open at the end.
	if ctx.Kind() == PackageBody && boundary && ctx.BlockDepth() == 1 {
		ctx.DecreaseBlockDepth()
	}
}

func isControlFlow(text string) bool {
	return text == "IF" || text == "LOOP" || text == "CASE"
}

// precedingEndAttaches reports whether tok completes an END IF, END LOOP or
// END CASE whose END already closed the block tok would open.
func precedingEndAttaches(ctx *Context, history *Tokens, tok Token) bool {
	return history.LastIs(tok.ParensDepth, "END") &&
		history.LastIsOnLine(tok.ParensDepth, tok.Pos.Line) &&
		tok.Text == ctx.LastClosedBlockInitiator()
}

// opensUnit reports whether tok is the IS/AS opening a package spec, package
// body or type body.
func opensUnit(history *Tokens, tok Token) bool {
	if tok.Text != "IS" && tok.Text != "AS" {
		return false
	}
	first, ok := history.First()
	if !ok || first.Text != "CREATE" {
		return false
	}
	for _, p := range blockPatterns {
		if tokensMatch(history, tok, p) {
			return true
		}
	}
	return false
}
