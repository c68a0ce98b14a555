package parser

import "regexp"

type rule struct {
	patterns []*regexp.Regexp
	kind     Kind
}

// rules are evaluated in order, first match wins. Wrapped forms come first
// because the plain package and unit patterns would also accept their prefix.
var rules = []rule{
	{[]*regexp.Regexp{packageBodyWrappedPattern, packageSpecWrappedPattern, unitWrappedPattern}, Wrapped},
	{[]*regexp.Regexp{packageBodyPattern}, PackageBody},
	{[]*regexp.Regexp{unitPattern, packageSpecPattern, declareBeginPattern}, ProceduralBlock},
	{[]*regexp.Regexp{javaSourcePattern}, JavaSource},
	{[]*regexp.Regexp{viewWithFunctionPattern}, ViewWithInlineFunction},
}

// classify picks the kind of a statement from its simplified prefix. The
// first wrapped classification latches the block depth the wrapped unit
// started at.
func classify(prefix string, ctx *Context) Kind {
	for _, r := range rules {
		for _, p := range r.patterns {
			if !p.MatchString(prefix) {
				continue
			}
			if r.kind == Wrapped && ctx.wrappedBaseline == -1 {
				ctx.wrappedBaseline = ctx.BlockDepth()
			}
			return r.kind
		}
	}
	return Plain
}
