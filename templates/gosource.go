package templates

import (
	"io"

	"github.com/dave/jennifer/jen"

	"github.com/joshsziegler/plsplit/name"
	"github.com/joshsziegler/plsplit/parser"
)

// GoSource renders a Go file in package pkg declaring the Statement type and
// a varName slice holding stmts in order.
func GoSource(w io.Writer, pkg, varName string, stmts []parser.Statement) error {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by plsplit. DO NOT EDIT.")

	f.Comment("Statement is one executable unit of a split script.")
	f.Type().Id("Statement").Struct(
		jen.Id("Name").String(),
		jen.Id("Kind").String(),
		jen.Id("Delimiter").String(),
		jen.Id("SQL").String(),
	)
	f.Line()

	values := make([]jen.Code, 0, len(stmts))
	for _, stmt := range stmts {
		values = append(values, jen.Values(jen.Dict{
			jen.Id("Name"):      jen.Lit(name.ObjectName(stmt.Text)),
			jen.Id("Kind"):      jen.Lit(stmt.Kind.String()),
			jen.Id("Delimiter"): jen.Lit(stmt.Delimiter.Text),
			jen.Id("SQL"):       jen.Lit(stmt.Text),
		}))
	}
	f.Commentf("%s holds %s in script order.", varName, name.Count("statement", len(stmts)))
	f.Var().Id(varName).Op("=").Index().Id("Statement").Values(values...)

	return f.Render(w)
}
