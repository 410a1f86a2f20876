package render

import (
	"fmt"
	"strings"
)

// javascript renders a stub class. Every method throws, types are
// carried in Flow comment annotations.
func javascript(b *Bridge) string {
	var doc Document

	doc.Line("// %s", b.header())
	doc.Blank()
	doc.Line("export class %s {", b.Name)
	doc.Line("  static VERSION = %s;", quote(b.Version))
	for _, m := range b.Methods {
		doc.Blank()
		docComment(&doc, "  ", m.Doc)

		var params []string
		for _, p := range m.Params {
			params = append(params, fmt.Sprintf("%s /*: %s */", p.Name, p.Type))
		}
		doc.Line("  %s(%s) /*: %s */ {", m.Name, strings.Join(params, ", "), m.Returns)
		doc.Line("    throw new Error(%s);", quote("Not implemented"))
		doc.Line("  }")
	}
	doc.Line("}")

	doc.Commit("")
	return doc.String()
}
