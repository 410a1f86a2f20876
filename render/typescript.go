package render

import (
	"fmt"
	"strings"
)

// typescript renders an ambient declaration file: a VERSION constant
// and an interface with one signature per method.
func typescript(b *Bridge) string {
	var doc Document

	doc.Line("// %s", b.header())
	doc.Blank()
	doc.Line("export const VERSION = %s;", quote(b.Version))
	doc.Blank()
	doc.Line("export interface %s {", b.Name)
	for i, m := range b.Methods {
		if i > 0 {
			doc.Blank()
		}
		docComment(&doc, "  ", m.Doc)

		var params []string
		for _, p := range m.Params {
			params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Type))
		}
		doc.Line("  %s(%s): %s;", m.Name, strings.Join(params, ", "), m.Returns)
	}
	doc.Line("}")

	doc.Commit("")
	return doc.String()
}
