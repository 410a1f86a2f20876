package render

import (
	"fmt"
	"strings"
)

func java(b *Bridge) string {
	var doc Document

	doc.Line("// %s", b.header())
	doc.Blank()
	doc.Line("public interface %s {", b.Name)
	doc.Line("    String VERSION = %s;", quote(b.Version))
	for _, m := range b.Methods {
		doc.Blank()
		docComment(&doc, "    ", m.Doc)

		var params []string
		for _, p := range m.Params {
			params = append(params, fmt.Sprintf("%s %s", p.Type, p.Name))
		}
		doc.Line("    %s %s(%s);", m.Returns, m.Name, strings.Join(params, ", "))
	}
	doc.Line("}")

	doc.Commit("")
	return doc.String()
}
