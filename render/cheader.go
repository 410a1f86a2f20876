package render

import (
	"fmt"
	"strings"
)

// cheader renders a header usable from both C and C++: free functions
// prefixed by the bridge name, with C linkage.
func cheader(b *Bridge) string {
	var doc Document
	guard := b.macroPrefix() + "_HPP"

	doc.Line("/* %s */", b.header())
	doc.Blank()
	doc.Line("#ifndef %s", guard)
	doc.Line("#define %s", guard)
	doc.Blank()
	doc.Line("#include <stdbool.h>")
	doc.Line("#include <stdint.h>")
	doc.Blank()
	doc.Line("#define %s_VERSION %s", b.macroPrefix(), quote(b.Version))
	doc.Blank()
	doc.Line("#ifdef __cplusplus")
	doc.Line("extern \"C\" {")
	doc.Line("#endif")
	for _, m := range b.Methods {
		doc.Blank()
		docComment(&doc, "", m.Doc)

		params := "void"
		if len(m.Params) > 0 {
			var decls []string
			for _, p := range m.Params {
				decls = append(decls, fmt.Sprintf("%s %s", p.Type, p.Name))
			}
			params = strings.Join(decls, ", ")
		}
		doc.Line("%s %s_%s(%s);", m.Returns, b.Name, m.Name, params)
	}
	doc.Blank()
	doc.Line("#ifdef __cplusplus")
	doc.Line("}")
	doc.Line("#endif")
	doc.Blank()
	doc.Line("#endif /* %s */", guard)

	doc.Commit("")
	return doc.String()
}
